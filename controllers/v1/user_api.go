package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	usershandler "portal-backend/lib/users"
	apimodels "portal-backend/models/api"
	adminapimodels "portal-backend/models/api/admin"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.deactivate)
		})
	})
}

// @Summary List users
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminapimodels.UserView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	list, err := usershandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.UserCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/users [post]
func (c *userApiController) create(ctx *fiber.Ctx) error {
	var payload adminapimodels.UserCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := usershandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=adminapimodels.UserView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.UserEditData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload adminapimodels.UserEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = usershandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Deactivate user
// @Tags Users
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/users/{id} [delete]
func (c *userApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = usershandler.Instance.Deactivate(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user deactivation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
