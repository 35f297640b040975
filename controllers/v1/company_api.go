package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	companieshandler "portal-backend/lib/companies"
	apimodels "portal-backend/models/api"
	adminapimodels "portal-backend/models/api/admin"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("companies", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("users", controller.addUser)
			idRoute.Post("grants", controller.addGrant)
			idRoute.Post("categories", controller.linkCategory)
		})
	})
}

// @Summary List companies
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]adminapimodels.CompanyView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/companies [get]
func (c *companyApiController) list(ctx *fiber.Ctx) error {
	list, err := companieshandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "company listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create company
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/companies [post]
func (c *companyApiController) create(ctx *fiber.Ctx) error {
	var payload adminapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := companieshandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "company creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get company
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=adminapimodels.CompanyView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/admin/companies/{id} [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := companieshandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "company lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update company
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.CompanyData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/companies/{id} [put]
func (c *companyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload adminapimodels.CompanyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = companieshandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "company update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add company member
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.CompanyUserData	true	"request body"
// @Param   id          		path    int  				    	true         "company ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/companies/{id}/users [post]
func (c *companyApiController) addUser(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload adminapimodels.CompanyUserData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = companieshandler.Instance.AddUser(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "membership creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add subprocess grant
// @Tags Companies
// @Description Grants a company member access to an admin path
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.SubprocessGrantData	true	"request body"
// @Param   id          		path    int  				    	true         "company ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/companies/{id}/grants [post]
func (c *companyApiController) addGrant(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload adminapimodels.SubprocessGrantData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = companieshandler.Instance.AddGrant(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "grant creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Link category to company
// @Tags Companies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 adminapimodels.CategoryLinkData	true	"request body"
// @Param   id          		path    int  				    	true         "company ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/admin/companies/{id}/categories [post]
func (c *companyApiController) linkCategory(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload adminapimodels.CategoryLinkData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = companieshandler.Instance.LinkCategory(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "category link failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
