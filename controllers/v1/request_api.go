package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	requesthandler "portal-backend/lib/request"
	"portal-backend/middleware"
	apimodels "portal-backend/models/api"
	requestapimodels "portal-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("requests", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Post("assigned", controller.listAssigned)
		router.Get("export", controller.export)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
		})
	})
}

// @Summary Create request
// @Tags Request
// @Description Registers a request in Pendiente and links the active workflow
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/requests [post]
func (c *requestApiController) create(ctx *fiber.Ctx) error {
	var payload requestapimodels.RequestCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	id, err := requesthandler.Instance.Create(payload, email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"id_request": id}))
}

// @Summary List requests
// @Tags Request
// @Description Lists requests; without a status filter the configured default status-case applies
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/requests/list [post]
func (c *requestApiController) list(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	filter.Mode = requestapimodels.ListModeGeneral
	list, err := requesthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List assigned activities
// @Tags Request
// @Description Requests whose workflow is assigned to the caller
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.RequestView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/requests/assigned [post]
func (c *requestApiController) listAssigned(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	filter.Mode = requestapimodels.ListModeAssigned
	if filter.AssignedToID == 0 {
		filter.AssignedToID = middleware.GetUserID(ctx)
	}
	list, err := requesthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "activity listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Export requests
// @Tags Request
// @Description Exports the filtered listing as an xlsx workbook
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/requests/export [get]
func (c *requestApiController) export(ctx *fiber.Ctx) error {
	filter := requestapimodels.RequestFilter{
		Mode:        requestapimodels.ListModeGeneral,
		RequesterID: middleware.GetUserID(ctx),
	}
	content, err := requesthandler.Instance.ExportXLS(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request export failed")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requests.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(content)
}

// @Summary View request
// @Tags Request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/portal/requests/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := requesthandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update request
// @Tags Request
// @Description Privileged roles or the workflow assignee only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestEditData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/portal/requests/{id} [put]
func (c *requestApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload requestapimodels.RequestEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	if err = requesthandler.Instance.Update(id, payload, email); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "request update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
