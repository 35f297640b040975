package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	workflowhandler "portal-backend/lib/workflow"
	"portal-backend/middleware"
	apimodels "portal-backend/models/api"
	workflowapimodels "portal-backend/models/api/workflow"
)

type workflowApiController struct {
	controllers.BaseAPIController
}

func InitWorkflowApiRouters(app *fiber.App) {
	controller := workflowApiController{}
	app.Route("workflows", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Put("authorize", controller.authorize)
			idRoute.Put("tasks", controller.reconcileTasks)
		})
	})
}

// @Summary Create workflow
// @Tags Workflow
// @Description Creates a draft workflow with its task templates
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workflowapimodels.WorkflowCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/workflows [post]
func (c *workflowApiController) create(ctx *fiber.Ctx) error {
	var payload workflowapimodels.WorkflowCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := workflowhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "workflow creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"processId": id}))
}

// @Summary Get workflow
// @Tags Workflow
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=workflowapimodels.WorkflowView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/portal/workflows/{id} [get]
func (c *workflowApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := workflowhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "workflow lookup failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update workflow
// @Tags Workflow
// @Description Updates the row and replaces the responsible-user link
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workflowapimodels.WorkflowEditData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/portal/workflows/{id} [put]
func (c *workflowApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.WorkflowEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = workflowhandler.Instance.Update(id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "workflow update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Authorize workflow
// @Tags Workflow
// @Description Draft to active, category leader or admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/portal/workflows/{id}/authorize [put]
func (c *workflowApiController) authorize(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	name, err := workflowhandler.Instance.Authorize(id, email)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "workflow authorization failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{
		"message":      "workflow authorized",
		"workflowName": name,
	}))
}

// @Summary Reconcile workflow tasks
// @Tags Workflow
// @Description Applies a batch of task create/update/delete operations
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 workflowapimodels.ReconcileTasksData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.TaskOpResult}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/workflows/{id}/tasks [put]
func (c *workflowApiController) reconcileTasks(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload workflowapimodels.ReconcileTasksData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	results, err := workflowhandler.Instance.ReconcileTasks(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "task reconciliation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(fiber.Map{"results": results}))
}
