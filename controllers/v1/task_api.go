package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	taskexechandler "portal-backend/lib/taskexec"
	"portal-backend/middleware"
	apimodels "portal-backend/models/api"
	taskapimodels "portal-backend/models/api/task"
)

type taskApiController struct {
	controllers.BaseAPIController
}

func InitTaskApiRouters(app *fiber.App) {
	controller := taskApiController{}
	app.Get("requests/:id/tasks", controller.listByRequest)
	app.Put("tasks/:id", controller.update)
}

// @Summary List task instances of a request
// @Tags Task
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "request ID"
// @Success 200 {object} apimodels.Response{data=[]taskapimodels.TaskInstanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/requests/{id}/tasks [get]
func (c *taskApiController) listByRequest(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := taskexechandler.Instance.ListByRequest(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "task listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Update task instance
// @Tags Task
// @Description Writes status/assignment/dates/resolution in one statement
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 taskapimodels.TaskInstanceEditData	true	"request body"
// @Param   id          		path    int  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/tasks/{id} [put]
func (c *taskApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload taskapimodels.TaskInstanceEditData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	if err = taskexechandler.Instance.Update(id, payload, email); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "task update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
