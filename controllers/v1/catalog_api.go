package apiv1

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	cataloghandler "portal-backend/lib/catalog"
	apimodels "portal-backend/models/api"
)

type catalogApiController struct {
	controllers.BaseAPIController
}

func InitCatalogApiRouters(app *fiber.App) {
	controller := catalogApiController{}
	app.Route("catalog", func(router fiber.Router) {
		router.Get("categories", controller.listCategories)
		router.Get("categories/:id/workflows", controller.listProcesses)
		router.Get("workflows/:id/tasks", controller.listTasks)
		router.Get("assignable_users", controller.listAssignableUsers)
	})
}

// @Summary List categories
// @Tags Catalog
// @Description Lists request categories, optionally for one company
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   company_id    		query   int  	false        "company filter"
// @Success 200 {object} apimodels.Response{data=[]catalogapimodels.CategoryView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/catalog/categories [get]
func (c *catalogApiController) listCategories(ctx *fiber.Ctx) error {
	companyID, _ := strconv.ParseInt(ctx.Query("company_id"), 10, 64)
	list, err := cataloghandler.Instance.ListCategories(companyID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "category listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List workflows of a category
// @Tags Catalog
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "category ID"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.WorkflowView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/catalog/categories/{id}/workflows [get]
func (c *catalogApiController) listProcesses(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := cataloghandler.Instance.ListProcesses(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "workflow listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List task templates of a workflow
// @Tags Catalog
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    int  				    	true         "workflow ID"
// @Success 200 {object} apimodels.Response{data=[]workflowapimodels.TaskView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/catalog/workflows/{id}/tasks [get]
func (c *catalogApiController) listTasks(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := cataloghandler.Instance.ListTasks(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "task template listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List assignable users
// @Tags Catalog
// @Description Distinct users already holding an assignment, by name
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]catalogapimodels.AssignableUserView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/portal/catalog/assignable_users [get]
func (c *catalogApiController) listAssignableUsers(ctx *fiber.Ctx) error {
	list, err := cataloghandler.Instance.ListAssignableUsers()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
