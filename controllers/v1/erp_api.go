package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	erphandler "portal-backend/lib/external-services/erp"
	apimodels "portal-backend/models/api"
)

type erpApiController struct {
	controllers.BaseAPIController
}

func InitErpApiRouters(app *fiber.App) {
	controller := erpApiController{}
	app.Route("erp", func(router fiber.Router) {
		router.Get("drafts", controller.listDrafts)
	})
}

// @Summary List purchase request drafts
// @Tags Erp
// @Description Proxies the draft list from the ERP service layer
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]erpapimodels.Draft}
// @Failure 502 {object} apimodels.Response
// @router /api/v1/portal/erp/drafts [get]
func (c *erpApiController) listDrafts(ctx *fiber.Ctx) error {
	list, err := erphandler.Instance.ListDrafts(ctx.Context())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "erp draft listing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
