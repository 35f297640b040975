package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/controllers"
	authhandler "portal-backend/lib/auth"
	usershandler "portal-backend/lib/users"
	"portal-backend/middleware"
	apimodels "portal-backend/models/api"
	authapimodels "portal-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("login", controller.login)
		router.Post("change_password", middleware.AuthorizationRequired(), controller.changePassword)
	})
}

// @Summary Login
// @Tags Auth
// @Description Issues a JWT for a portal user
// @Param	body body	 authapimodels.LoginData	true	"request body"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/auth/login [post]
func (c *authApiController) login(ctx *fiber.Ctx) error {
	var payload authapimodels.LoginData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := authhandler.Instance.Login(payload.Email, payload.Password)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "login failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Change password
// @Tags Auth
// @Description Changes the caller's password, rate limited per account
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 authapimodels.ChangePasswordData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/auth/change_password [post]
func (c *authApiController) changePassword(ctx *fiber.Ctx) error {
	var payload authapimodels.ChangePasswordData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	email := middleware.GetUserEmail(ctx)
	err := usershandler.Instance.ChangePassword(email, payload.OldPassword, payload.NewPassword)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "password change failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
