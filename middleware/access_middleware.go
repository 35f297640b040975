package middleware

import (
	"github.com/gofiber/fiber/v2"
	"portal-backend/lib/access"
	apimodels "portal-backend/models/api"
)

// AccessMiddleware enforces the route rule table for the admin area.
// Routes without a registered rule pass through.
func AccessMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID := GetUserID(ctx)
		role := GetUserRole(ctx)
		if userID == 0 || role == "" {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("access denied"))
		}

		handler, found := access.RuleTable.GetRuleFunc(ctx.Method(), ctx.Path())
		if !found {
			return ctx.Next()
		}
		if !handler(userID, role, ctx.Path()) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("access denied"))
		}
		return ctx.Next()
	}
}
