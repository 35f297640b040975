package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "portal-backend/lib/utils/auth-utils"
	"portal-backend/models"
)

func GetUserEmail(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if email, ok := sub.(string); ok {
			return email
		}
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) int64 {
	claims := authutils.GetClaims(ctx)
	if uid, exist := claims["uid"]; exist {
		// numeric claims arrive as float64 from the JSON decoder
		if id, ok := uid.(float64); ok {
			return int64(id)
		}
		if id, ok := uid.(int64); ok {
			return id
		}
	}
	return 0
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
