package middleware

import (
	"github.com/gofiber/fiber/v2"
	authutils "job-board-backend/lib/utils/auth-utils"
)

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		if userID, ok := sub.(string); ok {
			return userID
		}
	}
	return ""
}
