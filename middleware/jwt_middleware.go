package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"job-board-backend/config"
)

func AuthorizationRequired() fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
}

// AuthorizationOptional разбирает токен, если он передан.
// Анонимный запрос проходит дальше без claims.
func AuthorizationOptional() fiber.Handler {
	jwtHandler := jwtware.New(jwtware.Config{
		Claims: jwt.MapClaims{},
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.Auth.JWTSecret),
		},
	})
	return func(ctx *fiber.Ctx) error {
		if ctx.Get(fiber.HeaderAuthorization) == "" {
			return ctx.Next()
		}
		return jwtHandler(ctx)
	}
}
