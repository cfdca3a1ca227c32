package authutils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"job-board-backend/config"
)

func TestAuthUtils(t *testing.T) {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600

	t.Run(`token check`, func(t *testing.T) {
		tokenString, err := GetToken("user-1", "Иванов Иван")
		require.Nil(t, err)
		require.NotEmpty(t, tokenString)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		})
		require.Nil(t, err)
		require.True(t, token.Valid)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "Иванов Иван", claims["name"])
	})

	t.Run(`password check`, func(t *testing.T) {
		hash, err := HashPassword("super-password")
		require.Nil(t, err)
		require.NotEqual(t, "super-password", hash)
		require.True(t, CheckPassword(hash, "super-password"))
		require.False(t, CheckPassword(hash, "wrong-password"))
	})
}
