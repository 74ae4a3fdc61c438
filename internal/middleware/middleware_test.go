package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plateful-backend/pkg/jwt"
)

func newAuthTestApp(jwtService jwt.JWTService) *fiber.App {
	app := fiber.New()
	m := NewMiddleware()
	app.Get("/protected", m.AuthMiddleware(jwtService), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewJWTService()

	t.Run("missing token gets a login redirect hint", func(t *testing.T) {
		app := newAuthTestApp(jwtService)

		req := httptest.NewRequest("GET", "/protected", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		var body struct {
			Redirect string `json:"redirect"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "/login?redirect=/protected", body.Redirect)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		app := newAuthTestApp(jwtService)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid token reaches the handler with user_id set", func(t *testing.T) {
		app := newAuthTestApp(jwtService)
		token := jwtService.GenerateToken("user-42")

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "user-42", body.UserID)
	})
}
