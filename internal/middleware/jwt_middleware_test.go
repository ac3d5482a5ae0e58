package middleware_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"nutrimix/internal/middleware"
	"nutrimix/internal/repositories"
	"nutrimix/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func newApp(guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", guard, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": middleware.UserID(c)})
	})
	return app
}

func signToken(t *testing.T, userID string, expiresIn time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"exp": time.Now().Add(expiresIn).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func get(t *testing.T, app *fiber.App, header string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestAuthRequired(t *testing.T) {
	authService := services.NewAuthService(repositories.NewMockUserRepository(), testJWTSecret, time.Hour)
	app := newApp(middleware.AuthRequired(authService))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantKey    string
		wantValue  string
	}{
		{
			name:       "valid token exposes the user id",
			header:     "Bearer " + signToken(t, "user-123", time.Hour),
			wantStatus: fiber.StatusOK,
			wantKey:    "userId",
			wantValue:  "user-123",
		},
		{
			name:       "missing header",
			wantStatus: fiber.StatusUnauthorized,
			wantKey:    "message",
			wantValue:  "Authorization header is required",
		},
		{
			name:       "wrong scheme",
			header:     "Token " + signToken(t, "user-123", time.Hour),
			wantStatus: fiber.StatusUnauthorized,
			wantKey:    "message",
			wantValue:  "Authorization header format must be 'Bearer <token>'",
		},
		{
			name:       "expired token",
			header:     "Bearer " + signToken(t, "user-123", -time.Hour),
			wantStatus: fiber.StatusUnauthorized,
			wantKey:    "message",
			wantValue:  "Invalid or expired token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, tt.header)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantValue, body[tt.wantKey])
		})
	}
}

func TestOpen_LeavesUserIDEmpty(t *testing.T) {
	status, body := get(t, newApp(middleware.Open()), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "", body["userId"])
}
