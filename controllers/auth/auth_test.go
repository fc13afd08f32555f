package auth

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The permission-list check runs before any database access, so a
// controller with no DB is enough to exercise the reject path.
func TestRegisterRejectsUnknownPermission(t *testing.T) {
	ac := NewAuthController(nil, nil)
	app := fiber.New()
	app.Post("/register", ac.Register)

	body := `{
		"username": "maria",
		"password": "secret1",
		"role": "OPERATOR",
		"permissions": "create_freight,launch_rocket"
	}`
	req := httptest.NewRequest(fiber.MethodPost, "/register", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
