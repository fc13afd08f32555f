package client

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation runs before any database access, so a controller with no DB
// is enough to exercise the reject paths.
func testApp() *fiber.App {
	cc := NewClientController(nil, nil)
	app := fiber.New()
	app.Post("/clients", cc.Store)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestStoreRejectsInvalidPhone(t *testing.T) {
	app := testApp()

	status := postJSON(t, app, "/clients",
		`{"name":"Agro Center","cnpj":"12.345.678/0001-00","phone":"not-a-phone"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status = postJSON(t, app, "/clients",
		`{"name":"Agro Center","cnpj":"12.345.678/0001-00","phone":"12345"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestStoreRejectsMissingRequiredFields(t *testing.T) {
	app := testApp()

	status := postJSON(t, app, "/clients", `{"phone":"65999991234"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
