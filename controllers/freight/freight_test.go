package freight

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kodraiti-design/eagles-transportes/constants"
	userModel "github.com/kodraiti-design/eagles-transportes/models/user"
	"github.com/kodraiti-design/eagles-transportes/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The capability check runs before any database access, so a controller
// with no DB is enough to exercise the forbidden path.
func updateApp(caps ...string) *fiber.App {
	fc := NewFreightController(nil, nil, nil)
	app := fiber.New()
	app.Put("/freights/:id", func(c *fiber.Ctx) error {
		c.Locals("role", userModel.RoleOperator)
		c.Locals("capabilities", services.NewCapabilitySet(caps...))
		return fc.Update(c)
	})
	return app
}

const updateBody = `{
	"client_id": 1,
	"origin": "Cuiabá - MT",
	"destination": "São Paulo - SP",
	"pickup_date": "2026-09-01T08:00:00Z",
	"delivery_date": "2026-09-03T18:00:00Z",
	"valor_motorista": 8500,
	"valor_cliente": 12000,
	"status": "DELIVERED"
}`

func TestUpdateStatusChangeNeedsOverrideCapability(t *testing.T) {
	app := updateApp(constants.PermEditFreight)

	req := httptest.NewRequest(fiber.MethodPut, "/freights/1", strings.NewReader(updateBody))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestDiscardUploadsRemovesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "delivery_proofs", "42")
	require.NoError(t, os.MkdirAll(dir, os.ModePerm))
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	discardUploads(dir)

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
