package notification

import (
	"errors"
	"os"

	"github.com/kodraiti-design/eagles-transportes/logger"
	"github.com/kodraiti-design/eagles-transportes/middleware"
	"github.com/kodraiti-design/eagles-transportes/services/lifecycle"
	notificationService "github.com/kodraiti-design/eagles-transportes/services/notification"
	"github.com/kodraiti-design/eagles-transportes/services/whatsapp"
	"github.com/kodraiti-design/eagles-transportes/types"

	"github.com/gofiber/fiber/v2"
)

// NotificationController surfaces the pending-action queue and composes
// the outbound WhatsApp links. Dispatch is the frontend opening the link;
// the ledger is marked optimistically when the client link is requested.
type NotificationController struct {
	Engine  *lifecycle.Engine
	Service *notificationService.Service
	Ledger  notificationService.Ledger
	Logger  *logger.AsyncLogger
}

func NewNotificationController(engine *lifecycle.Engine, ledger notificationService.Ledger, asyncLogger *logger.AsyncLogger) *NotificationController {
	return &NotificationController{
		Engine:  engine,
		Service: notificationService.NewService(ledger),
		Ledger:  ledger,
		Logger:  asyncLogger,
	}
}

func frontendBaseURL() string {
	return os.Getenv("FRONTEND_URL")
}

// Pending recomputes the pending-notification queue from the current
// freight set and the ledger.
func (nc *NotificationController) Pending(c *fiber.Ctx) error {
	freights, err := nc.Engine.List()
	if err != nil {
		logger.Error("Failed to list freights for pending queue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	items, err := nc.Service.PendingItems(freights)
	if err != nil {
		logger.Error("Failed to derive pending notifications", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending notifications",
		Data:    items,
	})
}

// NotifyClient composes the client-facing message for the freight's
// current status, marks the ledger and returns the wa.me link. Marking
// happens regardless of whether the operator's browser actually opens the
// link; dispatch is best-effort by design.
func (nc *NotificationController) NotifyClient(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	f, err := nc.Engine.Get(uint(id))
	if err != nil {
		if errors.Is(err, lifecycle.ErrFreightNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Freight not found",
			})
		}
		logger.Error("Failed to load freight", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if f.Driver == nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Freight has no assigned driver",
		})
	}

	// Mark first: the link may never be opened, and that is accepted.
	if err := nc.Ledger.MarkNotified(f.ID, f.Status, middleware.CurrentUsername(c)); err != nil {
		logger.Error("Failed to mark notification ledger", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	link, err := whatsapp.ClientLink(f)
	if err != nil {
		if errors.Is(err, whatsapp.ErrNoPhone) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Client has no phone number on record",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client notification composed",
		Data: fiber.Map{
			"link":       link,
			"freight_id": f.ID,
			"status":     f.Status,
		},
	})
}

// NotifyDriver composes the driver-facing message and link for the
// freight's current status. The ledger tracks client alerts only; driver
// messages never touch it.
func (nc *NotificationController) NotifyDriver(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	f, err := nc.Engine.Get(uint(id))
	if err != nil {
		if errors.Is(err, lifecycle.ErrFreightNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Freight not found",
			})
		}
		logger.Error("Failed to load freight", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	link, err := whatsapp.DriverLink(f, frontendBaseURL())
	if err != nil {
		if errors.Is(err, whatsapp.ErrNoDriver) {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Freight has no assigned driver",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Driver notification composed",
		Data: fiber.Map{
			"link":       link,
			"freight_id": f.ID,
			"status":     f.Status,
		},
	})
}

// Reset clears all ledger entries for one freight so its alerts can fire
// again. Admin escape hatch for status corrections.
func (nc *NotificationController) Reset(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	if err := nc.Ledger.ResetFreight(uint(id)); err != nil {
		logger.Error("Failed to reset notification ledger", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Notification ledger cleared for freight",
	})
}
