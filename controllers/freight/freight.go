package freight

import (
	"errors"

	"github.com/kodraiti-design/eagles-transportes/constants"
	"github.com/kodraiti-design/eagles-transportes/logger"
	"github.com/kodraiti-design/eagles-transportes/middleware"
	clientModel "github.com/kodraiti-design/eagles-transportes/models/client"
	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
	"github.com/kodraiti-design/eagles-transportes/services/lifecycle"
	"github.com/kodraiti-design/eagles-transportes/types"
	freightTypes "github.com/kodraiti-design/eagles-transportes/types/freight"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// FreightController handles freight CRUD and the operator-side lifecycle
// operations (manual override, assignment, billing bookkeeping).
type FreightController struct {
	DB     *gorm.DB
	Engine *lifecycle.Engine
	Logger *logger.AsyncLogger
}

func NewFreightController(db *gorm.DB, engine *lifecycle.Engine, asyncLogger *logger.AsyncLogger) *FreightController {
	return &FreightController{DB: db, Engine: engine, Logger: asyncLogger}
}

// lifecycleError maps engine errors onto HTTP responses.
func lifecycleError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, lifecycle.ErrFreightNotFound), errors.Is(err, lifecycle.ErrDriverNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, lifecycle.ErrInvalidStatus),
		errors.Is(err, lifecycle.ErrInvalidTransition),
		errors.Is(err, lifecycle.ErrOfferClosed),
		errors.Is(err, lifecycle.ErrEmptyReason),
		errors.Is(err, lifecycle.ErrNotEnoughPhotos),
		errors.Is(err, lifecycle.ErrDriverNotAssignable):
		status = fiber.StatusBadRequest
	default:
		logger.Error("Lifecycle operation failed", err)
	}
	return c.Status(status).JSON(types.ApiResponse{
		Status:  status,
		Message: err.Error(),
	})
}

// Index lists all freights with client and driver preloaded.
func (fc *FreightController) Index(c *fiber.Ctx) error {
	freights, err := fc.Engine.List()
	if err != nil {
		logger.Error("Failed to list freights", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freights",
		Data:    freights,
	})
}

// Show returns one freight. Public: the driver acceptance page loads it
// through the link alone.
func (fc *FreightController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	f, err := fc.Engine.Get(uint(id))
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freight",
		Data:    f,
	})
}

// Store creates a freight in QUOTED (default) or RECRUITING.
func (fc *FreightController) Store(c *fiber.Ctx) error {
	var req freightTypes.FreightCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse freight request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := types.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var cl clientModel.Client
	if err := fc.DB.First(&cl, req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Client not found",
			})
		}
		logger.Error("Database error while loading client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	status := freightModel.FreightStatusQuoted
	if req.Status != "" {
		status = freightModel.FreightStatus(req.Status)
	}

	var observation *string
	if req.Observation != "" {
		observation = &req.Observation
	}

	f := freightModel.Freight{
		ClientID:       req.ClientID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		PickupDate:     req.PickupDate,
		DeliveryDate:   req.DeliveryDate,
		ValorMotorista: req.ValorMotorista,
		ValorCliente:   req.ValorCliente,
		Status:         status,
		Observation:    observation,
		CreatedBy:      middleware.CurrentUsername(c),
	}
	if err := fc.DB.Create(&f).Error; err != nil {
		logger.Error("Failed to create freight", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Freight created",
		Data:    f,
	})
}

// Update edits freight fields. A status in the payload is honored as a
// manual override.
func (fc *FreightController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	var req freightTypes.FreightUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := types.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	// The route is gated on edit_freight; a status change through the edit
	// form additionally needs the override capability.
	if req.Status != "" && !middleware.CheckPermissionInController(c, constants.PermChangeFreightStatus) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Missing permission: " + constants.PermChangeFreightStatus,
		})
	}

	f, err := fc.Engine.Get(uint(id))
	if err != nil {
		return lifecycleError(c, err)
	}

	actor := middleware.CurrentUsername(c)

	var observation *string
	if req.Observation != "" {
		observation = &req.Observation
	}

	updates := map[string]interface{}{
		"client_id":       req.ClientID,
		"origin":          req.Origin,
		"destination":     req.Destination,
		"pickup_date":     req.PickupDate,
		"delivery_date":   req.DeliveryDate,
		"valor_motorista": req.ValorMotorista,
		"valor_cliente":   req.ValorCliente,
		"observation":     observation,
		"updated_by":      actor,
	}
	if err := fc.DB.Model(&freightModel.Freight{}).Where("id = ?", f.ID).Updates(updates).Error; err != nil {
		logger.Error("Failed to update freight", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	// Status change through the edit form rides the override path so the
	// event trail stays complete.
	if req.Status != "" && freightModel.FreightStatus(req.Status) != f.Status {
		if _, err := fc.Engine.OverrideStatus(f.ID, freightModel.FreightStatus(req.Status), actor); err != nil {
			return lifecycleError(c, err)
		}
	}

	updated, err := fc.Engine.Get(f.ID)
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freight updated",
		Data:    updated,
	})
}

// OverrideStatus is the operator's direct status change; any valid target
// is accepted, skipping intermediate states.
func (fc *FreightController) OverrideStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	var req freightTypes.StatusOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := types.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	f, err := fc.Engine.OverrideStatus(uint(id), freightModel.FreightStatus(req.Status), middleware.CurrentUsername(c))
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Status updated",
		Data:    f,
	})
}

// AssignDriver sets the freight's driver without touching its status.
func (fc *FreightController) AssignDriver(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}
	driverID, err := c.ParamsInt("driverId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid driver id",
		})
	}

	f, err := fc.Engine.AssignDriver(uint(id), uint(driverID), middleware.CurrentUsername(c))
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Driver assigned",
		Data:    f,
	})
}

// UpdateBillingStatus maintains the billing bookkeeping on a freight.
func (fc *FreightController) UpdateBillingStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	var req freightTypes.BillingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := types.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	updates := map[string]interface{}{
		"billing_status": freightModel.BillingStatus(req.BillingStatus),
		"updated_by":     middleware.CurrentUsername(c),
	}
	if req.CTENumber != nil {
		updates["cte_number"] = req.CTENumber
	}

	result := fc.DB.Model(&freightModel.Freight{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		logger.Error("Failed to update billing status", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Freight not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Billing status updated",
	})
}

// Events lists the status event trail of one freight.
func (fc *FreightController) Events(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	var events []freightModel.FreightStatusEvent
	if err := fc.DB.Where("freight_id = ?", id).Order("created_at asc").Find(&events).Error; err != nil {
		logger.Error("Failed to list freight events", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freight events",
		Data:    events,
	})
}

// Destroy removes a freight and its events. Irreversible, by explicit
// operator action only.
func (fc *FreightController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	err = fc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("freight_id = ?", id).Delete(&freightModel.FreightStatusEvent{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&freightModel.Freight{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return lifecycle.ErrFreightNotFound
		}
		return nil
	})
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freight deleted",
	})
}
