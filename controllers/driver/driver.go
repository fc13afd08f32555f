package driver

import (
	"errors"

	"github.com/kodraiti-design/eagles-transportes/logger"
	driverModel "github.com/kodraiti-design/eagles-transportes/models/driver"
	"github.com/kodraiti-design/eagles-transportes/services/lifecycle"
	"github.com/kodraiti-design/eagles-transportes/types"
	driverTypes "github.com/kodraiti-design/eagles-transportes/types/driver"
	"github.com/kodraiti-design/eagles-transportes/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DriverController handles the driver registry.
type DriverController struct {
	DB     *gorm.DB
	Engine *lifecycle.Engine
	Logger *logger.AsyncLogger
}

func NewDriverController(db *gorm.DB, engine *lifecycle.Engine, asyncLogger *logger.AsyncLogger) *DriverController {
	return &DriverController{DB: db, Engine: engine, Logger: asyncLogger}
}

// Index lists all drivers.
func (dc *DriverController) Index(c *fiber.Ctx) error {
	var drivers []driverModel.Driver
	if err := dc.DB.Order("name asc").Find(&drivers).Error; err != nil {
		logger.Error("Failed to list drivers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Drivers",
		Data:    drivers,
	})
}

// Eligible lists assignment candidates for the driver picker. INACTIVE and
// blocked drivers are excluded; PENDING ones are flagged.
func (dc *DriverController) Eligible(c *fiber.Ctx) error {
	drivers, err := dc.Engine.EligibleDrivers()
	if err != nil {
		logger.Error("Failed to list eligible drivers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	rows := make([]driverTypes.EligibleDriver, 0, len(drivers))
	for _, d := range drivers {
		rows = append(rows, driverTypes.EligibleDriver{
			ID:             d.ID,
			Name:           d.Name,
			Phone:          d.Phone,
			VehiclePlate:   d.VehiclePlate,
			VehicleType:    d.VehicleType,
			Status:         d.Status.String(),
			NeedsDocuments: d.Status == driverModel.DriverStatusPending,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Eligible drivers",
		Data:    rows,
	})
}

// Store creates a driver.
func (dc *DriverController) Store(c *fiber.Ctx) error {
	var req driverTypes.DriverRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse driver request", err)
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
	if !utils.ValidateCPF(req.CPF) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid CPF",
		})
	}
	if !utils.ValidatePhoneNumber(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid phone number",
		})
	}

	status := driverModel.DriverStatusActive
	if req.Status != "" {
		status = driverModel.DriverStatus(req.Status)
	}

	d := driverModel.Driver{
		Name:         req.Name,
		Phone:        req.Phone,
		CPF:          req.CPF,
		ANTT:         req.ANTT,
		VehiclePlate: req.VehiclePlate,
		VehicleType:  req.VehicleType,
		PixKey:       req.PixKey,
		Status:       status,
	}
	if err := dc.DB.Create(&d).Error; err != nil {
		logger.Error("Failed to create driver", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Driver created",
		Data:    d,
	})
}

// Update edits a driver record.
func (dc *DriverController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid driver id",
		})
	}

	var req driverTypes.DriverRequest
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

	var d driverModel.Driver
	if err := dc.DB.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Driver not found",
			})
		}
		logger.Error("Database error while loading driver", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	d.Name = req.Name
	d.Phone = req.Phone
	d.CPF = req.CPF
	d.ANTT = req.ANTT
	d.VehiclePlate = req.VehiclePlate
	d.VehicleType = req.VehicleType
	d.PixKey = req.PixKey
	if req.Status != "" {
		d.Status = driverModel.DriverStatus(req.Status)
	}

	if err := dc.DB.Save(&d).Error; err != nil {
		logger.Error("Failed to update driver", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Driver updated",
		Data:    d,
	})
}

// UpdateStatus changes only the driver status.
func (dc *DriverController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid driver id",
		})
	}

	var req driverTypes.DriverStatusRequest
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

	result := dc.DB.Model(&driverModel.Driver{}).Where("id = ?", id).
		Update("status", driverModel.DriverStatus(req.Status))
	if result.Error != nil {
		logger.Error("Failed to update driver status", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Driver not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Status updated",
		Data:    fiber.Map{"status": req.Status},
	})
}

// Destroy removes a driver. Irreversible.
func (dc *DriverController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid driver id",
		})
	}

	result := dc.DB.Delete(&driverModel.Driver{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete driver", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Driver not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Driver deleted",
	})
}
