package vehicletype

import (
	"github.com/kodraiti-design/eagles-transportes/logger"
	vehicletypeModel "github.com/kodraiti-design/eagles-transportes/models/vehicletype"
	"github.com/kodraiti-design/eagles-transportes/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VehicleTypeController struct {
	DB *gorm.DB
}

func NewVehicleTypeController(db *gorm.DB) *VehicleTypeController {
	return &VehicleTypeController{DB: db}
}

func (vc *VehicleTypeController) Index(c *fiber.Ctx) error {
	var vehicleTypes []vehicletypeModel.VehicleType
	if err := vc.DB.Order("name ASC").Find(&vehicleTypes).Error; err != nil {
		logger.Error("Failed to list vehicle types", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicle type list",
		Data:    vehicleTypes,
	})
}

func (vc *VehicleTypeController) Store(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}
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

	var existing vehicletypeModel.VehicleType
	if err := vc.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Vehicle type already exists",
		})
	}

	vehicleType := vehicletypeModel.VehicleType{Name: req.Name}
	if err := vc.DB.Create(&vehicleType).Error; err != nil {
		logger.Error("Failed to create vehicle type", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Vehicle type created",
		Data:    vehicleType,
	})
}

func (vc *VehicleTypeController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid vehicle type id",
		})
	}

	result := vc.DB.Delete(&vehicletypeModel.VehicleType{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete vehicle type", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Vehicle type not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vehicle type deleted",
	})
}
