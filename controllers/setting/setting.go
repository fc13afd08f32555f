package setting

import (
	"github.com/kodraiti-design/eagles-transportes/logger"
	settingModel "github.com/kodraiti-design/eagles-transportes/models/setting"
	"github.com/kodraiti-design/eagles-transportes/types"
	settingType "github.com/kodraiti-design/eagles-transportes/types/setting"
	"github.com/kodraiti-design/eagles-transportes/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// Index lists configured setting keys. Values are never returned, only
// whether a value is present.
func (sc *SettingController) Index(c *fiber.Ctx) error {
	var settings []settingModel.SystemSetting
	if err := sc.DB.Order("key ASC").Find(&settings).Error; err != nil {
		logger.Error("Failed to list system settings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	rows := make([]fiber.Map, 0, len(settings))
	for _, s := range settings {
		rows = append(rows, fiber.Map{
			"id":         s.ID,
			"key":        s.Key,
			"has_value":  s.EncryptedValue != "",
			"updated_at": s.UpdatedAt,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "System settings",
		Data:    rows,
	})
}

// Upsert encrypts the value and creates or replaces the setting by key.
func (sc *SettingController) Upsert(c *fiber.Ctx) error {
	var req settingType.SettingRequest
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

	encrypted, err := utils.EncryptData(req.Value)
	if err != nil {
		logger.Error("Failed to encrypt setting value", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Encryption error",
		})
	}

	setting := settingModel.SystemSetting{
		Key:            req.Key,
		EncryptedValue: encrypted,
	}
	if err := sc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"encrypted_value", "updated_at"}),
	}).Create(&setting).Error; err != nil {
		logger.Error("Failed to store system setting", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Setting saved",
		Data:    fiber.Map{"key": req.Key},
	})
}

func (sc *SettingController) Destroy(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Missing setting key",
		})
	}

	result := sc.DB.Where("key = ?", key).Delete(&settingModel.SystemSetting{})
	if result.Error != nil {
		logger.Error("Failed to delete system setting", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Setting not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Setting deleted",
	})
}
