package template

import (
	"github.com/kodraiti-design/eagles-transportes/logger"
	templateModel "github.com/kodraiti-design/eagles-transportes/models/template"
	"github.com/kodraiti-design/eagles-transportes/types"
	templateType "github.com/kodraiti-design/eagles-transportes/types/template"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

func (tc *TemplateController) Index(c *fiber.Ctx) error {
	var templates []templateModel.MessageTemplate
	if err := tc.DB.Order("name ASC").Find(&templates).Error; err != nil {
		logger.Error("Failed to list message templates", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Message template list",
		Data:    templates,
	})
}

func (tc *TemplateController) Store(c *fiber.Ctx) error {
	var req templateType.TemplateRequest
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

	var existing templateModel.MessageTemplate
	if err := tc.DB.Where("slug = ?", req.Slug).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "A template with this slug already exists",
		})
	}

	tmpl := templateModel.MessageTemplate{
		Name:        req.Name,
		Slug:        req.Slug,
		Content:     req.Content,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}

	if err := tc.DB.Create(&tmpl).Error; err != nil {
		logger.Error("Failed to create message template", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Message template created",
		Data:    tmpl,
	})
}

func (tc *TemplateController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid template id",
		})
	}

	var tmpl templateModel.MessageTemplate
	if err := tc.DB.First(&tmpl, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Message template not found",
		})
	}

	var req templateType.TemplateRequest
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

	tmpl.Name = req.Name
	tmpl.Slug = req.Slug
	tmpl.Content = req.Content
	tmpl.Description = req.Description
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}

	if err := tc.DB.Save(&tmpl).Error; err != nil {
		logger.Error("Failed to update message template", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Message template updated",
		Data:    tmpl,
	})
}

func (tc *TemplateController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid template id",
		})
	}

	result := tc.DB.Delete(&templateModel.MessageTemplate{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete message template", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Message template not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Message template deleted",
	})
}
