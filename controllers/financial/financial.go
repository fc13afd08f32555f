package financial

import (
	"github.com/kodraiti-design/eagles-transportes/logger"
	financialModel "github.com/kodraiti-design/eagles-transportes/models/financial"
	"github.com/kodraiti-design/eagles-transportes/types"
	financialType "github.com/kodraiti-design/eagles-transportes/types/financial"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type FinancialController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewFinancialController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *FinancialController {
	return &FinancialController{DB: db, Logger: asyncLogger}
}

// Transactions lists transactions newest first, optionally filtered by
// type and status query params.
func (fc *FinancialController) Transactions(c *fiber.Ctx) error {
	query := fc.DB.Model(&financialModel.Transaction{}).Order("date DESC")

	if t := c.Query("type"); t != "" {
		if !financialModel.TransactionType(t).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid transaction type filter",
			})
		}
		query = query.Where("type = ?", t)
	}
	if s := c.Query("status"); s != "" {
		if !financialModel.TransactionStatus(s).IsValid() {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: "Invalid transaction status filter",
			})
		}
		query = query.Where("status = ?", s)
	}

	var transactions []financialModel.Transaction
	if err := query.Find(&transactions).Error; err != nil {
		logger.Error("Failed to list financial transactions", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Transaction list",
		Data:    transactions,
	})
}

func (fc *FinancialController) StoreTransaction(c *fiber.Ctx) error {
	var req financialType.TransactionRequest
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

	status := financialModel.TransactionStatusPending
	if req.Status != "" {
		status = financialModel.TransactionStatus(req.Status)
	}

	transaction := financialModel.Transaction{
		Type:             financialModel.TransactionType(req.Type),
		Category:         req.Category,
		Description:      req.Description,
		Amount:           req.Amount,
		Date:             req.Date,
		Status:           status,
		RelatedFreightID: req.RelatedFreightID,
	}
	if err := fc.DB.Create(&transaction).Error; err != nil {
		logger.Error("Failed to create financial transaction", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Transaction created",
		Data:    transaction,
	})
}

func (fc *FinancialController) UpdateTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid transaction id",
		})
	}

	var transaction financialModel.Transaction
	if err := fc.DB.First(&transaction, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Transaction not found",
		})
	}

	var req financialType.TransactionRequest
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

	transaction.Type = financialModel.TransactionType(req.Type)
	transaction.Category = req.Category
	transaction.Description = req.Description
	transaction.Amount = req.Amount
	transaction.Date = req.Date
	transaction.RelatedFreightID = req.RelatedFreightID
	if req.Status != "" {
		transaction.Status = financialModel.TransactionStatus(req.Status)
	}

	if err := fc.DB.Save(&transaction).Error; err != nil {
		logger.Error("Failed to update financial transaction", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Transaction updated",
		Data:    transaction,
	})
}

func (fc *FinancialController) DestroyTransaction(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid transaction id",
		})
	}

	result := fc.DB.Delete(&financialModel.Transaction{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete financial transaction", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Transaction not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Transaction deleted",
	})
}

func (fc *FinancialController) Categories(c *fiber.Ctx) error {
	var categories []financialModel.Category
	if err := fc.DB.Order("name ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to list financial categories", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category list",
		Data:    categories,
	})
}

func (fc *FinancialController) StoreCategory(c *fiber.Ctx) error {
	var req financialType.CategoryRequest
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

	var existing financialModel.Category
	if err := fc.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Category already exists",
		})
	}

	category := financialModel.Category{
		Name: req.Name,
		Type: financialModel.TransactionType(req.Type),
	}
	if err := fc.DB.Create(&category).Error; err != nil {
		logger.Error("Failed to create financial category", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Category created",
		Data:    category,
	})
}

func (fc *FinancialController) DestroyCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid category id",
		})
	}

	var category financialModel.Category
	if err := fc.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Category not found",
		})
	}
	if category.IsSystem {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "System categories cannot be deleted",
		})
	}

	if err := fc.DB.Delete(&category).Error; err != nil {
		logger.Error("Failed to delete financial category", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Category deleted",
	})
}
