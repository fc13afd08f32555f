package quotation

import (
	"github.com/kodraiti-design/eagles-transportes/logger"
	quotationModel "github.com/kodraiti-design/eagles-transportes/models/quotation"
	"github.com/kodraiti-design/eagles-transportes/services/quoteparser"
	"github.com/kodraiti-design/eagles-transportes/types"
	quotationType "github.com/kodraiti-design/eagles-transportes/types/quotation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QuotationController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewQuotationController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *QuotationController {
	return &QuotationController{DB: db, Logger: asyncLogger}
}

// Index lists quotations, newest first.
func (qc *QuotationController) Index(c *fiber.Ctx) error {
	var quotations []quotationModel.Quotation
	if err := qc.DB.Order("created_at DESC").Find(&quotations).Error; err != nil {
		logger.Error("Failed to list quotations", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation list",
		Data:    quotations,
	})
}

func (qc *QuotationController) Store(c *fiber.Ctx) error {
	var req quotationType.QuotationRequest
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

	status := quotationModel.QuotationStatusDraft
	if req.Status != "" {
		status = quotationModel.QuotationStatus(req.Status)
	}

	quotation := quotationModel.Quotation{
		ClientName:     req.ClientName,
		Origin:         req.Origin,
		Destination:    req.Destination,
		VehicleType:    req.VehicleType,
		WeightKG:       req.WeightKG,
		ValueGoods:     req.ValueGoods,
		CalculatedCost: req.CalculatedCost,
		FinalPrice:     req.FinalPrice,
		Status:         status,
	}
	if err := qc.DB.Create(&quotation).Error; err != nil {
		logger.Error("Failed to create quotation", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Quotation created",
		Data:    quotation,
	})
}

func (qc *QuotationController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid quotation id",
		})
	}

	var quotation quotationModel.Quotation
	if err := qc.DB.First(&quotation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Quotation not found",
		})
	}

	var req quotationType.QuotationRequest
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

	quotation.ClientName = req.ClientName
	quotation.Origin = req.Origin
	quotation.Destination = req.Destination
	quotation.VehicleType = req.VehicleType
	quotation.WeightKG = req.WeightKG
	quotation.ValueGoods = req.ValueGoods
	quotation.CalculatedCost = req.CalculatedCost
	quotation.FinalPrice = req.FinalPrice
	if req.Status != "" {
		quotation.Status = quotationModel.QuotationStatus(req.Status)
	}

	if err := qc.DB.Save(&quotation).Error; err != nil {
		logger.Error("Failed to update quotation", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation updated",
		Data:    quotation,
	})
}

func (qc *QuotationController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid quotation id",
		})
	}

	result := qc.DB.Delete(&quotationModel.Quotation{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete quotation", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Quotation not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation deleted",
	})
}

// Parse runs pasted free text through the extraction model and returns a
// quotation draft. Nothing is persisted; the operator reviews the draft
// and saves it through Store.
func (qc *QuotationController) Parse(c *fiber.Ctx) error {
	var req quotationType.ParseRequest
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

	parsed, err := quoteparser.ParseRequestText(c.Context(), req.Text)
	if err != nil {
		logger.Error("Quotation text parse failed", err)
		return c.Status(fiber.StatusBadGateway).JSON(types.ApiResponse{
			Status:  fiber.StatusBadGateway,
			Message: "Failed to parse quotation text",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Quotation draft extracted",
		Data:    parsed,
	})
}
