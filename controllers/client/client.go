package client

import (
	"errors"

	"github.com/kodraiti-design/eagles-transportes/logger"
	clientModel "github.com/kodraiti-design/eagles-transportes/models/client"
	"github.com/kodraiti-design/eagles-transportes/types"
	clientTypes "github.com/kodraiti-design/eagles-transportes/types/client"
	"github.com/kodraiti-design/eagles-transportes/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClientController handles the client registry.
type ClientController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewClientController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *ClientController {
	return &ClientController{DB: db, Logger: asyncLogger}
}

// Index lists all clients.
func (cc *ClientController) Index(c *fiber.Ctx) error {
	var clients []clientModel.Client
	if err := cc.DB.Order("name asc").Find(&clients).Error; err != nil {
		logger.Error("Failed to list clients", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Clients",
		Data:    clients,
	})
}

// Store creates a client.
func (cc *ClientController) Store(c *fiber.Ctx) error {
	var req clientTypes.ClientRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse client request", err)
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
	if req.Phone != "" && !utils.ValidatePhoneNumber(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid phone number",
		})
	}

	cl := clientModel.Client{
		Name:         req.Name,
		CNPJ:         req.CNPJ,
		Email:        req.Email,
		Phone:        req.Phone,
		CEP:          req.CEP,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
	}
	if err := cc.DB.Create(&cl).Error; err != nil {
		logger.Error("Failed to create client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Client created",
		Data:    cl,
	})
}

// Update edits a client record.
func (cc *ClientController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid client id",
		})
	}

	var req clientTypes.ClientRequest
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
	if req.Phone != "" && !utils.ValidatePhoneNumber(req.Phone) {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid phone number",
		})
	}

	var cl clientModel.Client
	if err := cc.DB.First(&cl, id).Error; err != nil {
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

	cl.Name = req.Name
	cl.CNPJ = req.CNPJ
	cl.Email = req.Email
	cl.Phone = req.Phone
	cl.CEP = req.CEP
	cl.Street = req.Street
	cl.Number = req.Number
	cl.Complement = req.Complement
	cl.Neighborhood = req.Neighborhood
	cl.City = req.City
	cl.State = req.State

	if err := cc.DB.Save(&cl).Error; err != nil {
		logger.Error("Failed to update client", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client updated",
		Data:    cl,
	})
}

// Destroy removes a client. Irreversible.
func (cc *ClientController) Destroy(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid client id",
		})
	}

	result := cc.DB.Delete(&clientModel.Client{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete client", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Client not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Client deleted",
	})
}
