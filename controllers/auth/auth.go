package auth

import (
	"errors"
	"time"

	"github.com/kodraiti-design/eagles-transportes/constants"
	"github.com/kodraiti-design/eagles-transportes/logger"
	"github.com/kodraiti-design/eagles-transportes/middleware"
	userModel "github.com/kodraiti-design/eagles-transportes/models/user"
	"github.com/kodraiti-design/eagles-transportes/services"
	"github.com/kodraiti-design/eagles-transportes/types"
	authTypes "github.com/kodraiti-design/eagles-transportes/types/auth"
	"github.com/kodraiti-design/eagles-transportes/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthController handles login and user administration.
type AuthController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewAuthController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{DB: db, Logger: asyncLogger}
}

// Login authenticates with username/password and returns a bearer token
// carrying role and permissions claims.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req authTypes.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse login request", err)
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

	var u userModel.User
	err := ac.DB.Where("username = ?", req.Username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !utils.CheckPassword(u.HashedPassword, req.Password)) {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid username or password",
		})
	}
	if err != nil {
		logger.Error("Database error during login", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	if !u.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "Account is disabled",
		})
	}

	token, err := middleware.CreateAccessToken(&u)
	if err != nil {
		logger.Error("Failed to sign access token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create token",
		})
	}

	ac.DB.Model(&u).Updates(map[string]interface{}{"is_online": true, "last_seen": time.Now()})

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Login successful",
		Token:   token,
		Data: fiber.Map{
			"id":          u.ID,
			"username":    u.Username,
			"role":        u.Role,
			"permissions": u.PermissionList(),
		},
	})
}

// Register creates an operator or admin account. Gated on manage_users.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req authTypes.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse register request", err)
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

	if err := services.ValidateCapabilities(req.Permissions, constants.AllPermissions()); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	var existing userModel.User
	if err := ac.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "Username already taken",
		})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create user",
		})
	}

	u := userModel.User{
		Username:       req.Username,
		HashedPassword: hashed,
		Role:           userModel.Role(req.Role),
		Permissions:    req.Permissions,
		IsActive:       true,
	}
	// Admins bypass the capability check entirely, so storing a list for
	// them would only mislead whoever reads the row.
	if u.IsAdmin() {
		u.Permissions = ""
	}
	if err := ac.DB.Create(&u).Error; err != nil {
		logger.Error("Failed to create user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "User created",
		Data:    u,
	})
}

// Profile returns the authenticated user's account record.
func (ac *AuthController) Profile(c *fiber.Ctx) error {
	username := middleware.CurrentUsername(c)
	if username == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "Invalid user claims",
		})
	}

	var u userModel.User
	if err := ac.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Profile",
		Data:    u,
	})
}

// Index lists all accounts for the user management screen.
func (ac *AuthController) Index(c *fiber.Ctx) error {
	var users []userModel.User
	if err := ac.DB.Order("id asc").Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
		})
	}
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Users",
		Data:    users,
	})
}

// Update edits role, permissions, active flag or password of one account.
func (ac *AuthController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid user id",
		})
	}

	var req authTypes.UpdateUserRequest
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

	var u userModel.User
	if err := ac.DB.First(&u, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "User not found",
		})
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Permissions != nil {
		if err := services.ValidateCapabilities(*req.Permissions, constants.AllPermissions()); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Status:  fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
		updates["permissions"] = *req.Permissions
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to hash password",
			})
		}
		updates["hashed_password"] = hashed
	}

	if len(updates) > 0 {
		if err := ac.DB.Model(&u).Updates(updates).Error; err != nil {
			logger.Error("Failed to update user", err)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Database error",
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "User updated",
		Data:    u,
	})
}
