package freight

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kodraiti-design/eagles-transportes/logger"
	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
	"github.com/kodraiti-design/eagles-transportes/services/lifecycle"
	"github.com/kodraiti-design/eagles-transportes/types"
	freightTypes "github.com/kodraiti-design/eagles-transportes/types/freight"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Driver self-service handlers. These routes are reachable without
// authentication: the acceptance link itself is the credential, so
// drivers without system accounts can respond to offers.

// discardUploads removes a freight's proof directory after a failed
// delivery so no orphaned files accumulate.
func discardUploads(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		logger.Error("Failed to remove delivery uploads", err)
	}
}

// Accept moves an open offer (QUOTED/RECRUITING) to ASSIGNED.
func (fc *FreightController) Accept(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	f, err := fc.Engine.Accept(uint(id))
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freight accepted",
		Data:    f,
	})
}

// Reject declines an offer with a mandatory reason.
func (fc *FreightController) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	var req freightTypes.RejectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	f, err := fc.Engine.Reject(uint(id), req.Reason)
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Freight rejected",
		Data:    f,
	})
}

// StartTransit confirms pickup: ASSIGNED -> IN_TRANSIT.
func (fc *FreightController) StartTransit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	f, err := fc.Engine.StartTransit(uint(id))
	if err != nil {
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Transit started",
		Data:    f,
	})
}

// Deliver finalizes a freight with proof-of-delivery photos. The photo
// count is validated before anything is written to disk or the database.
func (fc *FreightController) Deliver(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid freight id",
		})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Multipart form required",
		})
	}

	files := form.File["files"]
	if err := lifecycle.ValidatePhotoCount(len(files)); err != nil {
		return lifecycleError(c, err)
	}

	// The transition is still checked by the engine; verify up front so no
	// files are saved for a freight that cannot be delivered.
	f, err := fc.Engine.Get(uint(id))
	if err != nil {
		return lifecycleError(c, err)
	}
	if f.Status != freightModel.FreightStatusInTransit {
		return lifecycleError(c, lifecycle.ErrInvalidTransition)
	}

	uploadDir := filepath.Join("uploads", "delivery_proofs", fmt.Sprintf("%d", id))
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		logger.Error("Failed to create upload directory", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to store photos",
		})
	}

	savedPaths := make([]string, 0, len(files))
	for _, file := range files {
		name := uuid.NewString() + filepath.Ext(file.Filename)
		dest := filepath.Join(uploadDir, name)
		if err := c.SaveFile(file, dest); err != nil {
			logger.Error("Failed to save delivery photo", err)
			discardUploads(uploadDir)
			return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
				Status:  fiber.StatusInternalServerError,
				Message: "Failed to store photos",
			})
		}
		savedPaths = append(savedPaths, dest)
	}

	delivered, err := fc.Engine.Deliver(uint(id), savedPaths)
	if err != nil {
		// The status may have moved between the up-front check and the
		// transaction; the saved files would be orphans.
		discardUploads(uploadDir)
		return lifecycleError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Delivery confirmed",
		Data: fiber.Map{
			"freight": delivered,
			"photos":  savedPaths,
		},
	})
}
