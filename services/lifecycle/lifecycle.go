package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	driverModel "github.com/kodraiti-design/eagles-transportes/models/driver"
	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"

	"gorm.io/gorm"
)

// MinDeliveryPhotos is the proof-of-delivery floor. Fewer photos reject
// the deliver action before anything is written.
const MinDeliveryPhotos = 3

var (
	ErrFreightNotFound     = errors.New("freight not found")
	ErrDriverNotFound      = errors.New("driver not found")
	ErrInvalidStatus       = errors.New("invalid freight status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrOfferClosed         = errors.New("freight offer is no longer open")
	ErrEmptyReason         = errors.New("rejection reason is required")
	ErrNotEnoughPhotos     = fmt.Errorf("minimum of %d photos required", MinDeliveryPhotos)
	ErrDriverNotAssignable = errors.New("driver is blocked or inactive")
)

// ValidateOverrideTarget checks an operator's manual status target. The
// override path accepts any valid status regardless of the current one;
// only the driver self-service path is held to the sequential table.
func ValidateOverrideTarget(target freightModel.FreightStatus) error {
	if !target.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// ValidateRejectReason rejects empty or whitespace-only reasons.
func ValidateRejectReason(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrEmptyReason
	}
	return nil
}

// ValidatePhotoCount enforces the proof-of-delivery minimum.
func ValidatePhotoCount(count int) error {
	if count < MinDeliveryPhotos {
		return ErrNotEnoughPhotos
	}
	return nil
}

// Engine validates and applies freight status transitions and driver
// assignment. Every successful mutation appends a FreightStatusEvent in
// the same transaction; nothing is mutated on failure.
type Engine struct {
	DB *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{DB: db}
}

// Get loads one freight with its client and driver.
func (e *Engine) Get(freightID uint) (*freightModel.Freight, error) {
	var f freightModel.Freight
	err := e.DB.Preload("Client").Preload("Driver").First(&f, freightID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFreightNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List loads all freights with their relations, id ascending.
func (e *Engine) List() ([]freightModel.Freight, error) {
	var freights []freightModel.Freight
	if err := e.DB.Preload("Client").Preload("Driver").Order("id asc").Find(&freights).Error; err != nil {
		return nil, err
	}
	return freights, nil
}

// OverrideStatus is the operator path: any valid target status is
// accepted, including jumps across intermediate states. Used for
// correcting bad external data.
func (e *Engine) OverrideStatus(freightID uint, target freightModel.FreightStatus, actor string) (*freightModel.Freight, error) {
	if err := ValidateOverrideTarget(target); err != nil {
		return nil, err
	}

	f, err := e.Get(freightID)
	if err != nil {
		return nil, err
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&freightModel.Freight{}).Where("id = ?", f.ID).
			Updates(map[string]interface{}{"status": target, "updated_by": actor}).Error; err != nil {
			return err
		}
		return e.appendEvent(tx, f.ID, target, "override", actor)
	})
	if err != nil {
		return nil, err
	}

	f.Status = target
	f.UpdatedBy = actor
	return f, nil
}

// AssignDriver sets the freight's driver and nothing else. Status changes
// are a separate, explicit step; reassignment simply overwrites the
// relation.
func (e *Engine) AssignDriver(freightID, driverID uint, actor string) (*freightModel.Freight, error) {
	f, err := e.Get(freightID)
	if err != nil {
		return nil, err
	}

	var d driverModel.Driver
	err = e.DB.First(&d, driverID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDriverNotFound
	}
	if err != nil {
		return nil, err
	}
	if d.IsBlocked || !d.Status.Assignable() {
		return nil, ErrDriverNotAssignable
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&freightModel.Freight{}).Where("id = ?", f.ID).
			Updates(map[string]interface{}{"driver_id": driverID, "updated_by": actor}).Error; err != nil {
			return err
		}
		return e.appendEvent(tx, f.ID, f.Status, "assign", actor)
	})
	if err != nil {
		return nil, err
	}

	return e.Get(freightID)
}

// Accept is the driver self-service acceptance: only open offers (QUOTED
// or RECRUITING) can be accepted.
func (e *Engine) Accept(freightID uint) (*freightModel.Freight, error) {
	f, err := e.Get(freightID)
	if err != nil {
		return nil, err
	}
	if !f.Status.AcceptsDriverResponse() {
		return nil, ErrOfferClosed
	}

	acceptedAt := time.Now()
	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&freightModel.Freight{}).Where("id = ?", f.ID).
			Updates(map[string]interface{}{
				"status":      freightModel.FreightStatusAssigned,
				"accepted_at": acceptedAt,
			}).Error; err != nil {
			return err
		}
		return e.appendEvent(tx, f.ID, freightModel.FreightStatusAssigned, "accept", "driver-link")
	})
	if err != nil {
		return nil, err
	}

	f.Status = freightModel.FreightStatusAssigned
	f.AcceptedAt = &acceptedAt
	return f, nil
}

// Reject moves a freight to REJECTED with a mandatory reason. Follows the
// sequential rules: terminal freights and in-transit freights cannot be
// rejected through this path.
func (e *Engine) Reject(freightID uint, reason string) (*freightModel.Freight, error) {
	if err := ValidateRejectReason(reason); err != nil {
		return nil, err
	}

	f, err := e.Get(freightID)
	if err != nil {
		return nil, err
	}
	if !f.Status.CanTransitionTo(freightModel.FreightStatusRejected) {
		return nil, ErrInvalidTransition
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&freightModel.Freight{}).Where("id = ?", f.ID).
			Updates(map[string]interface{}{
				"status":           freightModel.FreightStatusRejected,
				"rejection_reason": reason,
			}).Error; err != nil {
			return err
		}
		return e.appendEvent(tx, f.ID, freightModel.FreightStatusRejected, "reject", "driver-link")
	})
	if err != nil {
		return nil, err
	}

	f.Status = freightModel.FreightStatusRejected
	f.RejectionReason = &reason
	return f, nil
}

// StartTransit confirms pickup: ASSIGNED -> IN_TRANSIT only.
func (e *Engine) StartTransit(freightID uint) (*freightModel.Freight, error) {
	f, err := e.Get(freightID)
	if err != nil {
		return nil, err
	}
	if !f.Status.CanTransitionTo(freightModel.FreightStatusInTransit) {
		return nil, ErrInvalidTransition
	}

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&freightModel.Freight{}).Where("id = ?", f.ID).
			Update("status", freightModel.FreightStatusInTransit).Error; err != nil {
			return err
		}
		return e.appendEvent(tx, f.ID, freightModel.FreightStatusInTransit, "start_transit", "driver-link")
	})
	if err != nil {
		return nil, err
	}

	f.Status = freightModel.FreightStatusInTransit
	return f, nil
}

// Deliver finalizes a freight: IN_TRANSIT -> DELIVERED with at least
// MinDeliveryPhotos stored proof photos.
func (e *Engine) Deliver(freightID uint, photoPaths []string) (*freightModel.Freight, error) {
	if err := ValidatePhotoCount(len(photoPaths)); err != nil {
		return nil, err
	}

	f, err := e.Get(freightID)
	if err != nil {
		return nil, err
	}
	if !f.Status.CanTransitionTo(freightModel.FreightStatusDelivered) {
		return nil, ErrInvalidTransition
	}

	if err := f.SetPhotoPaths(photoPaths); err != nil {
		return nil, err
	}
	deliveredAt := time.Now()

	err = e.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&freightModel.Freight{}).Where("id = ?", f.ID).
			Updates(map[string]interface{}{
				"status":          freightModel.FreightStatusDelivered,
				"delivered_at":    deliveredAt,
				"delivery_photos": f.DeliveryPhotos,
			}).Error; err != nil {
			return err
		}
		return e.appendEvent(tx, f.ID, freightModel.FreightStatusDelivered, "deliver", "driver-link")
	})
	if err != nil {
		return nil, err
	}

	f.Status = freightModel.FreightStatusDelivered
	f.DeliveredAt = &deliveredAt
	return f, nil
}

// EligibleDrivers lists assignment candidates: blocked and INACTIVE
// drivers are excluded, PENDING drivers are included and flagged by the
// caller.
func (e *Engine) EligibleDrivers() ([]driverModel.Driver, error) {
	var drivers []driverModel.Driver
	err := e.DB.Where("is_blocked = ? AND status <> ?", false, driverModel.DriverStatusInactive).
		Order("name asc").Find(&drivers).Error
	if err != nil {
		return nil, err
	}
	return drivers, nil
}

func (e *Engine) appendEvent(tx *gorm.DB, freightID uint, status freightModel.FreightStatus, eventType, actor string) error {
	event := freightModel.FreightStatusEvent{
		FreightID: freightID,
		Status:    status,
		EventType: eventType,
		CreatedBy: actor,
	}
	return tx.Create(&event).Error
}
