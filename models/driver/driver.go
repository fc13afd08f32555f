package driver

import (
	"time"
)

type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "ACTIVE"
	DriverStatusInactive DriverStatus = "INACTIVE"
	DriverStatusPending  DriverStatus = "PENDING"
)

func (ds DriverStatus) String() string {
	return string(ds)
}

func (ds DriverStatus) IsValid() bool {
	switch ds {
	case DriverStatusActive, DriverStatusInactive, DriverStatusPending:
		return true
	default:
		return false
	}
}

// Assignable reports whether the driver may appear in the assignment
// picker. PENDING drivers are assignable but flagged for document
// follow-up; only INACTIVE drivers are excluded.
func (ds DriverStatus) Assignable() bool {
	return ds != DriverStatusInactive
}

// Driver represents a transport partner.
type Driver struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone string `gorm:"type:varchar(20);not null" json:"phone"`
	CPF   string `gorm:"type:varchar(14);not null;unique;index" json:"cpf"`
	ANTT  string `gorm:"type:varchar(50)" json:"antt"`

	VehiclePlate string `gorm:"type:varchar(10)" json:"vehicle_plate"`
	VehicleType  string `gorm:"type:varchar(50)" json:"vehicle_type"`
	PixKey       *string `gorm:"type:varchar(255)" json:"pix_key,omitempty"`

	Status    DriverStatus `gorm:"type:varchar(20);not null;default:ACTIVE" json:"status"`
	IsBlocked bool         `gorm:"default:false" json:"is_blocked"`

	// Document storage paths
	CNHPath          *string `gorm:"type:varchar(500)" json:"cnh_path,omitempty"`
	AddressProofPath *string `gorm:"type:varchar(500)" json:"address_proof_path,omitempty"`
	CRLVPath         *string `gorm:"type:varchar(500)" json:"crlv_path,omitempty"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
