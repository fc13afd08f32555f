package vehicletype

import (
	"time"
)

// VehicleType is a registry entry feeding the driver and quotation forms.
type VehicleType struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;unique;index" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
