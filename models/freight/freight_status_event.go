package freight

import (
	"time"
)

// FreightStatusEvent represents a status change event for a freight
type FreightStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for freight relationship
	FreightID uint    `gorm:"not null;index" json:"freight_id"`
	Freight   Freight `gorm:"foreignKey:FreightID" json:"freight"`

	Status    FreightStatus `gorm:"size:20;not null" json:"status"`
	EventType string        `gorm:"type:varchar(50);not null;index" json:"event_type"` // override, assign, accept, reject, start_transit, deliver
	CreatedBy string        `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the FreightStatusEvent model
func (FreightStatusEvent) TableName() string {
	return "freight_status_events"
}
