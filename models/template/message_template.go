package template

import (
	"time"
)

// MessageTemplate is an operator-editable outbound message text. The
// built-in WhatsApp templates in services/whatsapp are the defaults; rows
// here override them by slug.
type MessageTemplate struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(255);not null;unique;index" json:"name"` // e.g. "Oferta Motorista"
	Slug        string  `gorm:"type:varchar(100);not null;unique;index" json:"slug"` // e.g. "driver_offer"
	Content     string  `gorm:"type:text;not null" json:"content"`
	Description *string `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
