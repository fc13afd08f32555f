package client

import (
	"time"
)

// Client represents a billing/shipping counterparty.
type Client struct {
	ID    uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(255);not null;index" json:"name"` // Corporate name
	CNPJ  string `gorm:"type:varchar(18);not null;unique;index" json:"cnpj"`
	Email string `gorm:"type:varchar(255)" json:"email"`
	Phone string `gorm:"type:varchar(20)" json:"phone"`

	// Address fields
	CEP          string `gorm:"type:varchar(9)" json:"cep"`
	Street       string `gorm:"type:varchar(255)" json:"street"`
	Number       string `gorm:"type:varchar(20)" json:"number"`
	Complement   string `gorm:"type:varchar(255)" json:"complement"`
	Neighborhood string `gorm:"type:varchar(255)" json:"neighborhood"`
	City         string `gorm:"type:varchar(255)" json:"city"`
	State        string `gorm:"type:varchar(2)" json:"state"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
