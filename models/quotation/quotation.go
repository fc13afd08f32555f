package quotation

import (
	"time"
)

type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "DRAFT"
	QuotationStatusSent     QuotationStatus = "SENT"
	QuotationStatusAccepted QuotationStatus = "ACCEPTED"
	QuotationStatusRejected QuotationStatus = "REJECTED"
)

func (qs QuotationStatus) IsValid() bool {
	switch qs {
	case QuotationStatusDraft, QuotationStatusSent, QuotationStatusAccepted, QuotationStatusRejected:
		return true
	default:
		return false
	}
}

// Quotation represents a price estimate for a prospect or existing client.
type Quotation struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ClientName  string `gorm:"type:varchar(255);not null" json:"client_name"` // may be a prospect
	Origin      string `gorm:"type:varchar(255);not null" json:"origin"`
	Destination string `gorm:"type:varchar(255);not null" json:"destination"`
	VehicleType string `gorm:"type:varchar(50)" json:"vehicle_type"`

	WeightKG   *float64 `gorm:"" json:"weight_kg,omitempty"`
	ValueGoods *float64 `gorm:"" json:"value_goods,omitempty"`

	CalculatedCost float64 `gorm:"" json:"calculated_cost"`
	FinalPrice     float64 `gorm:"" json:"final_price"`

	Status QuotationStatus `gorm:"type:varchar(20);not null;default:DRAFT" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
