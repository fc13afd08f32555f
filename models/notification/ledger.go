package notification

import (
	"time"

	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
)

// LedgerEntry records that the client of a freight has been notified for a
// given status. The (freight_id, status) pair is the composite key; an
// entry is written at most once and never expires.
type LedgerEntry struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	FreightID uint                       `gorm:"not null;uniqueIndex:idx_ledger_freight_status" json:"freight_id"`
	Status    freightModel.FreightStatus `gorm:"type:varchar(20);not null;uniqueIndex:idx_ledger_freight_status" json:"status"`

	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "notification_ledger"
}
