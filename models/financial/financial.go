package financial

import (
	"time"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

func (tt TransactionType) IsValid() bool {
	return tt == TransactionTypeIncome || tt == TransactionTypeExpense
}

type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "PAID"
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusOverdue TransactionStatus = "OVERDUE"
)

func (ts TransactionStatus) IsValid() bool {
	switch ts {
	case TransactionStatusPaid, TransactionStatusPending, TransactionStatusOverdue:
		return true
	default:
		return false
	}
}

// Category groups financial transactions. System categories cannot be
// deleted.
type Category struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string          `gorm:"type:varchar(100);not null;unique;index" json:"name"`
	Type     TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	IsSystem bool            `gorm:"default:false" json:"is_system"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the Category model
func (Category) TableName() string {
	return "financial_categories"
}

// Transaction is a single income or expense row, optionally tied to a
// freight (e.g. the driver payout of a delivered freight).
type Transaction struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Type        TransactionType   `gorm:"type:varchar(10);not null" json:"type"`
	Category    string            `gorm:"type:varchar(100)" json:"category"` // FIXED, VARIABLE, FREIGHT, MAINTENANCE, SALARY, FUEL
	Description string            `gorm:"type:varchar(500);not null" json:"description"`
	Amount      float64           `gorm:"not null" json:"amount"`
	Date        time.Time         `gorm:"" json:"date"`
	Status      TransactionStatus `gorm:"type:varchar(10);not null;default:PENDING" json:"status"`

	RelatedFreightID *uint `gorm:"index" json:"related_freight_id,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Transaction model
func (Transaction) TableName() string {
	return "financial_transactions"
}
