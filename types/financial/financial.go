package financial

import (
	"time"
)

// TransactionRequest creates or updates a financial transaction.
type TransactionRequest struct {
	Type             string    `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category         string    `json:"category"`
	Description      string    `json:"description" validate:"required"`
	Amount           float64   `json:"amount" validate:"required,gt=0"`
	Date             time.Time `json:"date" validate:"required"`
	Status           string    `json:"status" validate:"omitempty,oneof=PAID PENDING OVERDUE"`
	RelatedFreightID *uint     `json:"related_freight_id,omitempty"`
}

// CategoryRequest creates a financial category.
type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=INCOME EXPENSE"`
}
