package freight

import (
	"time"
)

// FreightCreateRequest creates a freight in QUOTED or RECRUITING.
type FreightCreateRequest struct {
	ClientID       uint      `json:"client_id" validate:"required"`
	Origin         string    `json:"origin" validate:"required"`
	Destination    string    `json:"destination" validate:"required"`
	PickupDate     time.Time `json:"pickup_date" validate:"required"`
	DeliveryDate   time.Time `json:"delivery_date" validate:"required"`
	ValorMotorista float64   `json:"valor_motorista" validate:"gte=0"`
	ValorCliente   float64   `json:"valor_cliente" validate:"gte=0"`
	Status         string    `json:"status" validate:"omitempty,oneof=QUOTED RECRUITING"`
	Observation    string    `json:"observation"`
}

// FreightUpdateRequest edits freight fields; Status, when present, is a
// manual override and may name any valid status.
type FreightUpdateRequest struct {
	ClientID       uint      `json:"client_id" validate:"required"`
	Origin         string    `json:"origin" validate:"required"`
	Destination    string    `json:"destination" validate:"required"`
	PickupDate     time.Time `json:"pickup_date" validate:"required"`
	DeliveryDate   time.Time `json:"delivery_date" validate:"required"`
	ValorMotorista float64   `json:"valor_motorista" validate:"gte=0"`
	ValorCliente   float64   `json:"valor_cliente" validate:"gte=0"`
	Status         string    `json:"status" validate:"omitempty,oneof=QUOTED RECRUITING ASSIGNED IN_TRANSIT DELIVERED REJECTED"`
	Observation    string    `json:"observation"`
}

// StatusOverrideRequest is the operator's direct status change.
type StatusOverrideRequest struct {
	Status string `json:"status" validate:"required,oneof=QUOTED RECRUITING ASSIGNED IN_TRANSIT DELIVERED REJECTED"`
}

// BillingStatusRequest updates the billing bookkeeping fields.
type BillingStatusRequest struct {
	BillingStatus string  `json:"billing_status" validate:"required,oneof=PENDING ISSUED PAID CANCELLED"`
	CTENumber     *string `json:"cte_number,omitempty"`
}

// RejectRequest carries the driver's mandatory rejection reason.
type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}
