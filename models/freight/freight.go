package freight

import (
	"encoding/json"
	"time"

	clientModel "github.com/kodraiti-design/eagles-transportes/models/client"
	driverModel "github.com/kodraiti-design/eagles-transportes/models/driver"
)

// Freight represents one shipment job tracked through the status lifecycle.
type Freight struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Exactly one client; at most one assigned driver.
	ClientID uint               `gorm:"not null;index" json:"client_id"`
	Client   clientModel.Client `gorm:"foreignKey:ClientID" json:"client"`

	DriverID *uint               `gorm:"index" json:"driver_id,omitempty"`
	Driver   *driverModel.Driver `gorm:"foreignKey:DriverID" json:"driver,omitempty"`

	Origin      string    `gorm:"type:varchar(255);not null" json:"origin"`
	Destination string    `gorm:"type:varchar(255);not null" json:"destination"`
	PickupDate  time.Time `gorm:"" json:"pickup_date"`
	DeliveryDate time.Time `gorm:"" json:"delivery_date"`

	ValorMotorista float64 `gorm:"not null" json:"valor_motorista"`
	ValorCliente   float64 `gorm:"not null" json:"valor_cliente"`

	Status FreightStatus `gorm:"type:varchar(20);not null;default:QUOTED;index" json:"status"`

	Observation     *string `gorm:"type:text" json:"observation,omitempty"`
	RejectionReason *string `gorm:"type:text" json:"rejection_reason,omitempty"`

	// JSON array of stored proof-of-delivery photo paths, set on delivery.
	DeliveryPhotos *string    `gorm:"type:text" json:"delivery_photos,omitempty"`
	AcceptedAt     *time.Time `gorm:"" json:"accepted_at,omitempty"`
	DeliveredAt    *time.Time `gorm:"" json:"delivered_at,omitempty"`

	// Billing bookkeeping. Boleto issuance lives outside this system; only
	// the references are stored.
	BillingStatus    BillingStatus `gorm:"type:varchar(20);not null;default:PENDING" json:"billing_status"`
	CTENumber        *string       `gorm:"type:varchar(100)" json:"cte_number,omitempty"`
	BoletoID         *string       `gorm:"type:varchar(100)" json:"boleto_id,omitempty"`
	BoletoURL        *string       `gorm:"type:varchar(500)" json:"boleto_url,omitempty"`
	BoletoExpiryDate *time.Time    `gorm:"" json:"boleto_expiry_date,omitempty"`

	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// PhotoPaths decodes the stored delivery photo JSON list. An unset or
// malformed value yields an empty slice.
func (f *Freight) PhotoPaths() []string {
	if f.DeliveryPhotos == nil || *f.DeliveryPhotos == "" {
		return nil
	}
	var paths []string
	if err := json.Unmarshal([]byte(*f.DeliveryPhotos), &paths); err != nil {
		return nil
	}
	return paths
}

// SetPhotoPaths encodes paths into the delivery photo column.
func (f *Freight) SetPhotoPaths(paths []string) error {
	encoded, err := json.Marshal(paths)
	if err != nil {
		return err
	}
	s := string(encoded)
	f.DeliveryPhotos = &s
	return nil
}

// HasDriver reports whether a driver has been assigned.
func (f *Freight) HasDriver() bool {
	return f.DriverID != nil
}
