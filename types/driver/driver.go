package driver

// DriverRequest creates or updates a driver record.
type DriverRequest struct {
	Name         string  `json:"name" validate:"required"`
	Phone        string  `json:"phone" validate:"required"`
	CPF          string  `json:"cpf" validate:"required"`
	ANTT         string  `json:"antt"`
	VehiclePlate string  `json:"vehicle_plate"`
	VehicleType  string  `json:"vehicle_type"`
	PixKey       *string `json:"pix_key,omitempty"`
	Status       string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE PENDING"`
}

// DriverStatusRequest changes only the driver status.
type DriverStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE PENDING"`
}

// EligibleDriver is a picker row; NeedsDocuments flags PENDING drivers
// for document follow-up without blocking assignment.
type EligibleDriver struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	VehiclePlate   string `json:"vehicle_plate"`
	VehicleType    string `json:"vehicle_type"`
	Status         string `json:"status"`
	NeedsDocuments bool   `json:"needs_documents"`
}
