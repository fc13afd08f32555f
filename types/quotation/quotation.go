package quotation

// QuotationRequest creates or updates a quotation.
type QuotationRequest struct {
	ClientName     string   `json:"client_name" validate:"required"`
	Origin         string   `json:"origin" validate:"required"`
	Destination    string   `json:"destination" validate:"required"`
	VehicleType    string   `json:"vehicle_type"`
	WeightKG       *float64 `json:"weight_kg,omitempty" validate:"omitempty,gte=0"`
	ValueGoods     *float64 `json:"value_goods,omitempty" validate:"omitempty,gte=0"`
	CalculatedCost float64  `json:"calculated_cost" validate:"gte=0"`
	FinalPrice     float64  `json:"final_price" validate:"gte=0"`
	Status         string   `json:"status" validate:"omitempty,oneof=DRAFT SENT ACCEPTED REJECTED"`
}

// ParseRequest carries free text to be turned into a quotation draft.
type ParseRequest struct {
	Text string `json:"text" validate:"required,min=10"`
}
