package client

// ClientRequest creates or updates a client record.
type ClientRequest struct {
	Name  string `json:"name" validate:"required"`
	CNPJ  string `json:"cnpj" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`

	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}
