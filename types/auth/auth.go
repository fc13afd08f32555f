package auth

// LoginRequest is the username/password payload for POST /api/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterUserRequest creates an operator account. Permissions is the
// comma-separated capability list; ignored for ADMIN accounts.
type RegisterUserRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Password    string `json:"password" validate:"required,min=6"`
	Role        string `json:"role" validate:"required,oneof=ADMIN OPERATOR"`
	Permissions string `json:"permissions"`
}

// UpdateUserRequest edits role, permissions or active flag.
type UpdateUserRequest struct {
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=ADMIN OPERATOR"`
	Permissions *string `json:"permissions,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
}
