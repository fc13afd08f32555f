package template

// TemplateRequest creates or updates a message template.
type TemplateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Slug        string  `json:"slug" validate:"required,lowercase"`
	Content     string  `json:"content" validate:"required"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
