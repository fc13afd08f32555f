package setting

// SettingRequest upserts a system setting. The value is encrypted before
// storage and never echoed back.
type SettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
}
