package setting

import (
	"time"
)

// SystemSetting is a key/value row for operational configuration, e.g.
// external integration keys. Values are stored AES-GCM encrypted.
type SystemSetting struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Key            string    `gorm:"type:varchar(100);not null;unique;index" json:"key"`
	EncryptedValue string    `gorm:"column:encrypted_value;type:text" json:"-"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the SystemSetting model
func (SystemSetting) TableName() string {
	return "system_settings"
}
