package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
)

// User represents a back-office account.
type User struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string `gorm:"type:varchar(255);not null;unique;index" json:"username"`
	HashedPassword string `gorm:"type:varchar(255);not null" json:"-"`
	Role           Role   `gorm:"type:varchar(20);not null;default:OPERATOR" json:"role"`

	// Comma-separated capability list (legacy storage shape). Parsed into a
	// typed set by services.ParseCapabilities; never matched as a raw string.
	Permissions string `gorm:"type:text;default:''" json:"permissions"`

	IsActive  bool       `gorm:"default:true" json:"is_active"`
	IsOnline  bool       `gorm:"default:false" json:"is_online"`
	LastSeen  time.Time  `gorm:"autoCreateTime" json:"last_seen"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// PermissionList splits the stored comma-separated capabilities, dropping
// empty segments left by trailing commas.
func (u *User) PermissionList() []string {
	if u.Permissions == "" {
		return nil
	}
	parts := strings.Split(u.Permissions, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
