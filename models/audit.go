package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuditLog struct {
	gorm.Model
	UserID       uint           `gorm:"index" json:"user_id"`
	Action       string         `gorm:"size:30;not null" json:"action"`
	ResourceType string         `gorm:"size:50;not null" json:"resource_type"`
	ResourceID   string         `gorm:"size:50" json:"resource_id"`
	OldData      datatypes.JSON `gorm:"type:jsonb" json:"old_data"`
	NewData      datatypes.JSON `gorm:"type:jsonb" json:"new_data"`
	IPAddress    string         `gorm:"size:45" json:"ip_address"`
	UserAgent    string         `gorm:"size:300" json:"user_agent"`
	Description  string         `gorm:"size:300" json:"description"`
}
