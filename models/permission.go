package models

import "gorm.io/gorm"

// Permission grants one user CRUD capabilities over one CMS module
// ("posts", "events", "forms", ...). Assignment is an upsert keyed by
// (user_id, module); revocation deletes the row.
type Permission struct {
	gorm.Model
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_module" json:"user_id"`
	Module    string `gorm:"size:50;not null;uniqueIndex:idx_user_module" json:"module"`
	CanCreate bool   `gorm:"default:false" json:"can_create"`
	CanRead   bool   `gorm:"default:true" json:"can_read"`
	CanUpdate bool   `gorm:"default:false" json:"can_update"`
	CanDelete bool   `gorm:"default:false" json:"can_delete"`
	User      User   `gorm:"foreignKey:UserID" json:"-"`
}

func (p Permission) Allows(action string) bool {
	switch action {
	case "create":
		return p.CanCreate
	case "read":
		return p.CanRead
	case "update":
		return p.CanUpdate
	case "delete":
		return p.CanDelete
	}
	return false
}
