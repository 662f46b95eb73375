package models

import "gorm.io/gorm"

type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
)

type User struct {
	gorm.Model
	Username string  `gorm:"size:50;not null;unique" json:"username"`
	Password string  `gorm:"size:255;not null" json:"-"`
	Email    *string `gorm:"size:100" json:"email"`
	FullName *string `gorm:"size:100" json:"full_name"`
	Role     string  `gorm:"type:user_role;default:'editor';not null" json:"role"`
	Active   bool    `gorm:"default:true" json:"active"`
}

func (u User) IsAdmin() bool {
	return u.Role == string(UserRoleAdmin)
}
