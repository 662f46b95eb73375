package models

import "gorm.io/gorm"

// Secretaria is a municipal department.
type Secretaria struct {
	gorm.Model
	Name        string `gorm:"size:200;not null" json:"name"`
	Acronym     string `gorm:"size:20" json:"acronym"`
	Slug        string `gorm:"size:200;not null;unique" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Address     string `gorm:"size:300" json:"address"`
	Phone       string `gorm:"size:30" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Responsible string `gorm:"size:100" json:"responsible"`
}
