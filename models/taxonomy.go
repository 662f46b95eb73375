package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;not null;unique" json:"slug"`
	Description string `gorm:"size:300" json:"description"`
}

type Tag struct {
	gorm.Model
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;not null;unique" json:"slug"`
}
