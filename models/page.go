package models

import "gorm.io/gorm"

// Page is an institutional page of the public site, routed by slug.
type Page struct {
	gorm.Model
	Title  string `gorm:"size:200;not null" json:"title"`
	Slug   string `gorm:"size:200;not null;unique" json:"slug"`
	Body   string `gorm:"type:text" json:"body"`
	Status string `gorm:"type:content_status;default:'draft';not null" json:"status"`
}
