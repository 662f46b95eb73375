package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	gorm.Model
	Title       string    `gorm:"size:200;not null" json:"title"`
	Slug        string    `gorm:"size:200;not null;unique" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Location    string    `gorm:"size:300" json:"location"`
	CoverImage  string    `gorm:"size:500" json:"cover_image"`
	StartsAt    time.Time `gorm:"not null" json:"starts_at"`
	EndsAt      time.Time `gorm:"not null" json:"ends_at"`
	Status      string    `gorm:"type:content_status;default:'draft';not null" json:"status"`
}
