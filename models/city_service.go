package models

import "gorm.io/gorm"

// CityService is a citizen-facing service listing (how to obtain a document,
// request a pruning, ...), optionally linked to the secretaria providing it.
type CityService struct {
	gorm.Model
	Name         string      `gorm:"size:200;not null" json:"name"`
	Slug         string      `gorm:"size:200;not null;unique" json:"slug"`
	Description  string      `gorm:"type:text" json:"description"`
	Requirements string      `gorm:"type:text" json:"requirements"`
	OnlineURL    string      `gorm:"size:500" json:"online_url"`
	SecretariaID *uint       `json:"secretaria_id"`
	Secretaria   *Secretaria `gorm:"foreignKey:SecretariaID" json:"secretaria"`
	Status       string      `gorm:"type:content_status;default:'published';not null" json:"status"`
}
