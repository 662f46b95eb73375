package models

import "gorm.io/gorm"

type Gallery struct {
	gorm.Model
	Title       string         `gorm:"size:200;not null" json:"title"`
	Slug        string         `gorm:"size:200;not null;unique" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	Images      []GalleryImage `gorm:"foreignKey:GalleryID" json:"images"`
}

type GalleryImage struct {
	gorm.Model
	GalleryID uint   `gorm:"not null;index" json:"gallery_id"`
	URL       string `gorm:"size:500;not null" json:"url"`
	Caption   string `gorm:"size:300" json:"caption"`
	Position  int    `gorm:"default:0" json:"position"`
}
