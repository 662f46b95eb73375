package models

import (
	"time"

	"gorm.io/gorm"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

type Post struct {
	gorm.Model
	Title       string     `gorm:"size:200;not null" json:"title"`
	Slug        string     `gorm:"size:200;not null;unique" json:"slug"`
	Summary     string     `gorm:"size:500" json:"summary"`
	Body        string     `gorm:"type:text" json:"body"`
	CoverImage  string     `gorm:"size:500" json:"cover_image"`
	Status      string     `gorm:"type:content_status;default:'draft';not null" json:"status"`
	PublishedAt *time.Time `json:"published_at"`
	AuthorID    uint       `json:"author_id"`
	Author      User       `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID  *uint      `json:"category_id"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category"`
	Tags        []Tag      `gorm:"many2many:post_tags" json:"tags"`
}
