package dto

import "time"

type CreateEventDTO struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Slug        string    `json:"slug" binding:"omitempty,max=200"`
	Description string    `json:"description"`
	Location    string    `json:"location" binding:"max=300"`
	CoverImage  string    `json:"cover_image"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
	Status      string    `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdateEventDTO struct {
	Title       *string    `json:"title" binding:"omitempty,max=200"`
	Slug        *string    `json:"slug" binding:"omitempty,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" binding:"omitempty,max=300"`
	CoverImage  *string    `json:"cover_image"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Status      *string    `json:"status" binding:"omitempty,oneof=draft published"`
}

type EventListQuery struct {
	ListQuery
	Status   string `form:"status"`
	From     string `form:"from"`
	To       string `form:"to"`
	Upcoming bool   `form:"upcoming"`
}
