package dto

type GalleryImageDTO struct {
	URL      string `json:"url" binding:"required,max=500"`
	Caption  string `json:"caption" binding:"max=300"`
	Position int    `json:"position"`
}

type CreateGalleryDTO struct {
	Title       string            `json:"title" binding:"required,max=200"`
	Slug        string            `json:"slug" binding:"omitempty,max=200"`
	Description string            `json:"description" binding:"max=500"`
	Images      []GalleryImageDTO `json:"images"`
}

type UpdateGalleryDTO struct {
	Title       *string           `json:"title" binding:"omitempty,max=200"`
	Slug        *string           `json:"slug" binding:"omitempty,max=200"`
	Description *string           `json:"description" binding:"omitempty,max=500"`
	Images      []GalleryImageDTO `json:"images"`
}
