package dto

type CreatePostDTO struct {
	Title      string `json:"title" binding:"required,max=200"`
	Slug       string `json:"slug" binding:"omitempty,max=200"`
	Summary    string `json:"summary" binding:"max=500"`
	Body       string `json:"body"`
	CoverImage string `json:"cover_image"`
	Status     string `json:"status" binding:"omitempty,oneof=draft published"`
	CategoryID *uint  `json:"category_id"`
	TagIDs     []uint `json:"tag_ids"`
}

type UpdatePostDTO struct {
	Title      *string `json:"title" binding:"omitempty,max=200"`
	Slug       *string `json:"slug" binding:"omitempty,max=200"`
	Summary    *string `json:"summary" binding:"omitempty,max=500"`
	Body       *string `json:"body"`
	CoverImage *string `json:"cover_image"`
	Status     *string `json:"status" binding:"omitempty,oneof=draft published"`
	CategoryID *uint   `json:"category_id"`
	TagIDs     []uint  `json:"tag_ids"`
}

type PostListQuery struct {
	ListQuery
	Status     string `form:"status"`
	CategoryID uint   `form:"category_id"`
	Tag        string `form:"tag"`
}
