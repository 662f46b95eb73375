package dto

type CreatePageDTO struct {
	Title  string `json:"title" binding:"required,max=200"`
	Slug   string `json:"slug" binding:"omitempty,max=200"`
	Body   string `json:"body"`
	Status string `json:"status" binding:"omitempty,oneof=draft published"`
}

type UpdatePageDTO struct {
	Title  *string `json:"title" binding:"omitempty,max=200"`
	Slug   *string `json:"slug" binding:"omitempty,max=200"`
	Body   *string `json:"body"`
	Status *string `json:"status" binding:"omitempty,oneof=draft published"`
}
