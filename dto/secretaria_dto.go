package dto

type SecretariaDTO struct {
	Name        string `json:"name" binding:"required,max=200"`
	Acronym     string `json:"acronym" binding:"max=20"`
	Slug        string `json:"slug" binding:"omitempty,max=200"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"max=300"`
	Phone       string `json:"phone" binding:"max=30"`
	Email       string `json:"email" binding:"omitempty,email"`
	Responsible string `json:"responsible" binding:"max=100"`
}
