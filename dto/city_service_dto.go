package dto

type CityServiceDTO struct {
	Name         string `json:"name" binding:"required,max=200"`
	Slug         string `json:"slug" binding:"omitempty,max=200"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	OnlineURL    string `json:"online_url" binding:"omitempty,url"`
	SecretariaID *uint  `json:"secretaria_id"`
	Status       string `json:"status" binding:"omitempty,oneof=draft published"`
}

type CityServiceListQuery struct {
	ListQuery
	SecretariaID uint   `form:"secretaria_id"`
	Status       string `form:"status"`
}
