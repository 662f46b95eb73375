package services

import "github.com/prefeitura-digital/cms-go/repositories"

type Services struct {
	User        *UserService
	Permission  *PermissionService
	Post        *PostService
	Taxonomy    *TaxonomyService
	Page        *PageService
	Event       *EventService
	Gallery     *GalleryService
	Media       *MediaService
	Secretaria  *SecretariaService
	CityService *CityServiceService
	Setting     *SettingService
	Form        *FormService
	Audit       *AuditService
}

func New(repos *repositories.Repos) *Services {
	return &Services{
		User:        NewUserService(repos),
		Permission:  NewPermissionService(repos),
		Post:        NewPostService(repos),
		Taxonomy:    NewTaxonomyService(repos),
		Page:        NewPageService(repos),
		Event:       NewEventService(repos),
		Gallery:     NewGalleryService(repos),
		Media:       NewMediaService(repos),
		Secretaria:  NewSecretariaService(repos),
		CityService: NewCityServiceService(repos),
		Setting:     NewSettingService(repos),
		Form:        NewFormService(repos),
		Audit:       NewAuditService(repos),
	}
}
