package handlers

import (
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/services"
)

type Handlers struct {
	Auth        *AuthHandler
	User        *UserHandler
	Permission  *PermissionHandler
	Post        *PostHandler
	Taxonomy    *TaxonomyHandler
	Page        *PageHandler
	Event       *EventHandler
	Gallery     *GalleryHandler
	Media       *MediaHandler
	Secretaria  *SecretariaHandler
	CityService *CityServiceHandler
	Setting     *SettingHandler
	Form        *FormHandler
	Audit       *AuditHandler
	Hub         *SubmissionHub
}

func New(svcs *services.Services, repos *repositories.Repos) *Handlers {
	hub := NewSubmissionHub()
	svcs.Form.SetNotifier(hub)

	return &Handlers{
		Auth:        NewAuthHandler(svcs.User),
		User:        NewUserHandler(svcs.User, repos.Audit),
		Permission:  NewPermissionHandler(svcs.Permission, repos.Audit),
		Post:        NewPostHandler(svcs.Post, repos.Audit),
		Taxonomy:    NewTaxonomyHandler(svcs.Taxonomy, repos.Audit),
		Page:        NewPageHandler(svcs.Page, repos.Audit),
		Event:       NewEventHandler(svcs.Event, repos.Audit),
		Gallery:     NewGalleryHandler(svcs.Gallery, repos.Audit),
		Media:       NewMediaHandler(svcs.Media, repos.Audit),
		Secretaria:  NewSecretariaHandler(svcs.Secretaria, repos.Audit),
		CityService: NewCityServiceHandler(svcs.CityService, repos.Audit),
		Setting:     NewSettingHandler(svcs.Setting, repos.Audit),
		Form:        NewFormHandler(svcs.Form, repos.Audit),
		Audit:       NewAuditHandler(svcs.Audit),
		Hub:         hub,
	}
}
