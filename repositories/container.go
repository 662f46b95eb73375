package repositories

type Repos struct {
	User        UserRepo
	Permission  PermissionRepo
	Post        PostRepo
	Taxonomy    TaxonomyRepo
	Page        PageRepo
	Event       EventRepo
	Gallery     GalleryRepo
	Media       MediaRepo
	Secretaria  SecretariaRepo
	CityService CityServiceRepo
	Setting     SettingRepo
	Form        FormRepo
	Audit       AuditRepo
}

func New() *Repos {
	return &Repos{
		User:        &DBUserRepo{},
		Permission:  &DBPermissionRepo{},
		Post:        &DBPostRepo{},
		Taxonomy:    &DBTaxonomyRepo{},
		Page:        &DBPageRepo{},
		Event:       &DBEventRepo{},
		Gallery:     &DBGalleryRepo{},
		Media:       &DBMediaRepo{},
		Secretaria:  &DBSecretariaRepo{},
		CityService: &DBCityServiceRepo{},
		Setting:     &DBSettingRepo{},
		Form:        &DBFormRepo{},
		Audit:       &DBAuditRepo{},
	}
}
