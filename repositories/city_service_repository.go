package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type CityServiceRepo interface {
	List(q dto.CityServiceListQuery) ([]models.CityService, int64, error)
	FindByID(id uint) (models.CityService, error)
	FindBySlug(slug string) (models.CityService, error)
	Save(svc *models.CityService) error
	Delete(id uint) error
}

type DBCityServiceRepo struct{}

func (r *DBCityServiceRepo) List(q dto.CityServiceListQuery) ([]models.CityService, int64, error) {
	var services []models.CityService
	var total int64

	tx := db.DB.Model(&models.CityService{})
	if q.Search != "" {
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
	}
	if q.SecretariaID != 0 {
		tx = tx.Where("secretaria_id = ?", q.SecretariaID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Preload("Secretaria").Order("name asc").Offset(q.Offset()).Limit(q.PageSize).Find(&services).Error
	return services, total, err
}

func (r *DBCityServiceRepo) FindByID(id uint) (models.CityService, error) {
	var svc models.CityService
	err := db.DB.Preload("Secretaria").First(&svc, id).Error
	return svc, err
}

func (r *DBCityServiceRepo) FindBySlug(slug string) (models.CityService, error) {
	var svc models.CityService
	err := db.DB.Preload("Secretaria").Where("slug = ?", slug).First(&svc).Error
	return svc, err
}

func (r *DBCityServiceRepo) Save(svc *models.CityService) error {
	return db.DB.Save(svc).Error
}

func (r *DBCityServiceRepo) Delete(id uint) error {
	return db.DB.Delete(&models.CityService{}, id).Error
}
