package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type SecretariaRepo interface {
	List(q dto.ListQuery) ([]models.Secretaria, int64, error)
	FindByID(id uint) (models.Secretaria, error)
	FindBySlug(slug string) (models.Secretaria, error)
	Save(sec *models.Secretaria) error
	Delete(id uint) error
}

type DBSecretariaRepo struct{}

func (r *DBSecretariaRepo) List(q dto.ListQuery) ([]models.Secretaria, int64, error) {
	var secs []models.Secretaria
	var total int64

	tx := db.DB.Model(&models.Secretaria{})
	if q.Search != "" {
		tx = tx.Where("name ILIKE ? OR acronym ILIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("name asc").Offset(q.Offset()).Limit(q.PageSize).Find(&secs).Error
	return secs, total, err
}

func (r *DBSecretariaRepo) FindByID(id uint) (models.Secretaria, error) {
	var sec models.Secretaria
	err := db.DB.First(&sec, id).Error
	return sec, err
}

func (r *DBSecretariaRepo) FindBySlug(slug string) (models.Secretaria, error) {
	var sec models.Secretaria
	err := db.DB.Where("slug = ?", slug).First(&sec).Error
	return sec, err
}

func (r *DBSecretariaRepo) Save(sec *models.Secretaria) error {
	return db.DB.Save(sec).Error
}

func (r *DBSecretariaRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Secretaria{}, id).Error
}
