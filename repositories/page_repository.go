package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type PageRepo interface {
	List(q dto.ListQuery) ([]models.Page, int64, error)
	FindByID(id uint) (models.Page, error)
	FindBySlug(slug string) (models.Page, error)
	Save(page *models.Page) error
	Delete(id uint) error
}

type DBPageRepo struct{}

func (r *DBPageRepo) List(q dto.ListQuery) ([]models.Page, int64, error) {
	var pages []models.Page
	var total int64

	tx := db.DB.Model(&models.Page{})
	if q.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Search+"%")
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("title asc").Offset(q.Offset()).Limit(q.PageSize).Find(&pages).Error
	return pages, total, err
}

func (r *DBPageRepo) FindByID(id uint) (models.Page, error) {
	var page models.Page
	err := db.DB.First(&page, id).Error
	return page, err
}

func (r *DBPageRepo) FindBySlug(slug string) (models.Page, error) {
	var page models.Page
	err := db.DB.Where("slug = ?", slug).First(&page).Error
	return page, err
}

func (r *DBPageRepo) Save(page *models.Page) error {
	return db.DB.Save(page).Error
}

func (r *DBPageRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Page{}, id).Error
}
