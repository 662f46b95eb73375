package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type MediaRepo interface {
	List(q dto.ListQuery) ([]models.MediaFile, int64, error)
	FindByID(id uint) (models.MediaFile, error)
	Create(file *models.MediaFile) error
	Delete(id uint) error
}

type DBMediaRepo struct{}

func (r *DBMediaRepo) List(q dto.ListQuery) ([]models.MediaFile, int64, error) {
	var files []models.MediaFile
	var total int64

	tx := db.DB.Model(&models.MediaFile{})
	if q.Search != "" {
		tx = tx.Where("file_name ILIKE ?", "%"+q.Search+"%")
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("created_at desc").Offset(q.Offset()).Limit(q.PageSize).Find(&files).Error
	return files, total, err
}

func (r *DBMediaRepo) FindByID(id uint) (models.MediaFile, error) {
	var file models.MediaFile
	err := db.DB.First(&file, id).Error
	return file, err
}

func (r *DBMediaRepo) Create(file *models.MediaFile) error {
	return db.DB.Create(file).Error
}

func (r *DBMediaRepo) Delete(id uint) error {
	return db.DB.Delete(&models.MediaFile{}, id).Error
}
