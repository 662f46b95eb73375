package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"gorm.io/gorm"
)

type GalleryRepo interface {
	List(q dto.ListQuery) ([]models.Gallery, int64, error)
	FindByID(id uint) (models.Gallery, error)
	FindBySlug(slug string) (models.Gallery, error)
	Create(gallery *models.Gallery) error
	Save(gallery *models.Gallery) error
	UpdateWithImages(gallery *models.Gallery, images []models.GalleryImage) error
	Delete(id uint) error
}

type DBGalleryRepo struct{}

func (r *DBGalleryRepo) List(q dto.ListQuery) ([]models.Gallery, int64, error) {
	var galleries []models.Gallery
	var total int64

	tx := db.DB.Model(&models.Gallery{})
	if q.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Search+"%")
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	}).Order("created_at desc").Offset(q.Offset()).Limit(q.PageSize).Find(&galleries).Error
	return galleries, total, err
}

func (r *DBGalleryRepo) FindByID(id uint) (models.Gallery, error) {
	var gallery models.Gallery
	err := db.DB.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	}).First(&gallery, id).Error
	return gallery, err
}

func (r *DBGalleryRepo) FindBySlug(slug string) (models.Gallery, error) {
	var gallery models.Gallery
	err := db.DB.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	}).Where("slug = ?", slug).First(&gallery).Error
	return gallery, err
}

func (r *DBGalleryRepo) Create(gallery *models.Gallery) error {
	return db.DB.Create(gallery).Error
}

func (r *DBGalleryRepo) Save(gallery *models.Gallery) error {
	return db.DB.Omit("Images").Save(gallery).Error
}

// UpdateWithImages saves the gallery and reconciles its image set by
// deleting every existing row and recreating the new ones, all in one
// transaction. Image identity is not preserved across updates.
func (r *DBGalleryRepo) UpdateWithImages(gallery *models.Gallery, images []models.GalleryImage) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images").Save(gallery).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("gallery_id = ?", gallery.ID).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ID = 0
			images[i].GalleryID = gallery.ID
			if err := tx.Create(&images[i]).Error; err != nil {
				return err
			}
		}
		gallery.Images = images
		return nil
	})
}

func (r *DBGalleryRepo) Delete(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("gallery_id = ?", id).Delete(&models.GalleryImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Gallery{}, id).Error
	})
}
