package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/models"
)

type TaxonomyRepo interface {
	ListCategories() ([]models.Category, error)
	FindCategoryByID(id uint) (models.Category, error)
	SaveCategory(cat *models.Category) error
	DeleteCategory(id uint) error

	ListTags() ([]models.Tag, error)
	FindTagByID(id uint) (models.Tag, error)
	FindTagsByIDs(ids []uint) ([]models.Tag, error)
	SaveTag(tag *models.Tag) error
	DeleteTag(id uint) error
}

type DBTaxonomyRepo struct{}

func (r *DBTaxonomyRepo) ListCategories() ([]models.Category, error) {
	var cats []models.Category
	err := db.DB.Order("name asc").Find(&cats).Error
	return cats, err
}

func (r *DBTaxonomyRepo) FindCategoryByID(id uint) (models.Category, error) {
	var cat models.Category
	err := db.DB.First(&cat, id).Error
	return cat, err
}

func (r *DBTaxonomyRepo) SaveCategory(cat *models.Category) error {
	return db.DB.Save(cat).Error
}

func (r *DBTaxonomyRepo) DeleteCategory(id uint) error {
	return db.DB.Delete(&models.Category{}, id).Error
}

func (r *DBTaxonomyRepo) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := db.DB.Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *DBTaxonomyRepo) FindTagByID(id uint) (models.Tag, error) {
	var tag models.Tag
	err := db.DB.First(&tag, id).Error
	return tag, err
}

func (r *DBTaxonomyRepo) FindTagsByIDs(ids []uint) ([]models.Tag, error) {
	var tags []models.Tag
	err := db.DB.Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

func (r *DBTaxonomyRepo) SaveTag(tag *models.Tag) error {
	return db.DB.Save(tag).Error
}

func (r *DBTaxonomyRepo) DeleteTag(id uint) error {
	return db.DB.Delete(&models.Tag{}, id).Error
}
