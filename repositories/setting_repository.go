package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/models"
	"gorm.io/gorm/clause"
)

type SettingRepo interface {
	List() ([]models.Setting, error)
	FindByKey(key string) (models.Setting, error)
	Upsert(setting *models.Setting) error
	Delete(key string) error
}

type DBSettingRepo struct{}

func (r *DBSettingRepo) List() ([]models.Setting, error) {
	var settings []models.Setting
	err := db.DB.Order("key asc").Find(&settings).Error
	return settings, err
}

func (r *DBSettingRepo) FindByKey(key string) (models.Setting, error) {
	var setting models.Setting
	err := db.DB.Where("key = ?", key).First(&setting).Error
	return setting, err
}

func (r *DBSettingRepo) Upsert(setting *models.Setting) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

func (r *DBSettingRepo) Delete(key string) error {
	return db.DB.Unscoped().Where("key = ?", key).Delete(&models.Setting{}).Error
}
