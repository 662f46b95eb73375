package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/models"
	"gorm.io/gorm/clause"
)

type PermissionRepo interface {
	ListByUser(userID uint) ([]models.Permission, error)
	Find(userID uint, module string) (models.Permission, error)
	Upsert(perm *models.Permission) error
	Delete(userID uint, module string) error
}

type DBPermissionRepo struct{}

func (r *DBPermissionRepo) ListByUser(userID uint) ([]models.Permission, error) {
	var perms []models.Permission
	err := db.DB.Where("user_id = ?", userID).Order("module asc").Find(&perms).Error
	return perms, err
}

func (r *DBPermissionRepo) Find(userID uint, module string) (models.Permission, error) {
	var perm models.Permission
	err := db.DB.Where("user_id = ? AND module = ?", userID, module).First(&perm).Error
	return perm, err
}

// Upsert inserts the assignment or, if the (user, module) pair already
// exists, overwrites its capability flags.
func (r *DBPermissionRepo) Upsert(perm *models.Permission) error {
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "module"}},
		DoUpdates: clause.AssignmentColumns([]string{"can_create", "can_read", "can_update", "can_delete", "updated_at"}),
	}).Create(perm).Error
}

func (r *DBPermissionRepo) Delete(userID uint, module string) error {
	return db.DB.Unscoped().Where("user_id = ? AND module = ?", userID, module).Delete(&models.Permission{}).Error
}
