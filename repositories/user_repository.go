package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type UserRepo interface {
	List(q dto.ListQuery) ([]models.User, int64, error)
	FindByID(id uint) (models.User, error)
	FindByUsername(username string) (models.User, error)
	Save(user *models.User) error
	Delete(id uint) error
}

type DBUserRepo struct{}

func (r *DBUserRepo) List(q dto.ListQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	tx := db.DB.Model(&models.User{})
	if q.Search != "" {
		tx = tx.Where("username ILIKE ? OR full_name ILIKE ?", "%"+q.Search+"%", "%"+q.Search+"%")
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("username asc").Offset(q.Offset()).Limit(q.PageSize).Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) FindByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) FindByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func (r *DBUserRepo) Save(user *models.User) error {
	return db.DB.Save(user).Error
}

func (r *DBUserRepo) Delete(id uint) error {
	return db.DB.Delete(&models.User{}, id).Error
}
