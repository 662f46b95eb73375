package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"gorm.io/gorm"
)

type FormRepo interface {
	List(q dto.ListQuery) ([]models.Form, int64, error)
	FindByID(id uint) (models.Form, error)
	FindBySlug(slug string) (models.Form, error)
	Save(form *models.Form) error
	Delete(id uint) error

	ListSubmissions(formID uint, q dto.SubmissionListQuery) ([]models.FormSubmission, int64, error)
	FindSubmissionByID(id uint) (models.FormSubmission, error)
	CreateSubmission(sub *models.FormSubmission) error
	SaveSubmission(sub *models.FormSubmission) error
	DeleteSubmission(id uint) error
	HasSubmissionFromIP(formID uint, ip string) (bool, error)
}

type DBFormRepo struct{}

func (r *DBFormRepo) List(q dto.ListQuery) ([]models.Form, int64, error) {
	var forms []models.Form
	var total int64

	tx := db.DB.Model(&models.Form{})
	if q.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Search+"%")
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("created_at desc").Offset(q.Offset()).Limit(q.PageSize).Find(&forms).Error
	return forms, total, err
}

func (r *DBFormRepo) FindByID(id uint) (models.Form, error) {
	var form models.Form
	err := db.DB.First(&form, id).Error
	return form, err
}

func (r *DBFormRepo) FindBySlug(slug string) (models.Form, error) {
	var form models.Form
	err := db.DB.Where("slug = ?", slug).First(&form).Error
	return form, err
}

func (r *DBFormRepo) Save(form *models.Form) error {
	return db.DB.Save(form).Error
}

func (r *DBFormRepo) Delete(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", id).Delete(&models.FormSubmission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Form{}, id).Error
	})
}

func (r *DBFormRepo) ListSubmissions(formID uint, q dto.SubmissionListQuery) ([]models.FormSubmission, int64, error) {
	var subs []models.FormSubmission
	var total int64

	tx := db.DB.Model(&models.FormSubmission{}).Where("form_id = ?", formID)
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("created_at desc").Offset(q.Offset()).Limit(q.PageSize).Find(&subs).Error
	return subs, total, err
}

func (r *DBFormRepo) FindSubmissionByID(id uint) (models.FormSubmission, error) {
	var sub models.FormSubmission
	err := db.DB.First(&sub, id).Error
	return sub, err
}

// CreateSubmission persists the record and bumps the parent form's counter
// atomically.
func (r *DBFormRepo) CreateSubmission(sub *models.FormSubmission) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sub).Error; err != nil {
			return err
		}
		return tx.Model(&models.Form{}).Where("id = ?", sub.FormID).
			UpdateColumn("submission_count", gorm.Expr("submission_count + 1")).Error
	})
}

func (r *DBFormRepo) SaveSubmission(sub *models.FormSubmission) error {
	return db.DB.Save(sub).Error
}

func (r *DBFormRepo) DeleteSubmission(id uint) error {
	return db.DB.Delete(&models.FormSubmission{}, id).Error
}

func (r *DBFormRepo) HasSubmissionFromIP(formID uint, ip string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.FormSubmission{}).
		Where("form_id = ? AND ip_address = ?", formID, ip).Count(&count).Error
	return count > 0, err
}
