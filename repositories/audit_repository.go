package repositories

import (
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type AuditRepo interface {
	Create(entry *models.AuditLog) error
	List(q dto.AuditListQuery) ([]models.AuditLog, int64, error)
}

type DBAuditRepo struct{}

func (r *DBAuditRepo) Create(entry *models.AuditLog) error {
	return db.DB.Create(entry).Error
}

func (r *DBAuditRepo) List(q dto.AuditListQuery) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	tx := db.DB.Model(&models.AuditLog{})
	if q.UserID != 0 {
		tx = tx.Where("user_id = ?", q.UserID)
	}
	if q.ResourceType != "" {
		tx = tx.Where("resource_type = ?", q.ResourceType)
	}
	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("created_at desc").Offset(q.Offset()).Limit(q.PageSize).Find(&logs).Error
	return logs, total, err
}
