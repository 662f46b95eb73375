package repositories

import (
	"time"

	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
)

type EventRepo interface {
	List(q dto.EventListQuery) ([]models.Event, int64, error)
	FindByID(id uint) (models.Event, error)
	FindBySlug(slug string) (models.Event, error)
	Save(event *models.Event) error
	Delete(id uint) error
}

type DBEventRepo struct{}

func (r *DBEventRepo) List(q dto.EventListQuery) ([]models.Event, int64, error) {
	var events []models.Event
	var total int64

	tx := db.DB.Model(&models.Event{})
	if q.Search != "" {
		tx = tx.Where("title ILIKE ?", "%"+q.Search+"%")
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.From != "" {
		tx = tx.Where("starts_at >= ?", q.From)
	}
	if q.To != "" {
		tx = tx.Where("starts_at <= ?", q.To)
	}
	if q.Upcoming {
		tx = tx.Where("ends_at >= ?", time.Now())
	}
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := tx.Order("starts_at asc").Offset(q.Offset()).Limit(q.PageSize).Find(&events).Error
	return events, total, err
}

func (r *DBEventRepo) FindByID(id uint) (models.Event, error) {
	var event models.Event
	err := db.DB.First(&event, id).Error
	return event, err
}

func (r *DBEventRepo) FindBySlug(slug string) (models.Event, error) {
	var event models.Event
	err := db.DB.Where("slug = ?", slug).First(&event).Error
	return event, err
}

func (r *DBEventRepo) Save(event *models.Event) error {
	return db.DB.Save(event).Error
}

func (r *DBEventRepo) Delete(id uint) error {
	return db.DB.Delete(&models.Event{}, id).Error
}
