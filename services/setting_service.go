package services

import (
	"errors"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrSettingNotFound = errors.New("setting not found")

type SettingService struct {
	repo repositories.SettingRepo
}

func NewSettingService(repos *repositories.Repos) *SettingService {
	return &SettingService{repo: repos.Setting}
}

func (s *SettingService) List() ([]models.Setting, error) {
	return s.repo.List()
}

func (s *SettingService) Get(key string) (models.Setting, error) {
	setting, err := s.repo.FindByKey(key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return setting, ErrSettingNotFound
	}
	return setting, err
}

func (s *SettingService) Upsert(input dto.UpsertSettingDTO) (*models.Setting, error) {
	setting := &models.Setting{
		Key:   input.Key,
		Value: datatypes.JSON(input.Value),
	}
	return setting, s.repo.Upsert(setting)
}

func (s *SettingService) Delete(key string) error {
	if _, err := s.Get(key); err != nil {
		return err
	}
	return s.repo.Delete(key)
}
