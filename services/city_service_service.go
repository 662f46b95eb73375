package services

import (
	"errors"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/utils"
	"gorm.io/gorm"
)

var ErrCityServiceNotFound = errors.New("city service not found")

type CityServiceService struct {
	repo repositories.CityServiceRepo
}

func NewCityServiceService(repos *repositories.Repos) *CityServiceService {
	return &CityServiceService{repo: repos.CityService}
}

func (s *CityServiceService) List(q dto.CityServiceListQuery) ([]models.CityService, int64, error) {
	return s.repo.List(q)
}

func (s *CityServiceService) ListPublished(q dto.CityServiceListQuery) ([]models.CityService, int64, error) {
	q.Status = string(models.ContentStatusPublished)
	return s.repo.List(q)
}

func (s *CityServiceService) Get(id uint) (models.CityService, error) {
	svc, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svc, ErrCityServiceNotFound
	}
	return svc, err
}

func (s *CityServiceService) GetBySlug(slug string) (models.CityService, error) {
	svc, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return svc, ErrCityServiceNotFound
	}
	return svc, err
}

func (s *CityServiceService) Create(input dto.CityServiceDTO) (*models.CityService, error) {
	svc := &models.CityService{
		Name:         input.Name,
		Slug:         input.Slug,
		Description:  input.Description,
		Requirements: input.Requirements,
		OnlineURL:    input.OnlineURL,
		SecretariaID: input.SecretariaID,
		Status:       string(models.ContentStatusPublished),
	}
	if svc.Slug == "" {
		svc.Slug = utils.Slugify(input.Name)
	}
	if input.Status != "" {
		svc.Status = input.Status
	}
	return svc, s.repo.Save(svc)
}

func (s *CityServiceService) Update(id uint, input dto.CityServiceDTO) (*models.CityService, error) {
	svc, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	svc.Name = input.Name
	svc.Description = input.Description
	svc.Requirements = input.Requirements
	svc.OnlineURL = input.OnlineURL
	svc.SecretariaID = input.SecretariaID
	if input.Slug != "" {
		svc.Slug = input.Slug
	}
	if input.Status != "" {
		svc.Status = input.Status
	}
	return &svc, s.repo.Save(&svc)
}

func (s *CityServiceService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
