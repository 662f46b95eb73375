package services

import (
	"errors"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/utils"
	"gorm.io/gorm"
)

var ErrSecretariaNotFound = errors.New("secretaria not found")

type SecretariaService struct {
	repo repositories.SecretariaRepo
}

func NewSecretariaService(repos *repositories.Repos) *SecretariaService {
	return &SecretariaService{repo: repos.Secretaria}
}

func (s *SecretariaService) List(q dto.ListQuery) ([]models.Secretaria, int64, error) {
	return s.repo.List(q)
}

func (s *SecretariaService) Get(id uint) (models.Secretaria, error) {
	sec, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sec, ErrSecretariaNotFound
	}
	return sec, err
}

func (s *SecretariaService) GetBySlug(slug string) (models.Secretaria, error) {
	sec, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sec, ErrSecretariaNotFound
	}
	return sec, err
}

func (s *SecretariaService) Create(input dto.SecretariaDTO) (*models.Secretaria, error) {
	sec := &models.Secretaria{
		Name:        input.Name,
		Acronym:     input.Acronym,
		Slug:        input.Slug,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Responsible: input.Responsible,
	}
	if sec.Slug == "" {
		sec.Slug = utils.Slugify(input.Name)
	}
	return sec, s.repo.Save(sec)
}

func (s *SecretariaService) Update(id uint, input dto.SecretariaDTO) (*models.Secretaria, error) {
	sec, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	sec.Name = input.Name
	sec.Acronym = input.Acronym
	sec.Description = input.Description
	sec.Address = input.Address
	sec.Phone = input.Phone
	sec.Email = input.Email
	sec.Responsible = input.Responsible
	if input.Slug != "" {
		sec.Slug = input.Slug
	}
	return &sec, s.repo.Save(&sec)
}

func (s *SecretariaService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
