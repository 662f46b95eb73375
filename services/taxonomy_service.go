package services

import (
	"errors"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/utils"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrTagNotFound      = errors.New("tag not found")
)

type TaxonomyService struct {
	repo repositories.TaxonomyRepo
}

func NewTaxonomyService(repos *repositories.Repos) *TaxonomyService {
	return &TaxonomyService{repo: repos.Taxonomy}
}

func (s *TaxonomyService) ListCategories() ([]models.Category, error) {
	return s.repo.ListCategories()
}

func (s *TaxonomyService) CreateCategory(input dto.CategoryDTO) (*models.Category, error) {
	cat := &models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
	}
	if cat.Slug == "" {
		cat.Slug = utils.Slugify(input.Name)
	}
	return cat, s.repo.SaveCategory(cat)
}

func (s *TaxonomyService) UpdateCategory(id uint, input dto.CategoryDTO) (*models.Category, error) {
	cat, err := s.repo.FindCategoryByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}

	cat.Name = input.Name
	cat.Description = input.Description
	if input.Slug != "" {
		cat.Slug = input.Slug
	}
	return &cat, s.repo.SaveCategory(&cat)
}

func (s *TaxonomyService) DeleteCategory(id uint) error {
	if _, err := s.repo.FindCategoryByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	} else if err != nil {
		return err
	}
	return s.repo.DeleteCategory(id)
}

func (s *TaxonomyService) ListTags() ([]models.Tag, error) {
	return s.repo.ListTags()
}

func (s *TaxonomyService) CreateTag(input dto.TagDTO) (*models.Tag, error) {
	tag := &models.Tag{Name: input.Name, Slug: input.Slug}
	if tag.Slug == "" {
		tag.Slug = utils.Slugify(input.Name)
	}
	return tag, s.repo.SaveTag(tag)
}

func (s *TaxonomyService) UpdateTag(id uint, input dto.TagDTO) (*models.Tag, error) {
	tag, err := s.repo.FindTagByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTagNotFound
	}
	if err != nil {
		return nil, err
	}

	tag.Name = input.Name
	if input.Slug != "" {
		tag.Slug = input.Slug
	}
	return &tag, s.repo.SaveTag(&tag)
}

func (s *TaxonomyService) DeleteTag(id uint) error {
	if _, err := s.repo.FindTagByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTagNotFound
	} else if err != nil {
		return err
	}
	return s.repo.DeleteTag(id)
}
