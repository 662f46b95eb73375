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
	ErrPageNotFound  = errors.New("page not found")
	ErrPageSlugTaken = errors.New("page slug already taken")
)

type PageService struct {
	repo repositories.PageRepo
}

func NewPageService(repos *repositories.Repos) *PageService {
	return &PageService{repo: repos.Page}
}

func (s *PageService) ListPages(q dto.ListQuery) ([]models.Page, int64, error) {
	return s.repo.List(q)
}

func (s *PageService) GetPage(id uint) (models.Page, error) {
	page, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return page, ErrPageNotFound
	}
	return page, err
}

func (s *PageService) GetPublishedBySlug(slug string) (models.Page, error) {
	page, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return page, ErrPageNotFound
	}
	if err != nil {
		return page, err
	}
	if page.Status != string(models.ContentStatusPublished) {
		return models.Page{}, ErrPageNotFound
	}
	return page, nil
}

func (s *PageService) CreatePage(input dto.CreatePageDTO) (*models.Page, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if _, err := s.repo.FindBySlug(slug); err == nil {
		return nil, ErrPageSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	page := &models.Page{
		Title:  input.Title,
		Slug:   slug,
		Body:   input.Body,
		Status: string(models.ContentStatusDraft),
	}
	if input.Status != "" {
		page.Status = input.Status
	}
	return page, s.repo.Save(page)
}

func (s *PageService) UpdatePage(id uint, input dto.UpdatePageDTO) (*models.Page, error) {
	page, err := s.GetPage(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != page.Slug {
		if _, err := s.repo.FindBySlug(*input.Slug); err == nil {
			return nil, ErrPageSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		page.Slug = *input.Slug
	}
	if input.Title != nil {
		page.Title = *input.Title
	}
	if input.Body != nil {
		page.Body = *input.Body
	}
	if input.Status != nil {
		page.Status = *input.Status
	}
	return &page, s.repo.Save(&page)
}

func (s *PageService) DeletePage(id uint) error {
	if _, err := s.GetPage(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
