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
	ErrGalleryNotFound  = errors.New("gallery not found")
	ErrGallerySlugTaken = errors.New("gallery slug already taken")
)

type GalleryService struct {
	repo repositories.GalleryRepo
}

func NewGalleryService(repos *repositories.Repos) *GalleryService {
	return &GalleryService{repo: repos.Gallery}
}

func (s *GalleryService) ListGalleries(q dto.ListQuery) ([]models.Gallery, int64, error) {
	return s.repo.List(q)
}

func (s *GalleryService) GetGallery(id uint) (models.Gallery, error) {
	gallery, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gallery, ErrGalleryNotFound
	}
	return gallery, err
}

func (s *GalleryService) GetBySlug(slug string) (models.Gallery, error) {
	gallery, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gallery, ErrGalleryNotFound
	}
	return gallery, err
}

func imagesFromDTO(input []dto.GalleryImageDTO) []models.GalleryImage {
	images := make([]models.GalleryImage, len(input))
	for i, img := range input {
		images[i] = models.GalleryImage{
			URL:      img.URL,
			Caption:  img.Caption,
			Position: img.Position,
		}
	}
	return images
}

func (s *GalleryService) CreateGallery(input dto.CreateGalleryDTO) (*models.Gallery, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if _, err := s.repo.FindBySlug(slug); err == nil {
		return nil, ErrGallerySlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	gallery := &models.Gallery{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Images:      imagesFromDTO(input.Images),
	}
	return gallery, s.repo.Create(gallery)
}

// UpdateGallery updates the gallery's attributes and, when an image list is
// present, replaces the whole image set (delete and recreate).
func (s *GalleryService) UpdateGallery(id uint, input dto.UpdateGalleryDTO) (*models.Gallery, error) {
	gallery, err := s.GetGallery(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != gallery.Slug {
		if _, err := s.repo.FindBySlug(*input.Slug); err == nil {
			return nil, ErrGallerySlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		gallery.Slug = *input.Slug
	}
	if input.Title != nil {
		gallery.Title = *input.Title
	}
	if input.Description != nil {
		gallery.Description = *input.Description
	}

	// a present image list replaces the whole set; an absent one leaves the
	// existing images untouched
	if input.Images != nil {
		return &gallery, s.repo.UpdateWithImages(&gallery, imagesFromDTO(input.Images))
	}
	return &gallery, s.repo.Save(&gallery)
}

func (s *GalleryService) DeleteGallery(id uint) error {
	if _, err := s.GetGallery(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
