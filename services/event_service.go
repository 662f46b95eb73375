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
	ErrEventNotFound  = errors.New("event not found")
	ErrEventSlugTaken = errors.New("event slug already taken")
	ErrEventDates     = errors.New("event must end after it starts")
)

type EventService struct {
	repo repositories.EventRepo
}

func NewEventService(repos *repositories.Repos) *EventService {
	return &EventService{repo: repos.Event}
}

func (s *EventService) ListEvents(q dto.EventListQuery) ([]models.Event, int64, error) {
	return s.repo.List(q)
}

func (s *EventService) ListPublished(q dto.EventListQuery) ([]models.Event, int64, error) {
	q.Status = string(models.ContentStatusPublished)
	return s.repo.List(q)
}

func (s *EventService) GetEvent(id uint) (models.Event, error) {
	event, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return event, ErrEventNotFound
	}
	return event, err
}

func (s *EventService) GetPublishedBySlug(slug string) (models.Event, error) {
	event, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return event, ErrEventNotFound
	}
	if err != nil {
		return event, err
	}
	if event.Status != string(models.ContentStatusPublished) {
		return models.Event{}, ErrEventNotFound
	}
	return event, nil
}

func (s *EventService) CreateEvent(input dto.CreateEventDTO) (*models.Event, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, ErrEventDates
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if _, err := s.repo.FindBySlug(slug); err == nil {
		return nil, ErrEventSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	event := &models.Event{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Location:    input.Location,
		CoverImage:  input.CoverImage,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		Status:      string(models.ContentStatusDraft),
	}
	if input.Status != "" {
		event.Status = input.Status
	}
	return event, s.repo.Save(event)
}

func (s *EventService) UpdateEvent(id uint, input dto.UpdateEventDTO) (*models.Event, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != event.Slug {
		if _, err := s.repo.FindBySlug(*input.Slug); err == nil {
			return nil, ErrEventSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		event.Slug = *input.Slug
	}
	if input.Title != nil {
		event.Title = *input.Title
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}
	if input.CoverImage != nil {
		event.CoverImage = *input.CoverImage
	}
	if input.StartsAt != nil {
		event.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		event.EndsAt = *input.EndsAt
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, ErrEventDates
	}
	if input.Status != nil {
		event.Status = *input.Status
	}
	return &event, s.repo.Save(&event)
}

func (s *EventService) DeleteEvent(id uint) error {
	if _, err := s.GetEvent(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
