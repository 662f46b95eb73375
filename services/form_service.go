package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/pkg/formengine"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/utils"
	"gorm.io/gorm"
)

var (
	ErrFormNotFound        = errors.New("form not found")
	ErrFormSlugTaken       = errors.New("form slug already taken")
	ErrDuplicateSubmission = errors.New("form already submitted from this address")
	ErrSubmissionNotFound  = errors.New("submission not found")
)

// SubmissionNotifier receives accepted submissions for live delivery to the
// admin panel. Nil notifiers are allowed.
type SubmissionNotifier interface {
	NotifySubmission(form models.Form, sub models.FormSubmission)
}

type FormService struct {
	repo     repositories.FormRepo
	notifier SubmissionNotifier
}

func NewFormService(repos *repositories.Repos) *FormService {
	return &FormService{repo: repos.Form}
}

func (s *FormService) SetNotifier(n SubmissionNotifier) {
	s.notifier = n
}

// Definition decodes a stored form row into the engine's schema model.
func Definition(form models.Form) (formengine.FormDefinition, error) {
	def := formengine.FormDefinition{
		Slug:            form.Slug,
		Title:           form.Title,
		Description:     form.Description,
		SubmissionCount: form.SubmissionCount,
	}
	if len(form.Fields) > 0 {
		if err := json.Unmarshal(form.Fields, &def.Fields); err != nil {
			return def, fmt.Errorf("decode form fields: %w", err)
		}
	}
	if len(form.Settings) > 0 {
		if err := json.Unmarshal(form.Settings, &def.Settings); err != nil {
			return def, fmt.Errorf("decode form settings: %w", err)
		}
	}
	if len(form.Design) > 0 {
		if err := json.Unmarshal(form.Design, &def.Design); err != nil {
			return def, fmt.Errorf("decode form design: %w", err)
		}
	}
	return def, nil
}

func (s *FormService) ListForms(q dto.ListQuery) ([]models.Form, int64, error) {
	return s.repo.List(q)
}

func (s *FormService) GetForm(id uint) (models.Form, error) {
	form, err := s.repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return form, ErrFormNotFound
	}
	return form, err
}

// GetPublishedBySlug serves the public rendering surface. Unpublished and
// missing forms are both reported as not found.
func (s *FormService) GetPublishedBySlug(slug string) (models.Form, error) {
	form, err := s.repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return form, ErrFormNotFound
	}
	if err != nil {
		return form, err
	}
	if !form.Published {
		return models.Form{}, ErrFormNotFound
	}
	return form, nil
}

func (s *FormService) CreateForm(input dto.CreateFormDTO) (*models.Form, error) {
	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}
	if _, err := s.repo.FindBySlug(slug); err == nil {
		return nil, ErrFormSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	def := formengine.FormDefinition{Fields: input.Fields}
	if err := formengine.ValidateSchema(def); err != nil {
		return nil, err
	}

	fields, err := json.Marshal(input.Fields)
	if err != nil {
		return nil, err
	}
	settings, err := json.Marshal(input.Settings)
	if err != nil {
		return nil, err
	}
	design, err := json.Marshal(input.Design)
	if err != nil {
		return nil, err
	}

	form := &models.Form{
		Slug:        slug,
		Title:       input.Title,
		Description: input.Description,
		Fields:      fields,
		Settings:    settings,
		Design:      design,
		Published:   input.Published,
	}
	return form, s.repo.Save(form)
}

func (s *FormService) UpdateForm(id uint, input dto.UpdateFormDTO) (*models.Form, error) {
	form, err := s.GetForm(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil && *input.Slug != form.Slug {
		if _, err := s.repo.FindBySlug(*input.Slug); err == nil {
			return nil, ErrFormSlugTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		form.Slug = *input.Slug
	}
	if input.Title != nil {
		form.Title = *input.Title
	}
	if input.Description != nil {
		form.Description = *input.Description
	}
	if input.Fields != nil {
		if err := formengine.ValidateSchema(formengine.FormDefinition{Fields: input.Fields}); err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(input.Fields)
		if err != nil {
			return nil, err
		}
		form.Fields = encoded
	}
	if input.Settings != nil {
		encoded, err := json.Marshal(input.Settings)
		if err != nil {
			return nil, err
		}
		form.Settings = encoded
	}
	if input.Design != nil {
		encoded, err := json.Marshal(input.Design)
		if err != nil {
			return nil, err
		}
		form.Design = encoded
	}
	if input.Published != nil {
		form.Published = *input.Published
	}

	return &form, s.repo.Save(&form)
}

func (s *FormService) DeleteForm(id uint) error {
	if _, err := s.GetForm(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Submit runs the form engine over the payload and persists the result.
// Field errors come back as a map for the caller to surface inline; the
// error return carries not-found, duplicate and schema conditions.
func (s *FormService) Submit(slug string, values map[string]any, ip, userAgent string) (*models.FormSubmission, formengine.FieldErrors, error) {
	form, err := s.GetPublishedBySlug(slug)
	if err != nil {
		return nil, nil, err
	}

	def, err := Definition(form)
	if err != nil {
		return nil, nil, err
	}

	assembled, fieldErrs, err := formengine.Assemble(def, values)
	if err != nil {
		return nil, nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	if !def.Settings.AllowMultipleSubmissions && ip != "" {
		submitted, err := s.repo.HasSubmissionFromIP(form.ID, ip)
		if err != nil {
			return nil, nil, err
		}
		if submitted {
			return nil, nil, ErrDuplicateSubmission
		}
	}

	data, err := json.Marshal(assembled.Data)
	if err != nil {
		return nil, nil, err
	}

	sub := &models.FormSubmission{
		FormID:         form.ID,
		Data:           data,
		SubmitterName:  assembled.SubmitterName,
		SubmitterEmail: assembled.SubmitterEmail,
		Status:         string(models.SubmissionStatusPending),
		IPAddress:      ip,
		UserAgent:      userAgent,
	}
	if err := s.repo.CreateSubmission(sub); err != nil {
		return nil, nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifySubmission(form, *sub)
	}
	return sub, nil, nil
}

func (s *FormService) ListSubmissions(formID uint, q dto.SubmissionListQuery) ([]models.FormSubmission, int64, error) {
	if _, err := s.GetForm(formID); err != nil {
		return nil, 0, err
	}
	return s.repo.ListSubmissions(formID, q)
}

func (s *FormService) ModerateSubmission(id uint, status string) (*models.FormSubmission, error) {
	sub, err := s.repo.FindSubmissionByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, err
	}
	sub.Status = status
	return &sub, s.repo.SaveSubmission(&sub)
}

func (s *FormService) DeleteSubmission(id uint) error {
	if _, err := s.repo.FindSubmissionByID(id); errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSubmissionNotFound
	} else if err != nil {
		return err
	}
	return s.repo.DeleteSubmission(id)
}
