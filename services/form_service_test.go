package services

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prefeitura-digital/cms-go/dto"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/pkg/formengine"
	"github.com/prefeitura-digital/cms-go/repositories"
	"github.com/prefeitura-digital/cms-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupFormServiceMocks(t *testing.T) (*FormService, *mock_repositories.MockFormRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock_repositories.NewMockFormRepo(ctrl)
	repos := &repositories.Repos{
		Form: mockForm,
	}
	svc := NewFormService(repos)
	return svc, mockForm
}

func contactForm(t *testing.T, published bool, allowMultiple bool) models.Form {
	t.Helper()
	fields, err := json.Marshal([]formengine.FieldDefinition{
		{ID: "nome", Type: formengine.FieldTypeText, Label: "Nome", Required: true, Order: 1},
		{ID: "email", Type: formengine.FieldTypeEmail, Label: "E-mail", Required: true, Order: 2},
	})
	require.NoError(t, err)
	settings, err := json.Marshal(formengine.Settings{AllowMultipleSubmissions: allowMultiple})
	require.NoError(t, err)

	form := models.Form{
		Slug:      "fale-conosco",
		Title:     "Fale Conosco",
		Fields:    fields,
		Settings:  settings,
		Published: published,
	}
	form.ID = 7
	return form
}

type captureNotifier struct {
	forms []models.Form
	subs  []models.FormSubmission
}

func (n *captureNotifier) NotifySubmission(form models.Form, sub models.FormSubmission) {
	n.forms = append(n.forms, form)
	n.subs = append(n.subs, sub)
}

// --------------------- CreateForm ---------------------
func TestCreateForm_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	input := dto.CreateFormDTO{
		Title: "Ouvidoria Municipal",
		Fields: []formengine.FieldDefinition{
			{ID: "nome", Type: formengine.FieldTypeText, Label: "Nome", Required: true, Order: 1},
		},
	}

	mockForm.EXPECT().FindBySlug("ouvidoria-municipal").Return(models.Form{}, gorm.ErrRecordNotFound)
	mockForm.EXPECT().Save(gomock.Any()).Return(nil)

	form, err := svc.CreateForm(input)
	assert.NoError(t, err)
	assert.Equal(t, "ouvidoria-municipal", form.Slug)
}

func TestCreateForm_SlugTaken(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(models.Form{}, nil)

	_, err := svc.CreateForm(dto.CreateFormDTO{Slug: "fale-conosco", Title: "Fale Conosco"})
	assert.Equal(t, ErrFormSlugTaken, err)
}

func TestCreateForm_RejectsBrokenSchema(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug(gomock.Any()).Return(models.Form{}, gorm.ErrRecordNotFound)

	// select without options is refused before anything is persisted
	input := dto.CreateFormDTO{
		Title: "Enquete",
		Fields: []formengine.FieldDefinition{
			{ID: "tipo", Type: formengine.FieldTypeSelect, Label: "Tipo", Order: 1},
		},
	}
	_, err := svc.CreateForm(input)
	var schemaErr *formengine.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

// --------------------- GetPublishedBySlug ---------------------
func TestGetPublishedBySlug_HidesUnpublished(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(contactForm(t, false, true), nil)

	_, err := svc.GetPublishedBySlug("fale-conosco")
	assert.Equal(t, ErrFormNotFound, err)
}

// --------------------- Submit ---------------------
func TestSubmit_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)
	notifier := &captureNotifier{}
	svc.SetNotifier(notifier)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(contactForm(t, true, true), nil)
	mockForm.EXPECT().CreateSubmission(gomock.Any()).DoAndReturn(func(sub *models.FormSubmission) error {
		sub.ID = 42
		return nil
	})

	sub, fieldErrs, err := svc.Submit("fale-conosco",
		map[string]any{"nome": "Ana", "email": "ana@example.com"}, "10.0.0.1", "test-agent")
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	require.NotNil(t, sub)
	assert.Equal(t, uint(7), sub.FormID)
	assert.Equal(t, "Ana", sub.SubmitterName)
	assert.Equal(t, "ana@example.com", sub.SubmitterEmail)
	assert.Equal(t, string(models.SubmissionStatusPending), sub.Status)
	assert.Equal(t, "10.0.0.1", sub.IPAddress)

	require.Len(t, notifier.subs, 1)
	assert.Equal(t, uint(42), notifier.subs[0].ID)
}

func TestSubmit_FieldErrorsDoNotPersist(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(contactForm(t, true, true), nil)

	sub, fieldErrs, err := svc.Submit("fale-conosco", map[string]any{"email": "ruim"}, "10.0.0.1", "")
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, fieldErrs, "nome")
	assert.Contains(t, fieldErrs, "email")
}

func TestSubmit_DuplicateFromSameIP(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(contactForm(t, true, false), nil)
	mockForm.EXPECT().HasSubmissionFromIP(uint(7), "10.0.0.1").Return(true, nil)

	_, _, err := svc.Submit("fale-conosco",
		map[string]any{"nome": "Ana", "email": "ana@example.com"}, "10.0.0.1", "")
	assert.Equal(t, ErrDuplicateSubmission, err)
}

func TestSubmit_FirstFromIPAllowed(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(contactForm(t, true, false), nil)
	mockForm.EXPECT().HasSubmissionFromIP(uint(7), "10.0.0.1").Return(false, nil)
	mockForm.EXPECT().CreateSubmission(gomock.Any()).Return(nil)

	sub, fieldErrs, err := svc.Submit("fale-conosco",
		map[string]any{"nome": "Ana", "email": "ana@example.com"}, "10.0.0.1", "")
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	assert.NotNil(t, sub)
}

func TestSubmit_UnpublishedForm(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindBySlug("fale-conosco").Return(contactForm(t, false, true), nil)

	_, _, err := svc.Submit("fale-conosco", map[string]any{}, "10.0.0.1", "")
	assert.Equal(t, ErrFormNotFound, err)
}

func TestSubmit_BrokenStoredSchema(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	form := contactForm(t, true, true)
	form.Fields = []byte(`{"not":"an array"}`)
	mockForm.EXPECT().FindBySlug("fale-conosco").Return(form, nil)

	_, _, err := svc.Submit("fale-conosco", map[string]any{}, "10.0.0.1", "")
	assert.Error(t, err)
}

// --------------------- ModerateSubmission ---------------------
func TestModerateSubmission_Success(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	existing := models.FormSubmission{FormID: 7, Status: string(models.SubmissionStatusPending)}
	existing.ID = 42
	mockForm.EXPECT().FindSubmissionByID(uint(42)).Return(existing, nil)
	mockForm.EXPECT().SaveSubmission(gomock.Any()).Return(nil)

	sub, err := svc.ModerateSubmission(42, string(models.SubmissionStatusApproved))
	assert.NoError(t, err)
	assert.Equal(t, string(models.SubmissionStatusApproved), sub.Status)
}

func TestModerateSubmission_NotFound(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindSubmissionByID(uint(99)).Return(models.FormSubmission{}, gorm.ErrRecordNotFound)

	_, err := svc.ModerateSubmission(99, string(models.SubmissionStatusRejected))
	assert.Equal(t, ErrSubmissionNotFound, err)
}

// --------------------- UpdateForm ---------------------
func TestUpdateForm_TogglePublished(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID(uint(7)).Return(contactForm(t, false, true), nil)
	mockForm.EXPECT().Save(gomock.Any()).Return(nil)

	published := true
	form, err := svc.UpdateForm(7, dto.UpdateFormDTO{Published: &published})
	assert.NoError(t, err)
	assert.True(t, form.Published)
}

func TestUpdateForm_RepoError(t *testing.T) {
	svc, mockForm := setupFormServiceMocks(t)

	mockForm.EXPECT().FindByID(uint(7)).Return(models.Form{}, errors.New("db down"))

	_, err := svc.UpdateForm(7, dto.UpdateFormDTO{})
	assert.Error(t, err)
}

// --------------------- Definition ---------------------
func TestDefinition_DecodesStoredSchema(t *testing.T) {
	form := contactForm(t, true, false)

	def, err := Definition(form)
	require.NoError(t, err)
	assert.Equal(t, "fale-conosco", def.Slug)
	require.Len(t, def.Fields, 2)
	assert.Equal(t, "nome", def.Fields[0].ID)
	assert.False(t, def.Settings.AllowMultipleSubmissions)
}
