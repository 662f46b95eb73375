package dto

import "github.com/prefeitura-digital/cms-go/pkg/formengine"

type CreateFormDTO struct {
	Slug        string                       `json:"slug" binding:"omitempty,max=200"`
	Title       string                       `json:"title" binding:"required,max=200"`
	Description string                       `json:"description" binding:"max=500"`
	Fields      []formengine.FieldDefinition `json:"fields" binding:"required"`
	Settings    formengine.Settings          `json:"settings"`
	Design      formengine.Design            `json:"design"`
	Published   bool                         `json:"published"`
}

type UpdateFormDTO struct {
	Slug        *string                      `json:"slug" binding:"omitempty,max=200"`
	Title       *string                      `json:"title" binding:"omitempty,max=200"`
	Description *string                      `json:"description" binding:"omitempty,max=500"`
	Fields      []formengine.FieldDefinition `json:"fields"`
	Settings    *formengine.Settings         `json:"settings"`
	Design      *formengine.Design           `json:"design"`
	Published   *bool                        `json:"published"`
}

// SubmitFormDTO is the public submission payload: raw values keyed by field
// id, exactly as the form engine expects them.
type SubmitFormDTO struct {
	Data map[string]any `json:"data" binding:"required"`
}

type ModerateSubmissionDTO struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
}

type SubmissionListQuery struct {
	ListQuery
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
}
