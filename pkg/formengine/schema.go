// Package formengine implements the dynamic form engine used by the public
// site: schema-driven form definitions, conditional field visibility,
// per-field validation and submission assembly. It is pure (no database, no
// HTTP) so it can be driven both by handlers and by tests.
package formengine

import (
	"fmt"
	"sort"
)

type FieldType string

const (
	FieldTypeText      FieldType = "text"
	FieldTypeEmail     FieldType = "email"
	FieldTypePhone     FieldType = "phone"
	FieldTypeCPF       FieldType = "cpf"
	FieldTypeNumber    FieldType = "number"
	FieldTypeTextarea  FieldType = "textarea"
	FieldTypeSelect    FieldType = "select"
	FieldTypeRadio     FieldType = "radio"
	FieldTypeCheckbox  FieldType = "checkbox"
	FieldTypeDate      FieldType = "date"
	FieldTypeFile      FieldType = "file"
	FieldTypeHTML      FieldType = "html"
	FieldTypeSeparator FieldType = "separator"
)

// IsStructural reports whether the type carries no value (pure markup).
// Structural fields are exempt from validation and never appear in error maps.
func (t FieldType) IsStructural() bool {
	return t == FieldTypeHTML || t == FieldTypeSeparator
}

type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorContains    Operator = "contains"
	OperatorNotContains Operator = "not_contains"
)

// Option is one selectable entry of a select/radio/checkbox field. Value is
// what gets stored in submissions, Label what gets rendered.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Bounds holds numeric validation limits for number fields.
type Bounds struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// ShowIf is the one-step visibility rule: the field is shown only when the
// referenced field's current value satisfies the operator. Value is either a
// single string or an array of acceptable strings.
type ShowIf struct {
	FieldID  string   `json:"fieldId"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

type ConditionalLogic struct {
	ShowIf *ShowIf `json:"showIf,omitempty"`
}

type FieldDefinition struct {
	ID               string            `json:"id"`
	Type             FieldType         `json:"type"`
	Label            string            `json:"label"`
	Placeholder      string            `json:"placeholder,omitempty"`
	Description      string            `json:"description,omitempty"`
	Required         bool              `json:"required"`
	Order            int               `json:"order"`
	Options          []Option          `json:"options,omitempty"`
	Validation       *Bounds           `json:"validation,omitempty"`
	ConditionalLogic *ConditionalLogic `json:"conditionalLogic,omitempty"`
	Content          string            `json:"content,omitempty"`
}

// HasOption reports whether v is one of the field's declared option values.
func (f FieldDefinition) HasOption(v string) bool {
	for _, opt := range f.Options {
		if opt.Value == v {
			return true
		}
	}
	return false
}

type Settings struct {
	SubmitButtonText         string `json:"submitButtonText"`
	SuccessMessage           string `json:"successMessage"`
	AllowMultipleSubmissions bool   `json:"allowMultipleSubmissions"`
}

type Design struct {
	Layout          string `json:"layout"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	PrimaryColor    string `json:"primaryColor,omitempty"`
}

type FormDefinition struct {
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Description     string            `json:"description,omitempty"`
	Fields          []FieldDefinition `json:"fields"`
	Settings        Settings          `json:"settings"`
	Design          Design            `json:"design"`
	SubmissionCount int               `json:"submissionCount,omitempty"`
}

// SortedFields returns the fields ordered by their explicit Order attribute.
// The sort is stable: ties keep the authored sequence. The receiver is not
// mutated.
func (f FormDefinition) SortedFields() []FieldDefinition {
	fields := make([]FieldDefinition, len(f.Fields))
	copy(fields, f.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})
	return fields
}

// SchemaError reports a malformed form definition (for example a select field
// without options). It is a configuration problem, never a respondent error,
// and must not be coerced into a passing validation.
type SchemaError struct {
	FieldID string
	Message string
}

func (e *SchemaError) Error() string {
	if e.FieldID != "" {
		return fmt.Sprintf("form schema invalid at field %q: %s", e.FieldID, e.Message)
	}
	return "form schema invalid: " + e.Message
}

// ValidateSchema checks structural invariants of a definition: unique field
// ids and declared options on choice fields.
func ValidateSchema(form FormDefinition) error {
	seen := make(map[string]bool, len(form.Fields))
	for _, field := range form.Fields {
		if field.ID == "" {
			return &SchemaError{Message: "field without id"}
		}
		if seen[field.ID] {
			return &SchemaError{FieldID: field.ID, Message: "duplicate field id"}
		}
		seen[field.ID] = true

		switch field.Type {
		case FieldTypeSelect, FieldTypeRadio:
			if len(field.Options) == 0 {
				return &SchemaError{FieldID: field.ID, Message: "choice field has no options"}
			}
		}
	}
	return nil
}
