package formengine

import (
	"strings"
)

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Submission is an assembled, validated set of answers ready to persist.
// Data only holds values of fields that were visible at submit time; stale
// values of hidden fields are dropped.
type Submission struct {
	Data           map[string]any   `json:"data"`
	SubmitterName  string           `json:"submitterName,omitempty"`
	SubmitterEmail string           `json:"submitterEmail,omitempty"`
	Status         SubmissionStatus `json:"status"`
}

// FieldErrors maps field id to a validation message. Absence of a key means
// the field is valid or not applicable.
type FieldErrors map[string]string

// FieldState is what the rendering surface needs per field: whether to show
// it and which error, if any, to annotate it with.
type FieldState struct {
	FieldID string `json:"fieldId"`
	Visible bool   `json:"visible"`
	Error   string `json:"error,omitempty"`
}

// Evaluate computes the per-field render state for the current values,
// in display order. Called by the UI adapter on every value change.
func Evaluate(form FormDefinition, values map[string]any) []FieldState {
	fields := form.SortedFields()
	states := make([]FieldState, 0, len(fields))
	for _, field := range fields {
		state := FieldState{FieldID: field.ID, Visible: IsVisible(field, values)}
		if state.Visible && !field.Type.IsStructural() {
			state.Error = ValidateField(field, values[field.ID])
		}
		states = append(states, state)
	}
	return states
}

// Assemble runs visibility and validation over the whole form and produces
// either a submission or the complete per-field error map, so the respondent
// can fix every problem in one pass. Malformed values never cause an error
// return; the non-nil error case is reserved for a broken definition
// (*SchemaError), which is a configuration problem.
func Assemble(form FormDefinition, values map[string]any) (*Submission, FieldErrors, error) {
	if err := ValidateSchema(form); err != nil {
		return nil, nil, err
	}

	fields := form.SortedFields()
	errs := FieldErrors{}
	data := make(map[string]any)

	for _, field := range fields {
		if field.Type.IsStructural() {
			continue
		}
		if !IsVisible(field, values) {
			continue
		}
		if msg := ValidateField(field, values[field.ID]); msg != "" {
			errs[field.ID] = msg
			continue
		}
		if value, ok := values[field.ID]; ok {
			data[field.ID] = value
		}
	}

	if len(errs) > 0 {
		return nil, errs, nil
	}

	sub := &Submission{Data: data, Status: StatusPending}
	sub.SubmitterName, sub.SubmitterEmail = extractSubmitter(fields, data)
	return sub, nil, nil
}

// extractSubmitter pulls a best-effort name and email out of the answers:
// the first email-typed field with a value, and the first field whose id or
// label mentions "nome"/"name".
func extractSubmitter(fields []FieldDefinition, data map[string]any) (name, email string) {
	for _, field := range fields {
		value, ok := data[field.ID]
		if !ok || isEmptyValue(value) {
			continue
		}
		if email == "" && field.Type == FieldTypeEmail {
			email = valueToString(value)
		}
		if name == "" && looksLikeName(field) {
			name = valueToString(value)
		}
	}
	return name, email
}

func looksLikeName(field FieldDefinition) bool {
	id := strings.ToLower(field.ID)
	label := strings.ToLower(field.Label)
	return strings.Contains(id, "nome") || strings.Contains(id, "name") ||
		strings.Contains(label, "nome") || strings.Contains(label, "name")
}

// DisplayValue formats a stored raw value for confirmation screens and
// exports: option values are resolved back to their labels, arrays joined
// with ", ", booleans rendered as Sim/Não.
func DisplayValue(field FieldDefinition, value any) string {
	if value == nil {
		return ""
	}

	if items, ok := stringSlice(value); ok {
		labels := make([]string, len(items))
		for i, item := range items {
			labels[i] = optionLabel(field, item)
		}
		return strings.Join(labels, ", ")
	}

	if b, ok := value.(bool); ok && len(field.Options) == 0 {
		if b {
			return "Sim"
		}
		return "Não"
	}

	return optionLabel(field, valueToString(value))
}

func optionLabel(field FieldDefinition, value string) string {
	for _, opt := range field.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
