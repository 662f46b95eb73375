package formengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestValidateField_RequiredEmptyFails(t *testing.T) {
	field := FieldDefinition{ID: "f", Type: FieldTypeText, Label: "Nome", Required: true}
	for _, empty := range []any{nil, "", []any{}, []string{}, false} {
		assert.NotEmpty(t, ValidateField(field, empty), "value=%#v", empty)
	}
	assert.Empty(t, ValidateField(field, "Ana"))
}

func TestValidateField_OptionalEmptyIsValid(t *testing.T) {
	field := FieldDefinition{ID: "f", Type: FieldTypeEmail, Label: "E-mail"}
	assert.Empty(t, ValidateField(field, nil))
	assert.Empty(t, ValidateField(field, ""))
}

func TestValidateField_Email(t *testing.T) {
	field := FieldDefinition{ID: "f", Type: FieldTypeEmail, Label: "E-mail"}
	assert.Empty(t, ValidateField(field, "a@b.com"))
	assert.Equal(t, "E-mail inválido", ValidateField(field, "not-an-email"))
	assert.Equal(t, "E-mail inválido", ValidateField(field, "a @b.com"))
}

func TestValidateField_Phone(t *testing.T) {
	field := FieldDefinition{ID: "f", Type: FieldTypePhone, Label: "Telefone"}
	assert.Empty(t, ValidateField(field, "(21) 98765-4321"))
	assert.Empty(t, ValidateField(field, "+55 21 98765-4321"))
	assert.Equal(t, "Telefone inválido", ValidateField(field, "abc"))
}

func TestValidateField_CPF(t *testing.T) {
	field := FieldDefinition{ID: "f", Type: FieldTypeCPF, Label: "CPF"}
	assert.Empty(t, ValidateField(field, "123.456.789-09"))
	assert.Empty(t, ValidateField(field, "12345678909"))
	assert.Equal(t, "CPF inválido", ValidateField(field, "123.456.789"))
	assert.Equal(t, "CPF inválido", ValidateField(field, "123456789012"))
}

func TestValidateField_NumberBounds(t *testing.T) {
	field := FieldDefinition{
		ID: "idade", Type: FieldTypeNumber, Label: "Idade",
		Validation: &Bounds{Min: floatPtr(18), Max: floatPtr(99)},
	}
	assert.Empty(t, ValidateField(field, float64(30)))
	assert.Equal(t, "O valor mínimo é 18", ValidateField(field, float64(15)))
	assert.Equal(t, "O valor máximo é 99", ValidateField(field, float64(120)))
	assert.Equal(t, "Informe um número válido", ValidateField(field, "trinta"))
	// numeric strings are accepted
	assert.Empty(t, ValidateField(field, "42"))
}

func TestValidateField_SelectMembership(t *testing.T) {
	field := FieldDefinition{
		ID: "f", Type: FieldTypeSelect, Label: "Tipo",
		Options: []Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}},
	}
	assert.Empty(t, ValidateField(field, "a"))
	assert.Equal(t, "Opção inválida", ValidateField(field, "c"))
}

func TestValidateField_CheckboxGroupMembership(t *testing.T) {
	field := FieldDefinition{
		ID: "f", Type: FieldTypeCheckbox, Label: "Interesses",
		Options: []Option{{Value: "x", Label: "X"}, {Value: "y", Label: "Y"}},
	}
	assert.Empty(t, ValidateField(field, []any{"x", "y"}))
	assert.Equal(t, "Opção inválida", ValidateField(field, []any{"x", "z"}))
}

func TestValidateField_SingleCheckbox(t *testing.T) {
	field := FieldDefinition{ID: "aceito", Type: FieldTypeCheckbox, Label: "Aceito os termos", Required: true}
	assert.NotEmpty(t, ValidateField(field, false))
	assert.Empty(t, ValidateField(field, true))
}

func TestValidateField_StructuralAlwaysValid(t *testing.T) {
	// required should not be set on these, but must not produce errors if it is
	for _, typ := range []FieldType{FieldTypeHTML, FieldTypeSeparator} {
		field := FieldDefinition{ID: "s", Type: typ, Required: true}
		assert.Empty(t, ValidateField(field, nil))
	}
}

func TestValidateField_PresenceOnlyTypes(t *testing.T) {
	for _, typ := range []FieldType{FieldTypeText, FieldTypeTextarea, FieldTypeDate, FieldTypeFile} {
		field := FieldDefinition{ID: "f", Type: typ, Label: "Campo"}
		assert.Empty(t, ValidateField(field, "qualquer coisa"), "type=%s", typ)
	}
}

func TestValidateField_RequiredWinsOverTypeCheck(t *testing.T) {
	field := FieldDefinition{ID: "f", Type: FieldTypeEmail, Label: "E-mail", Required: true}
	assert.Equal(t, `O campo "E-mail" é obrigatório`, ValidateField(field, ""))
}
