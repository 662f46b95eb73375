package formengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_ValidRoundTrip(t *testing.T) {
	form := FormDefinition{
		Slug: "cadastro",
		Fields: []FieldDefinition{
			{ID: "email", Type: FieldTypeEmail, Label: "E-mail", Required: true, Order: 1},
			{ID: "age", Type: FieldTypeNumber, Label: "Idade", Required: true, Order: 2,
				Validation: &Bounds{Min: floatPtr(18), Max: floatPtr(99)}},
		},
	}

	sub, errs, err := Assemble(form, map[string]any{"email": "a@b.com", "age": float64(30)})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, sub)
	assert.Equal(t, map[string]any{"email": "a@b.com", "age": float64(30)}, sub.Data)
	assert.Equal(t, StatusPending, sub.Status)
	assert.Equal(t, "a@b.com", sub.SubmitterEmail)
}

func TestAssemble_OutOfRangeNumber(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "email", Type: FieldTypeEmail, Label: "E-mail", Required: true, Order: 1},
			{ID: "age", Type: FieldTypeNumber, Label: "Idade", Required: true, Order: 2,
				Validation: &Bounds{Min: floatPtr(18)}},
		},
	}

	sub, errs, err := Assemble(form, map[string]any{"email": "a@b.com", "age": float64(15)})
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, errs, "age")
	assert.NotContains(t, errs, "email")

	// age fine, email missing: only the required-email error remains
	sub, errs, err = Assemble(form, map[string]any{"age": float64(30)})
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, errs, "email")
	assert.NotContains(t, errs, "age")
}

func TestAssemble_ConditionalRevealEquals(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "a", Type: FieldTypeText, Label: "A", Order: 1},
			{ID: "b", Type: FieldTypeText, Label: "B", Required: true, Order: 2,
				ConditionalLogic: &ConditionalLogic{ShowIf: &ShowIf{FieldID: "a", Operator: OperatorEquals, Value: "yes"}}},
		},
	}

	// hidden: no error even though required
	sub, errs, err := Assemble(form, map[string]any{"a": "no"})
	require.NoError(t, err)
	assert.Empty(t, errs)
	require.NotNil(t, sub)

	// revealed and empty: required error appears
	sub, errs, err = Assemble(form, map[string]any{"a": "yes"})
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, errs, "b")
}

func TestAssemble_DropsStaleHiddenValues(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "a", Type: FieldTypeText, Label: "A", Order: 1},
			{ID: "b", Type: FieldTypeText, Label: "B", Order: 2,
				ConditionalLogic: &ConditionalLogic{ShowIf: &ShowIf{FieldID: "a", Operator: OperatorEquals, Value: "yes"}}},
		},
	}

	// b was filled while visible, then a changed and hid it
	sub, errs, err := Assemble(form, map[string]any{"a": "no", "b": "leftover"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, sub)
	assert.NotContains(t, sub.Data, "b")
}

func TestAssemble_OrderingByExplicitOrder(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "third", Type: FieldTypeText, Order: 3},
			{ID: "first", Type: FieldTypeText, Order: 1},
			{ID: "second", Type: FieldTypeText, Order: 2},
		},
	}
	sorted := form.SortedFields()
	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
	// input sequence untouched
	assert.Equal(t, "third", form.Fields[0].ID)

	states := Evaluate(form, nil)
	assert.Equal(t, "first", states[0].FieldID)
	assert.Equal(t, "third", states[2].FieldID)
}

func TestAssemble_StructuralFieldsNeverError(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "intro", Type: FieldTypeHTML, Required: true, Content: "<p>Oi</p>", Order: 1},
			{ID: "sep", Type: FieldTypeSeparator, Required: true, Order: 2},
			{ID: "nome", Type: FieldTypeText, Label: "Nome", Required: true, Order: 3},
		},
	}

	sub, errs, err := Assemble(form, map[string]any{})
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.NotContains(t, errs, "intro")
	assert.NotContains(t, errs, "sep")
	assert.Contains(t, errs, "nome")
}

func TestAssemble_SchemaErrorOnChoiceWithoutOptions(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "tipo", Type: FieldTypeSelect, Label: "Tipo", Order: 1},
		},
	}
	_, _, err := Assemble(form, map[string]any{"tipo": "a"})
	require.Error(t, err)
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "tipo", schemaErr.FieldID)
}

func TestAssemble_DuplicateFieldID(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "x", Type: FieldTypeText, Order: 1},
			{ID: "x", Type: FieldTypeText, Order: 2},
		},
	}
	_, _, err := Assemble(form, nil)
	require.Error(t, err)
}

func TestAssemble_EndToEndScenario(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "nome", Type: FieldTypeText, Label: "Nome", Required: true, Order: 1},
			{ID: "tipo", Type: FieldTypeSelect, Label: "Tipo", Required: true, Order: 2,
				Options: []Option{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}}},
			{ID: "detalhe", Type: FieldTypeText, Label: "Detalhe", Required: true, Order: 3,
				ConditionalLogic: &ConditionalLogic{ShowIf: &ShowIf{FieldID: "tipo", Operator: OperatorEquals, Value: "a"}}},
		},
	}

	// tipo=b hides detalhe entirely
	sub, errs, err := Assemble(form, map[string]any{"nome": "Ana", "tipo": "b"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, sub)
	assert.Equal(t, "Ana", sub.SubmitterName)

	// tipo=a reveals detalhe, still empty
	sub, errs, err = Assemble(form, map[string]any{"nome": "Ana", "tipo": "a"})
	require.NoError(t, err)
	assert.Nil(t, sub)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "detalhe")

	// fully filled
	sub, errs, err = Assemble(form, map[string]any{"nome": "Ana", "tipo": "a", "detalhe": "x"})
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NotNil(t, sub)
	assert.Equal(t, "x", sub.Data["detalhe"])
}

func TestDisplayValue(t *testing.T) {
	choice := FieldDefinition{
		ID: "tipo", Type: FieldTypeCheckbox,
		Options: []Option{{Value: "a", Label: "Alvará"}, {Value: "b", Label: "Boleto"}},
	}
	assert.Equal(t, "Alvará, Boleto", DisplayValue(choice, []any{"a", "b"}))
	assert.Equal(t, "Alvará", DisplayValue(choice, "a"))
	// unknown codes fall back to the raw value
	assert.Equal(t, "z", DisplayValue(choice, "z"))

	consent := FieldDefinition{ID: "aceito", Type: FieldTypeCheckbox}
	assert.Equal(t, "Sim", DisplayValue(consent, true))
	assert.Equal(t, "Não", DisplayValue(consent, false))

	number := FieldDefinition{ID: "idade", Type: FieldTypeNumber}
	assert.Equal(t, "30", DisplayValue(number, float64(30)))
	assert.Equal(t, "", DisplayValue(number, nil))
}

func TestEvaluate_FieldStates(t *testing.T) {
	form := FormDefinition{
		Fields: []FieldDefinition{
			{ID: "a", Type: FieldTypeText, Label: "A", Order: 1},
			{ID: "b", Type: FieldTypeEmail, Label: "B", Order: 2,
				ConditionalLogic: &ConditionalLogic{ShowIf: &ShowIf{FieldID: "a", Operator: OperatorEquals, Value: "yes"}}},
		},
	}

	states := Evaluate(form, map[string]any{"a": "yes", "b": "bogus"})
	require.Len(t, states, 2)
	assert.True(t, states[1].Visible)
	assert.Equal(t, "E-mail inválido", states[1].Error)

	states = Evaluate(form, map[string]any{"a": "no", "b": "bogus"})
	assert.False(t, states[1].Visible)
	assert.Empty(t, states[1].Error)
}
