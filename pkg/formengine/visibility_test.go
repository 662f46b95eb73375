package formengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func condField(op Operator, condValue any) FieldDefinition {
	return FieldDefinition{
		ID:   "b",
		Type: FieldTypeText,
		ConditionalLogic: &ConditionalLogic{
			ShowIf: &ShowIf{FieldID: "a", Operator: op, Value: condValue},
		},
	}
}

func TestIsVisible_NoRuleAlwaysVisible(t *testing.T) {
	field := FieldDefinition{ID: "plain", Type: FieldTypeText}
	assert.True(t, IsVisible(field, map[string]any{}))
	assert.True(t, IsVisible(field, map[string]any{"other": "x"}))
}

func TestIsVisible_Idempotent(t *testing.T) {
	field := condField(OperatorEquals, "yes")
	values := map[string]any{"a": "yes"}
	first := IsVisible(field, values)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, IsVisible(field, values))
	}
}

func TestIsVisible_HiddenDependencyHidesDependent(t *testing.T) {
	// Absent or empty dependency hides the field under every operator,
	// including the negated ones.
	for _, op := range []Operator{OperatorEquals, OperatorNotEquals, OperatorContains, OperatorNotContains} {
		field := condField(op, "yes")
		assert.False(t, IsVisible(field, map[string]any{}), "op=%s absent", op)
		assert.False(t, IsVisible(field, map[string]any{"a": ""}), "op=%s empty string", op)
		assert.False(t, IsVisible(field, map[string]any{"a": []any{}}), "op=%s empty array", op)
		assert.False(t, IsVisible(field, map[string]any{"a": false}), "op=%s false", op)
	}
}

func TestIsVisible_Equals(t *testing.T) {
	field := condField(OperatorEquals, "yes")
	assert.True(t, IsVisible(field, map[string]any{"a": "yes"}))
	assert.False(t, IsVisible(field, map[string]any{"a": "no"}))
}

func TestIsVisible_EqualsArrayCondition(t *testing.T) {
	field := condField(OperatorEquals, []any{"yes", "maybe"})
	assert.True(t, IsVisible(field, map[string]any{"a": "maybe"}))
	assert.False(t, IsVisible(field, map[string]any{"a": "no"}))
}

func TestIsVisible_NotEquals(t *testing.T) {
	field := condField(OperatorNotEquals, "yes")
	assert.False(t, IsVisible(field, map[string]any{"a": "yes"}))
	assert.True(t, IsVisible(field, map[string]any{"a": "no"}))
	// still gated by presence
	assert.False(t, IsVisible(field, map[string]any{}))
}

func TestIsVisible_ContainsMultiCheckbox(t *testing.T) {
	field := condField(OperatorContains, []any{"x", "y"})
	assert.True(t, IsVisible(field, map[string]any{"a": []any{"x"}}))
	assert.False(t, IsVisible(field, map[string]any{"a": []any{"z"}}))
	assert.False(t, IsVisible(field, map[string]any{"a": []any{}}))
}

func TestIsVisible_ContainsScalarSubstring(t *testing.T) {
	field := condField(OperatorContains, "centro")
	assert.True(t, IsVisible(field, map[string]any{"a": "bairro centro sul"}))
	assert.False(t, IsVisible(field, map[string]any{"a": "zona norte"}))
}

func TestIsVisible_NotContains(t *testing.T) {
	field := condField(OperatorNotContains, []any{"x"})
	assert.False(t, IsVisible(field, map[string]any{"a": []any{"x", "y"}}))
	assert.True(t, IsVisible(field, map[string]any{"a": []any{"y"}}))
	assert.False(t, IsVisible(field, map[string]any{"a": []any{}}))
}

func TestIsVisible_UnknownOperatorFailsOpen(t *testing.T) {
	field := condField(Operator("greater_than"), "5")
	assert.True(t, IsVisible(field, map[string]any{"a": "7"}))
}

func TestIsVisible_NumericValueCoercion(t *testing.T) {
	// JSON numbers decode as float64; comparison is by consistent string form.
	field := condField(OperatorEquals, "3")
	assert.True(t, IsVisible(field, map[string]any{"a": float64(3)}))
	assert.False(t, IsVisible(field, map[string]any{"a": float64(4)}))
}
