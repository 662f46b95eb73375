package formengine

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s().-]{8,20}$`)
	// CPF: 11 digits, formatted (000.000.000-00) or bare. Format-only check,
	// no checksum.
	cpfPattern = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)
)

// ValidateField checks one field's candidate value and returns a user-facing
// message, or "" when the value is acceptable. The required check runs first
// and wins over type checks; type checks only run on present values.
// Structural fields (html, separator) are always valid.
func ValidateField(field FieldDefinition, value any) string {
	if field.Type.IsStructural() {
		return ""
	}

	if field.Required && isEmptyValue(value) {
		return fmt.Sprintf("O campo %q é obrigatório", field.Label)
	}
	if isEmptyValue(value) {
		return ""
	}

	switch field.Type {
	case FieldTypeEmail:
		if !emailPattern.MatchString(valueToString(value)) {
			return "E-mail inválido"
		}
	case FieldTypePhone:
		if !phonePattern.MatchString(valueToString(value)) {
			return "Telefone inválido"
		}
	case FieldTypeCPF:
		if !cpfPattern.MatchString(valueToString(value)) {
			return "CPF inválido"
		}
	case FieldTypeNumber:
		return validateNumber(field, value)
	case FieldTypeSelect, FieldTypeRadio:
		if !field.HasOption(valueToString(value)) {
			return "Opção inválida"
		}
	case FieldTypeCheckbox:
		return validateCheckbox(field, value)
	}
	return ""
}

func validateNumber(field FieldDefinition, value any) string {
	n, err := toNumber(value)
	if err != nil {
		return "Informe um número válido"
	}
	if field.Validation != nil {
		if field.Validation.Min != nil && n < *field.Validation.Min {
			return fmt.Sprintf("O valor mínimo é %s", valueToString(*field.Validation.Min))
		}
		if field.Validation.Max != nil && n > *field.Validation.Max {
			return fmt.Sprintf("O valor máximo é %s", valueToString(*field.Validation.Max))
		}
	}
	return ""
}

// validateCheckbox validates multi-option checkbox groups: every selected
// entry must be a declared option. A checkbox without options is a single
// consent box (boolean value) and has nothing beyond the required check.
func validateCheckbox(field FieldDefinition, value any) string {
	if len(field.Options) == 0 {
		return ""
	}
	entries, ok := stringSlice(value)
	if !ok {
		entries = []string{valueToString(value)}
	}
	for _, entry := range entries {
		if !field.HasOption(entry) {
			return "Opção inválida"
		}
	}
	return ""
}

func toNumber(v any) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case int:
		return float64(val), nil
	case string:
		return strconv.ParseFloat(val, 64)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
