package formengine

import (
	"fmt"
	"strconv"
	"strings"
)

// IsVisible decides whether a field is currently shown given the respondent's
// entered values. Fields without conditional logic are always visible. When
// the dependency's value is absent or empty the field is hidden for every
// operator, including the negated ones: a hidden dependency always yields a
// hidden dependent. Unknown operators keep the field visible so a schema typo
// cannot make a field unreachable.
//
// Pure function of (field, values); safe to call on every change event.
func IsVisible(field FieldDefinition, values map[string]any) bool {
	if field.ConditionalLogic == nil || field.ConditionalLogic.ShowIf == nil {
		return true
	}
	cond := field.ConditionalLogic.ShowIf

	dep, ok := values[cond.FieldID]
	if !ok || isEmptyValue(dep) {
		return false
	}

	switch cond.Operator {
	case OperatorEquals:
		return matchesEquals(dep, cond.Value)
	case OperatorNotEquals:
		return !matchesEquals(dep, cond.Value)
	case OperatorContains:
		return matchesContains(dep, cond.Value)
	case OperatorNotContains:
		return !matchesContains(dep, cond.Value)
	default:
		return true
	}
}

// isEmptyValue is the single emptiness rule shared by visibility gating and
// the required check: nil, empty string, empty slice and false (unchecked
// single checkbox) all count as empty.
func isEmptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case bool:
		return !val
	case []any:
		return len(val) == 0
	case []string:
		return len(val) == 0
	default:
		return false
	}
}

// matchesEquals compares the dependency value against the condition value,
// which may be a single string or an array of acceptable strings.
func matchesEquals(dep any, condValue any) bool {
	dv := valueToString(dep)
	for _, want := range conditionValues(condValue) {
		if dv == want {
			return true
		}
	}
	return false
}

// matchesContains checks membership for multi-checkbox dependencies and
// substring containment for scalar ones.
func matchesContains(dep any, condValue any) bool {
	want := conditionValues(condValue)

	if items, ok := stringSlice(dep); ok {
		for _, item := range items {
			for _, w := range want {
				if item == w {
					return true
				}
			}
		}
		return false
	}

	dv := valueToString(dep)
	for _, w := range want {
		if strings.Contains(dv, w) {
			return true
		}
	}
	return false
}

// conditionValues normalizes a ShowIf value into the list of strings it
// matches against.
func conditionValues(v any) []string {
	if items, ok := stringSlice(v); ok {
		return items
	}
	return []string{valueToString(v)}
}

// stringSlice converts JSON-decoded arrays into []string. The second result
// is false for scalar values.
func stringSlice(v any) ([]string, bool) {
	switch val := v.(type) {
	case []string:
		return val, true
	case []any:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = valueToString(item)
		}
		return out, true
	default:
		return nil, false
	}
}

// valueToString is the consistent string coercion used for comparisons.
// JSON numbers arrive as float64 and must not render with a trailing ".0".
func valueToString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
