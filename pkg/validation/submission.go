// Package validation checks submitted form values against the bounds of the
// form's clamped fields. It is the server-side counterpart of the live clamp:
// a value that never went through a clamped input is rejected rather than
// rewritten.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formclamp/pkg/clamp"
	"github.com/goliatone/go-formclamp/pkg/model"
)

// Issue represents a validation error attached to a field.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the validation outcome of one submission.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// FieldErrors groups issue messages by field name.
func (r Result) FieldErrors() map[string][]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string][]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	return out
}

// ValidateSubmission checks every clamped field of form against values.
// Missing optional fields are accepted; values for unknown fields are
// ignored. A form whose bounds cannot be resolved yields a single form-level
// issue.
func ValidateSubmission(form model.FormModel, values map[string]any) Result {
	result := Result{Valid: true}
	fields, err := form.ClampFields()
	if err != nil {
		return Result{Issues: []Issue{{Message: strings.TrimSpace(err.Error())}}}
	}

	for _, field := range fields {
		bound, _, _ := field.Bound()
		raw, present := values[field.Name]
		if !present || raw == nil {
			if field.Required {
				result.Issues = append(result.Issues, Issue{Field: field.Name, Message: "is required"})
			}
			continue
		}
		value, err := toUint32(raw)
		if err != nil {
			result.Issues = append(result.Issues, Issue{Field: field.Name, Message: err.Error()})
			continue
		}
		if !bound.Contains(value) {
			result.Issues = append(result.Issues, Issue{
				Field:   field.Name,
				Message: fmt.Sprintf("%d must be within %s", value, bound),
			})
		}
	}

	sort.SliceStable(result.Issues, func(i, j int) bool {
		return result.Issues[i].Field < result.Issues[j].Field
	})
	result.Valid = len(result.Issues) == 0
	return result
}

// Suggest returns the value a clamped input would have produced for a
// submitted digit string, for use in error hints.
func Suggest(bound clamp.Bound, text string) (clamp.Result, bool) {
	digits := strings.TrimSpace(text)
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return clamp.Result{}, false
		}
	}
	return bound.Clamp(digits)
}

func toUint32(raw any) (uint32, error) {
	switch v := raw.(type) {
	case uint32:
		return v, nil
	case int:
		if v < 0 || uint64(v) > math.MaxUint32 {
			return 0, fmt.Errorf("%d is not a valid value", v)
		}
		return uint32(v), nil
	case float64:
		if v < 0 || v > math.MaxUint32 || v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a valid value", v)
		}
		return uint32(v), nil
	case json.Number:
		return parseDigits(v.String())
	case string:
		return parseDigits(v)
	default:
		return 0, fmt.Errorf("unsupported value type %T", raw)
	}
}

func parseDigits(s string) (uint32, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid value", s)
	}
	return uint32(value), nil
}
