package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formclamp/pkg/clamp"
)

// Bound resolves the field's min/max rules into a clamp.Bound. ok is false
// when the field lacks either rule. Exclusive thresholds are shifted inward by
// one. An error is returned for malformed thresholds or bounds that clamp
// cannot serve.
func (f Field) Bound() (clamp.Bound, bool, error) {
	var (
		min, max       uint32
		hasMin, hasMax bool
	)
	for _, rule := range f.Validations {
		switch rule.Kind {
		case ValidationRuleMin:
			value, err := ruleThreshold(f.Name, rule)
			if err != nil {
				return clamp.Bound{}, false, err
			}
			if isExclusive(rule) {
				if value == ^uint32(0) {
					return clamp.Bound{}, false, fmt.Errorf("model: field %q: exclusive min %d leaves no values", f.Name, value)
				}
				value++
			}
			min, hasMin = value, true
		case ValidationRuleMax:
			value, err := ruleThreshold(f.Name, rule)
			if err != nil {
				return clamp.Bound{}, false, err
			}
			if isExclusive(rule) {
				if value == 0 {
					return clamp.Bound{}, false, fmt.Errorf("model: field %q: exclusive max 0 leaves no values", f.Name)
				}
				value--
			}
			max, hasMax = value, true
		}
	}
	if !hasMin || !hasMax {
		return clamp.Bound{}, false, nil
	}
	bound, err := clamp.NewBound(min, max)
	if err != nil {
		return clamp.Bound{}, false, fmt.Errorf("model: field %q: %w", f.Name, err)
	}
	return bound, true, nil
}

// ClampFields returns the fields that resolve to a bound, in order. The first
// resolution error aborts the scan.
func (m FormModel) ClampFields() ([]Field, error) {
	var out []Field
	for _, field := range m.Fields {
		_, ok, err := field.Bound()
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, field)
		}
	}
	return out, nil
}

func ruleThreshold(name string, rule ValidationRule) (uint32, error) {
	raw := strings.TrimSpace(rule.Params["value"])
	if raw == "" {
		return 0, fmt.Errorf("model: field %q: %s rule has no value", name, rule.Kind)
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("model: field %q: %s value %q: %w", name, rule.Kind, raw, err)
	}
	return uint32(value), nil
}

func isExclusive(rule ValidationRule) bool {
	return strings.EqualFold(strings.TrimSpace(rule.Params[ParamExclusive]), "true")
}

func formatUint(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
