package model

// FieldType is the simplified enum for form-friendly field kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

const (
	ValidationRuleMin = "min"
	ValidationRuleMax = "max"
)

// ParamExclusive marks a min/max rule whose threshold is not itself allowed.
const ParamExclusive = "exclusive"

// ValidationRule represents a single validation constraint applied to a field.
// Numeric bounds encode their threshold in Params["value"]; exclusivity is
// encoded as Params["exclusive"] = "true" to keep JSON snapshots stable.
type ValidationRule struct {
	Kind   string            `json:"kind" yaml:"kind"`
	Params map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
}

// Field models an individual input inside a form.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Default     any               `json:"default,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel is the top-level representation renderers consume.
type FormModel struct {
	OperationID string            `json:"operationId"`
	Endpoint    string            `json:"endpoint,omitempty"`
	Method      string            `json:"method,omitempty"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// MinMaxRules builds the validation rules for an inclusive range.
func MinMaxRules(min, max uint32) []ValidationRule {
	return []ValidationRule{
		{Kind: ValidationRuleMin, Params: map[string]string{"value": formatUint(min)}},
		{Kind: ValidationRuleMax, Params: map[string]string{"value": formatUint(max)}},
	}
}
