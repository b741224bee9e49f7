package model

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formclamp/pkg/clamp"
)

func TestFieldBound(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		field   Field
		wantOK  bool
		wantMin uint32
		wantMax uint32
		wantErr error
	}{
		{
			name:    "inclusive range",
			field:   Field{Name: "year", Validations: MinMaxRules(1900, 2300)},
			wantOK:  true,
			wantMin: 1900,
			wantMax: 2300,
		},
		{
			name: "exclusive endpoints shift inward",
			field: Field{Name: "pct", Validations: []ValidationRule{
				{Kind: ValidationRuleMin, Params: map[string]string{"value": "9", ParamExclusive: "true"}},
				{Kind: ValidationRuleMax, Params: map[string]string{"value": "100", ParamExclusive: "true"}},
			}},
			wantOK:  true,
			wantMin: 10,
			wantMax: 99,
		},
		{
			name: "missing max",
			field: Field{Name: "count", Validations: []ValidationRule{
				{Kind: ValidationRuleMin, Params: map[string]string{"value": "1"}},
			}},
		},
		{
			name:  "no rules",
			field: Field{Name: "title"},
		},
		{
			name:    "digit mismatch",
			field:   Field{Name: "qty", Validations: MinMaxRules(1, 100)},
			wantErr: clamp.ErrPreconditionViolated,
		},
		{
			name: "negative threshold",
			field: Field{Name: "delta", Validations: []ValidationRule{
				{Kind: ValidationRuleMin, Params: map[string]string{"value": "-1"}},
				{Kind: ValidationRuleMax, Params: map[string]string{"value": "5"}},
			}},
			wantErr: strconv.ErrSyntax,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			bound, ok, err := tc.field.Bound()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("bound: %v", err)
			}
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if ok && (bound.Min() != tc.wantMin || bound.Max() != tc.wantMax) {
				t.Fatalf("bound = %s, want [%d, %d]", bound, tc.wantMin, tc.wantMax)
			}
		})
	}
}

func TestClampFields(t *testing.T) {
	t.Parallel()

	form := FormModel{
		OperationID: "createHolding",
		Fields: []Field{
			{Name: "title", Type: FieldTypeString},
			{Name: "year", Type: FieldTypeInteger, Validations: MinMaxRules(1900, 2300)},
			{Name: "shares", Type: FieldTypeInteger, Validations: MinMaxRules(1, 9)},
		},
	}
	fields, err := form.ClampFields()
	if err != nil {
		t.Fatalf("clamp fields: %v", err)
	}
	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}
	if diff := cmp.Diff([]string{"year", "shares"}, names); diff != "" {
		t.Fatalf("clamp fields mismatch (-want +got):\n%s", diff)
	}
}
