package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formclamp/pkg/model"
	"github.com/goliatone/go-formclamp/pkg/numfield"
)

// RenderOptions carries per-run values. Values prefill prompts by field name
// and take precedence over field defaults.
type RenderOptions struct {
	Values map[string]any
}

// Renderer prompts for every clamped field of a form in a terminal session
// and serializes the collected values.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	logger       *zap.Logger
	theme        Theme
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatJSON,
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain"
	}
	return "application/json"
}

// Render prompts each field that resolves to a bound, clamps every answer,
// and re-prompts until the answer is complete. Empty answers to optional
// fields are left out of the output.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, opts RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	fields, err := form.ClampFields()
	if err != nil {
		return nil, fmt.Errorf("tui: form %q: %w", form.OperationID, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoClampFields, form.OperationID)
	}

	values := make(map[string]any, len(fields))
	for _, field := range fields {
		if err := r.promptField(ctx, field, opts.Values, values); err != nil {
			return nil, err
		}
	}
	r.logger.Debug("form collected",
		zap.String("form", form.OperationID),
		zap.Int("fields", len(fields)),
		zap.Int("values", len(values)),
	)

	return r.serialize(values)
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, prefill, values map[string]any) error {
	bound, _, err := field.Bound()
	if err != nil {
		return err
	}
	input := numfield.FromBound(bound, numfield.WithRequired(field.Required))
	check := func(raw string) error {
		return describe(input, input.Apply(raw, len(raw)))
	}

	cfg := InputConfig{
		Message:   fmt.Sprintf("%s %s", displayLabel(field), bound),
		Default:   defaultText(field, prefill),
		Help:      displayHelp(field),
		Validator: check,
		Transform: func(raw string) string {
			return input.Apply(raw, len(raw)).Text
		},
	}

	for {
		response, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}

		update := input.Apply(response, len(response))
		if err := describe(input, update); err != nil {
			r.logger.Debug("answer rejected",
				zap.String("field", field.Name),
				zap.String("status", update.Status.String()),
			)
			_ = r.driver.Info(ctx, r.theme.ErrorPrefix+fmt.Sprintf("Invalid %s: %v", field.Name, err))
			continue
		}
		if update.Status == numfield.StatusEmpty {
			return nil
		}

		if digits := strings.TrimSpace(response); digits != update.Text {
			r.logger.Debug("answer clamped",
				zap.String("field", field.Name),
				zap.String("from", digits),
				zap.String("to", update.Text),
			)
			_ = r.driver.Info(ctx, r.theme.InfoPrefix+fmt.Sprintf("%s set to %s", displayLabel(field), update.Text))
		}
		values[field.Name] = update.Value
		return nil
	}
}

// describe turns an update into the error shown to the user, or nil when the
// answer can be accepted.
func describe(input *numfield.Field, update numfield.Update) error {
	switch update.Status {
	case numfield.StatusEmpty:
		if input.Required() {
			return errors.New("a value is required")
		}
		return nil
	case numfield.StatusPartial:
		return fmt.Errorf("enter %d digits", input.Bound().DigitCount())
	case numfield.StatusInvalid:
		return fmt.Errorf("must be within %s", input.Bound())
	default:
		return nil
	}
}

func (r *Renderer) serialize(values map[string]any) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		return []byte(prettyPrint(values)), nil
	}
	return json.Marshal(values)
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}

func displayHelp(field model.Field) string {
	if h := field.Metadata["cli.help"]; h != "" {
		return h
	}
	return field.Description
}

func defaultText(field model.Field, prefill map[string]any) string {
	value, ok := prefill[field.Name]
	if !ok {
		value = field.Default
	}
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func prettyPrint(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%s=%v\n", key, values[key])
	}
	return b.String()
}
