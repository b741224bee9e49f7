package openapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formclamp/pkg/model"
)

// MetadataSkipped lists, comma separated, the integer properties that declare
// a range clamp cannot serve.
const MetadataSkipped = "clamp.skipped"

// Options tunes document loading.
type Options struct {
	// ResolveReferences validates the document and allows external refs.
	ResolveReferences bool
	// AllowPartialDocuments accepts documents without paths or operations.
	AllowPartialDocuments bool
}

// Option mutates Options.
type Option func(*Options)

// WithResolveReferences toggles validation and external reference loading.
func WithResolveReferences(enabled bool) Option {
	return func(o *Options) {
		o.ResolveReferences = enabled
	}
}

// WithPartialDocuments accepts documents that yield no operations.
func WithPartialDocuments(enabled bool) Option {
	return func(o *Options) {
		o.AllowPartialDocuments = enabled
	}
}

var requestMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// Forms parses an OpenAPI document and returns one form per operation, keyed
// by operationId (or "method:path" when the id is missing).
func Forms(ctx context.Context, data []byte, options ...Option) (map[string]model.FormModel, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	var opts Options
	for _, opt := range options {
		if opt != nil {
			opt(&opts)
		}
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: opts.ResolveReferences,
	}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if opts.ResolveReferences {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("openapi: validate: %w", err)
		}
	}

	forms := make(map[string]model.FormModel)
	if doc.Paths != nil {
		for path, item := range doc.Paths.Map() {
			if item == nil {
				continue
			}
			for method, operation := range item.Operations() {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				if operation == nil {
					continue
				}
				form := buildForm(method, path, operation)
				forms[form.OperationID] = form
			}
		}
	}

	if len(forms) == 0 && !opts.AllowPartialDocuments {
		return nil, errors.New("openapi: no operations extracted")
	}
	return forms, nil
}

func buildForm(method, path string, operation *openapi3.Operation) model.FormModel {
	id := operation.OperationID
	if id == "" {
		id = strings.ToLower(method) + ":" + path
	}
	form := model.FormModel{
		OperationID: id,
		Endpoint:    path,
		Method:      strings.ToUpper(method),
		Summary:     operation.Summary,
		Description: operation.Description,
	}

	schema := requestSchema(operation.RequestBody)
	if schema == nil {
		return form
	}

	required := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var skipped []string
	for _, name := range names {
		prop := schema.Properties[name]
		if prop == nil || prop.Value == nil || !isInteger(prop.Value.Type) {
			continue
		}
		if prop.Value.Min == nil || prop.Value.Max == nil {
			continue
		}
		_, isRequired := required[name]
		field, ok := buildField(name, prop.Value, isRequired)
		if !ok {
			skipped = append(skipped, name)
			continue
		}
		form.Fields = append(form.Fields, field)
	}
	if len(skipped) > 0 {
		form.Metadata = map[string]string{MetadataSkipped: strings.Join(skipped, ",")}
	}
	return form
}

func buildField(name string, schema *openapi3.Schema, required bool) (model.Field, bool) {
	min, ok := threshold(*schema.Min)
	if !ok {
		return model.Field{}, false
	}
	max, ok := threshold(*schema.Max)
	if !ok {
		return model.Field{}, false
	}

	minRule := model.ValidationRule{Kind: model.ValidationRuleMin, Params: map[string]string{"value": min}}
	if schema.ExclusiveMin {
		minRule.Params[model.ParamExclusive] = "true"
	}
	maxRule := model.ValidationRule{Kind: model.ValidationRuleMax, Params: map[string]string{"value": max}}
	if schema.ExclusiveMax {
		maxRule.Params[model.ParamExclusive] = "true"
	}

	label := strings.TrimSpace(schema.Title)
	if label == "" {
		label = name
	}
	field := model.Field{
		Name:        name,
		Type:        model.FieldTypeInteger,
		Required:    required,
		Label:       label,
		Description: schema.Description,
		Default:     schema.Default,
		Validations: []model.ValidationRule{minRule, maxRule},
	}
	if _, ok, err := field.Bound(); !ok || err != nil {
		return model.Field{}, false
	}
	return field, true
}

// threshold renders an integral, non-negative uint32 value as a rule
// parameter.
func threshold(v float64) (string, bool) {
	if v < 0 || v > math.MaxUint32 || v != math.Trunc(v) {
		return "", false
	}
	return strconv.FormatUint(uint64(v), 10), true
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if mt := content[key]; mt != nil && mt.Schema != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func isInteger(types *openapi3.Types) bool {
	if types == nil {
		return false
	}
	for _, t := range types.Slice() {
		if t == openapi3.TypeInteger {
			return true
		}
	}
	return false
}
