package fieldconfig

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formclamp/pkg/clamp"
	"github.com/goliatone/go-formclamp/pkg/model"
)

// LoadFS walks the provided filesystem and parses JSON/YAML field files.
// When fsys is nil or no files are present, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{
		forms:   make(map[string]model.FormModel),
		sources: make(map[string]string),
	}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldconfig: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for formID, raw := range doc.Forms {
			id := strings.TrimSpace(formID)
			if id == "" {
				return fmt.Errorf("fieldconfig: file %s defines an empty form id", path)
			}
			if prev, exists := store.sources[id]; exists {
				return fmt.Errorf("fieldconfig: duplicate form %q (files %s and %s)", id, prev, path)
			}
			form, err := normaliseForm(raw, id, path)
			if err != nil {
				return err
			}
			store.forms[id] = form
			store.sources[id] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldconfig: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("fieldconfig: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("fieldconfig: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseForm(raw formFile, id, source string) (model.FormModel, error) {
	form := model.FormModel{
		OperationID: id,
		Endpoint:    strings.TrimSpace(raw.Endpoint),
		Method:      strings.ToUpper(strings.TrimSpace(raw.Method)),
		Summary:     sanitizeText(raw.Title),
		Description: sanitizeText(raw.Description),
		Metadata:    cloneStrings(raw.Metadata),
		Fields:      make([]model.Field, 0, len(raw.Fields)),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, rawField := range raw.Fields {
		name := strings.TrimSpace(rawField.Name)
		if name == "" {
			return model.FormModel{}, fmt.Errorf("fieldconfig: form %q (file %s) field %d has no name", id, source, idx)
		}
		if _, dup := seen[name]; dup {
			return model.FormModel{}, fmt.Errorf("fieldconfig: form %q (file %s) defines duplicate field %q", id, source, name)
		}
		seen[name] = struct{}{}

		field, err := normaliseField(rawField, name)
		if err != nil {
			return model.FormModel{}, fmt.Errorf("fieldconfig: form %q (file %s): %w", id, source, err)
		}
		form.Fields = append(form.Fields, field)
	}
	return form, nil
}

func normaliseField(raw fieldFile, name string) (model.Field, error) {
	if raw.Min == nil || raw.Max == nil {
		return model.Field{}, fmt.Errorf("field %q: min and max are required", name)
	}
	bound, err := clamp.NewBound(*raw.Min, *raw.Max)
	if err != nil {
		return model.Field{}, fmt.Errorf("field %q: %w", name, err)
	}

	field := model.Field{
		Name:        name,
		Type:        model.FieldTypeInteger,
		Required:    raw.Required,
		Label:       sanitizeText(raw.Label),
		Description: sanitizeText(raw.Help),
		Placeholder: sanitizeText(raw.Placeholder),
		Validations: model.MinMaxRules(bound.Min(), bound.Max()),
		Metadata:    cloneStrings(raw.Metadata),
	}
	if raw.Default != nil {
		if !bound.Contains(*raw.Default) {
			return model.Field{}, fmt.Errorf("field %q: default %d outside %s", name, *raw.Default, bound)
		}
		field.Default = *raw.Default
	}
	return field, nil
}

func cloneStrings(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
