package fieldconfig

import (
	"sort"

	"github.com/goliatone/go-formclamp/pkg/model"
)

// Store keeps the parsed forms. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	forms   map[string]model.FormModel
	sources map[string]string
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (model.FormModel, bool) {
	if s == nil {
		return model.FormModel{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// Source reports which file defined the form.
func (s *Store) Source(id string) string {
	if s == nil {
		return ""
	}
	return s.sources[id]
}

// IDs lists the form ids in lexical order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

type documentFile struct {
	Forms map[string]formFile `json:"forms" yaml:"forms"`
}

type formFile struct {
	Title       string            `json:"title" yaml:"title"`
	Description string            `json:"description" yaml:"description"`
	Endpoint    string            `json:"endpoint" yaml:"endpoint"`
	Method      string            `json:"method" yaml:"method"`
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
	Fields      []fieldFile       `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Name        string            `json:"name" yaml:"name"`
	Label       string            `json:"label" yaml:"label"`
	Help        string            `json:"help" yaml:"help"`
	Placeholder string            `json:"placeholder" yaml:"placeholder"`
	Min         *uint32           `json:"min" yaml:"min"`
	Max         *uint32           `json:"max" yaml:"max"`
	Default     *uint32           `json:"default" yaml:"default"`
	Required    bool              `json:"required" yaml:"required"`
	Metadata    map[string]string `json:"metadata" yaml:"metadata"`
}
