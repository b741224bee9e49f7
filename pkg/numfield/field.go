// Package numfield is the text-input side of a clamped numeric field: it
// filters keystrokes down to ASCII digits, runs them through clamp, and
// reports the canonical text, caret position, and validity state a widget
// should display.
package numfield

import (
	"fmt"

	"github.com/goliatone/go-formclamp/pkg/clamp"
)

// Status is the visual state a widget derives from an Update.
type Status int

const (
	// StatusEmpty means the field holds no digits.
	StatusEmpty Status = iota
	// StatusPartial means the digits form an in-progress prefix.
	StatusPartial
	// StatusValid means every digit is present and the value is in range.
	StatusValid
	// StatusInvalid means every digit is present but the value is out of range.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPartial:
		return "partial"
	case StatusValid:
		return "valid"
	case StatusInvalid:
		return "invalid"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Update is the state a widget writes back after one change to the field.
type Update struct {
	Text     string
	Cursor   int
	Value    uint32
	HasValue bool
	Status   Status
}

// Field holds the bound of one configured input. It is immutable and safe to
// share.
type Field struct {
	bound    clamp.Bound
	required bool
}

// Option configures a Field.
type Option func(*Field)

// WithRequired marks the field as requiring a value.
func WithRequired(required bool) Option {
	return func(f *Field) {
		f.required = required
	}
}

// New validates the bound once and returns a field ready for keystrokes.
func New(min, max uint32, options ...Option) (*Field, error) {
	bound, err := clamp.NewBound(min, max)
	if err != nil {
		return nil, fmt.Errorf("numfield: %w", err)
	}
	return FromBound(bound, options...), nil
}

// FromBound wraps an already validated bound.
func FromBound(bound clamp.Bound, options ...Option) *Field {
	f := &Field{bound: bound}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Bound returns the configured bound.
func (f *Field) Bound() clamp.Bound {
	return f.bound
}

// Required reports whether the field was configured as required.
func (f *Field) Required() bool {
	return f.required
}

// Apply processes the raw field contents with the caret at byte offset
// cursor. Non-digit characters are dropped before clamping and the caret is
// moved to the same logical digit in the canonical text.
func (f *Field) Apply(raw string, cursor int) Update {
	digits, pos := Filter(raw, cursor)
	res, ok := f.bound.Clamp(digits)
	if !ok {
		return Update{Status: StatusEmpty}
	}
	if pos > len(res.Text) {
		pos = len(res.Text)
	}
	return Update{
		Text:     res.Text,
		Cursor:   pos,
		Value:    res.Value,
		HasValue: true,
		Status:   f.status(res),
	}
}

// Type replays keys one at a time, appending each to the canonical text of
// the previous update, and returns every intermediate update.
func (f *Field) Type(keys string) []Update {
	updates := make([]Update, 0, len(keys))
	var text string
	for i := 0; i < len(keys); i++ {
		next := text + keys[i:i+1]
		u := f.Apply(next, len(next))
		updates = append(updates, u)
		text = u.Text
	}
	return updates
}

func (f *Field) status(res clamp.Result) Status {
	if !res.Complete(f.bound) {
		return StatusPartial
	}
	if f.bound.Contains(res.Value) {
		return StatusValid
	}
	return StatusInvalid
}
