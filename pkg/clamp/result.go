package clamp

// Result pairs the clamped magnitude with its canonical text. Value always
// equals the base-10 parse of Text.
type Result struct {
	Value uint32 `json:"value"`
	Text  string `json:"text"`
}

// Complete reports whether the result carries every digit of bound, i.e. the
// typed value is no longer a prefix.
func (r Result) Complete(bound Bound) bool {
	return len(r.Text) == bound.DigitCount()
}

// InRange reports whether a complete result lies inside bound. Partial
// results are never in range.
func (r Result) InRange(bound Bound) bool {
	return r.Complete(bound) && bound.Contains(r.Value)
}
