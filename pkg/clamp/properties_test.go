package clamp

import (
	"strconv"
	"testing"
)

var propertyBounds = []Bound{
	MustBound(0, 9),
	MustBound(5, 5),
	MustBound(10, 99),
	MustBound(37, 37),
	MustBound(123, 456),
	MustBound(101, 909),
	MustBound(555, 556),
	MustBound(1900, 2300),
	MustBound(1980, 2200),
	MustBound(2200, 2299),
	MustBound(1000, 9999),
}

// eachInput calls fn for every digit string of the given length.
func eachInput(length int, fn func(string)) {
	limit := 1
	for i := 0; i < length; i++ {
		limit *= 10
	}
	for v := 0; v < limit; v++ {
		fn(pad(v, length))
	}
}

func TestPropertyFullLengthIsInRange(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		eachInput(bound.DigitCount(), func(s string) {
			res, _ := Clamp(s, bound)
			if !bound.Contains(res.Value) {
				t.Fatalf("%s: Clamp(%q) = %d, outside bound", bound, s, res.Value)
			}
			if len(res.Text) != bound.DigitCount() {
				t.Fatalf("%s: Clamp(%q) text %q has wrong length", bound, s, res.Text)
			}
		})
	}
}

func TestPropertyValueMatchesText(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		for length := 1; length <= bound.DigitCount()+1; length++ {
			eachInput(length, func(s string) {
				res, _ := Clamp(s, bound)
				parsed, err := strconv.ParseUint(res.Text, 10, 32)
				if err != nil {
					t.Fatalf("%s: parse %q: %v", bound, res.Text, err)
				}
				if uint32(parsed) != res.Value {
					t.Fatalf("%s: value %d does not match text %q", bound, res.Value, res.Text)
				}
			})
		}
	}
}

func TestPropertyIdempotent(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		for length := 1; length <= bound.DigitCount(); length++ {
			eachInput(length, func(s string) {
				first, _ := Clamp(s, bound)
				second, _ := Clamp(first.Text, bound)
				if first != second {
					t.Fatalf("%s: Clamp not idempotent for %q: %+v then %+v", bound, s, first, second)
				}
			})
		}
	}
}

func TestPropertyValidInputUnchanged(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		for v := bound.Min(); v <= bound.Max(); v++ {
			s := strconv.FormatUint(uint64(v), 10)
			if res, _ := Clamp(s, bound); res.Text != s {
				t.Fatalf("%s: Clamp(%q) = %q, want unchanged", bound, s, res.Text)
			}
		}
	}
}

func TestPropertyBreachSaturates(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		eachInput(bound.DigitCount(), func(s string) {
			parsed, _ := strconv.ParseUint(s, 10, 32)
			res, _ := Clamp(s, bound)
			switch {
			case uint32(parsed) > bound.Max() && res.Value != bound.Max():
				t.Fatalf("%s: Clamp(%q) = %d, want max", bound, s, res.Value)
			case uint32(parsed) < bound.Min() && res.Value != bound.Min():
				t.Fatalf("%s: Clamp(%q) = %d, want min", bound, s, res.Value)
			}
		})
	}
}

func TestPropertyPartialHasCompletion(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		n := bound.DigitCount()
		for length := 1; length < n; length++ {
			eachInput(length, func(s string) {
				res, _ := Clamp(s, bound)
				if len(res.Text) != length {
					t.Fatalf("%s: Clamp(%q) text %q has wrong length", bound, s, res.Text)
				}
				scale := uint64(pow10[n-length])
				lo := uint64(res.Value) * scale
				hi := lo + scale - 1
				if hi < uint64(bound.Min()) || lo > uint64(bound.Max()) {
					t.Fatalf("%s: prefix %q has no completion in range", bound, res.Text)
				}
			})
		}
	}
}

func TestPropertyPrefixStable(t *testing.T) {
	t.Parallel()

	for _, bound := range propertyBounds {
		n := bound.DigitCount()
		eachInput(n, func(s string) {
			full := Trace(s, bound)
			for k := 1; k < n; k++ {
				prefix, _ := Clamp(s[:k], bound)
				for i := 0; i < k; i++ {
					if prefix.Text[i] != full[i].Output {
						t.Fatalf("%s: digit %d of %q changed from %q to %q after appending",
							bound, i, s, prefix.Text[i], full[i].Output)
					}
				}
			}
		})
	}
}
