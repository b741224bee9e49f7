package clamp

import (
	"errors"
	"testing"
)

func TestNewBound(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		min     uint32
		max     uint32
		digits  int
		wantErr bool
	}{
		{name: "year range", min: 1900, max: 2300, digits: 4},
		{name: "single value", min: 5, max: 5, digits: 1},
		{name: "zero to nine", min: 0, max: 9, digits: 1},
		{name: "uint32 ceiling", min: 4_000_000_000, max: 4_294_967_295, digits: 10},
		{name: "inverted", min: 2300, max: 1900, wantErr: true},
		{name: "digit mismatch", min: 99, max: 100, wantErr: true},
		{name: "zero against two digits", min: 0, max: 10, wantErr: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			b, err := NewBound(tc.min, tc.max)
			if tc.wantErr {
				if !errors.Is(err, ErrPreconditionViolated) {
					t.Fatalf("expected ErrPreconditionViolated, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("new bound: %v", err)
			}
			if b.DigitCount() != tc.digits {
				t.Fatalf("digit count = %d, want %d", b.DigitCount(), tc.digits)
			}
			if b.Min() != tc.min || b.Max() != tc.max {
				t.Fatalf("endpoints = %s, want [%d, %d]", b, tc.min, tc.max)
			}
		})
	}
}

func TestMustBoundPanicsOnInvalidRange(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPreconditionViolated) {
			t.Fatalf("expected precondition panic, got %v", r)
		}
	}()
	MustBound(10, 9)
}

func TestDigitCount(t *testing.T) {
	t.Parallel()

	cases := map[uint32]int{
		0:             1,
		9:             1,
		10:            2,
		1900:          4,
		999_999:       6,
		1_000_000_000: 10,
		4_294_967_295: 10,
	}
	for value, want := range cases {
		if got := DigitCount(value); got != want {
			t.Fatalf("DigitCount(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestDigitOf(t *testing.T) {
	t.Parallel()

	var got []uint32
	for i := 0; i < 4; i++ {
		got = append(got, digitOf(2305, i, 4))
	}
	want := []uint32{2, 3, 0, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("digitOf(2305, %d) = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestDigitOfPanicsOutsideRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for position outside the digit count")
		}
	}()
	digitOf(2305, 4, 4)
}

func TestZeroBound(t *testing.T) {
	t.Parallel()

	var b Bound
	if b.DigitCount() != 1 {
		t.Fatalf("zero bound digit count = %d, want 1", b.DigitCount())
	}
	res, ok := b.Clamp("7")
	if !ok || res.Text != "0" || res.Value != 0 {
		t.Fatalf("zero bound clamp = %+v (ok=%v), want 0", res, ok)
	}
}
