package clamp

import (
	"fmt"
	"strconv"
)

// maxDigits is the digit count of math.MaxUint32.
const maxDigits = 10

var pow10 = [maxDigits]uint32{
	1, 10, 100, 1_000, 10_000, 100_000,
	1_000_000, 10_000_000, 100_000_000, 1_000_000_000,
}

// Bound is an inclusive range whose endpoints share a digit count. The zero
// value is the single-digit range [0, 0].
type Bound struct {
	min    uint32
	max    uint32
	digits int
}

// NewBound validates the endpoints and derives the digit count once.
func NewBound(min, max uint32) (Bound, error) {
	if min > max {
		return Bound{}, fmt.Errorf("%w: min %d greater than max %d", ErrPreconditionViolated, min, max)
	}
	lo, hi := DigitCount(min), DigitCount(max)
	if lo != hi {
		return Bound{}, fmt.Errorf("%w: min %d has %d digits, max %d has %d", ErrPreconditionViolated, min, lo, max, hi)
	}
	return Bound{min: min, max: max, digits: hi}, nil
}

// MustBound is NewBound for statically known ranges. It panics on error.
func MustBound(min, max uint32) Bound {
	b, err := NewBound(min, max)
	if err != nil {
		panic(err)
	}
	return b
}

// Min returns the lower endpoint.
func (b Bound) Min() uint32 { return b.min }

// Max returns the upper endpoint.
func (b Bound) Max() uint32 { return b.max }

// DigitCount returns the number of decimal digits shared by both endpoints.
func (b Bound) DigitCount() int {
	if b.digits == 0 {
		return 1
	}
	return b.digits
}

// Contains reports whether v lies inside the bound.
func (b Bound) Contains(v uint32) bool {
	return v >= b.min && v <= b.max
}

func (b Bound) String() string {
	return "[" + strconv.FormatUint(uint64(b.min), 10) + ", " + strconv.FormatUint(uint64(b.max), 10) + "]"
}

// DigitCount returns floor(log10(v)) + 1, with 0 counted as one digit.
func DigitCount(v uint32) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// digitOf returns the digit of value at position, 0 being the most
// significant of digitCount digits.
func digitOf(value uint32, position, digitCount int) uint32 {
	if position < 0 || position >= digitCount {
		panic(fmt.Sprintf("clamp: digit position %d outside [0, %d)", position, digitCount))
	}
	return (value / pow10[digitCount-1-position]) % 10
}
