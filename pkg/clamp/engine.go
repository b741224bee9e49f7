package clamp

// State is the position of the digit-wise state machine after a digit has
// been consumed.
type State uint8

const (
	// TrackingBoth means every digit so far equals both endpoints' digits.
	TrackingBoth State = iota
	// TrackingBottom means the prefix matches min and is already below max.
	TrackingBottom
	// TrackingTop means the prefix matches max and is already above min.
	TrackingTop
	// BreachedBottom freezes the remaining digits to min's digits.
	BreachedBottom
	// BreachedTop freezes the remaining digits to max's digits.
	BreachedTop
	// Free means the prefix is strictly inside the bound; input passes through.
	Free
)

func (s State) String() string {
	switch s {
	case TrackingBoth:
		return "tracking-both"
	case TrackingBottom:
		return "tracking-bottom"
	case TrackingTop:
		return "tracking-top"
	case BreachedBottom:
		return "breached-bottom"
	case BreachedTop:
		return "breached-top"
	case Free:
		return "free"
	default:
		return "unknown"
	}
}

// Breached reports whether the remaining digits are frozen to an endpoint.
func (s State) Breached() bool {
	return s == BreachedBottom || s == BreachedTop
}

// Step records one consumed position, used by Trace.
type Step struct {
	Position int
	Input    byte
	Output   byte
	State    State
}

// Clamp constrains input to bound. It consumes at most bound.DigitCount()
// digits and drops the rest; shorter input yields a prefix that still has a
// completion inside the bound. ok is false for empty input.
//
// Clamp panics with *InvalidCharacterError when a consumed position holds a
// non-digit byte.
func Clamp(input string, bound Bound) (Result, bool) {
	return bound.Clamp(input)
}

// Clamp is the method form of the package-level Clamp.
func (b Bound) Clamp(input string) (Result, bool) {
	if input == "" {
		return Result{}, false
	}
	n := b.consumed(input)

	var (
		buf   [maxDigits]byte
		value uint32
		state = TrackingBoth
	)
	for i := 0; i < n; i++ {
		var out uint32
		out, state = b.step(state, input, i)
		buf[i] = byte('0' + out)
		value = value*10 + out
	}
	return Result{Value: value, Text: string(buf[:n])}, true
}

// Trace runs the same state machine as Clamp and reports every consumed
// position. It returns nil for empty input.
func Trace(input string, bound Bound) []Step {
	if input == "" {
		return nil
	}
	n := bound.consumed(input)
	steps := make([]Step, 0, n)
	state := TrackingBoth
	for i := 0; i < n; i++ {
		var out uint32
		out, state = bound.step(state, input, i)
		steps = append(steps, Step{
			Position: i,
			Input:    input[i],
			Output:   byte('0' + out),
			State:    state,
		})
	}
	return steps
}

func (b Bound) consumed(input string) int {
	n := b.DigitCount()
	if len(input) < n {
		n = len(input)
	}
	return n
}

// step applies the transition table at position i and returns the emitted
// digit with the next state.
func (b Bound) step(state State, input string, i int) (uint32, State) {
	ch := input[i]
	if ch < '0' || ch > '9' {
		panic(&InvalidCharacterError{Input: input, Position: i, Char: ch})
	}
	c := uint32(ch - '0')
	digits := b.DigitCount()
	bottom := digitOf(b.min, i, digits)
	top := digitOf(b.max, i, digits)

	switch state {
	case TrackingBoth:
		switch {
		case c == bottom && c == top:
			return c, TrackingBoth
		case c > bottom && c < top:
			return c, Free
		case c < bottom:
			return bottom, BreachedBottom
		case c > top:
			return top, BreachedTop
		case c == top:
			return c, TrackingTop
		default:
			return c, TrackingBottom
		}
	case TrackingBottom:
		switch {
		case c == bottom:
			return c, TrackingBottom
		case c < bottom:
			return bottom, BreachedBottom
		default:
			return c, Free
		}
	case TrackingTop:
		switch {
		case c == top:
			return c, TrackingTop
		case c > top:
			return top, BreachedTop
		default:
			return c, Free
		}
	case BreachedBottom:
		return bottom, BreachedBottom
	case BreachedTop:
		return top, BreachedTop
	default:
		return c, Free
	}
}
