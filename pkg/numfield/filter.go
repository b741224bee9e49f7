package numfield

// Filter drops every byte that is not an ASCII digit and maps cursor, a byte
// offset into raw, to the matching offset in the filtered string. The cursor
// is clamped to [0, len(raw)] first.
func Filter(raw string, cursor int) (string, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(raw) {
		cursor = len(raw)
	}

	clean := true
	for i := 0; i < len(raw); i++ {
		if !isDigit(raw[i]) {
			clean = false
			break
		}
	}
	if clean {
		return raw, cursor
	}

	out := make([]byte, 0, len(raw))
	pos := 0
	for i := 0; i < len(raw); i++ {
		if !isDigit(raw[i]) {
			continue
		}
		if i < cursor {
			pos++
		}
		out = append(out, raw[i])
	}
	return string(out), pos
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
