package charutil

// utf8Scanner is the decode state machine shared by IsUTF8Valid and
// ConvertUTF8ToUTF16. It tracks how many continuation bytes are still
// expected and accumulates the partial code point. The two callers must
// reject exactly the same inputs, so all rejection logic lives here.
type utf8Scanner struct {
	remaining int    // continuation bytes still expected
	accum     uint32 // code point bits collected so far
}

// step consumes one byte. done reports that a complete code point was
// assembled, with its value in cp. ok is false when the byte makes the
// sequence malformed; the scanner must not be used after that.
func (s *utf8Scanner) step(octet byte) (cp uint32, done, ok bool) {
	// 0xC0 and 0xC1 can only begin overlong encodings of ASCII, and leads
	// of 0xF5 or above would decode beyond U+10FFFF. Neither value is
	// valid anywhere in a UTF-8 stream.
	if octet == 0xC0 || octet == 0xC1 || octet >= 0xF5 {
		return 0, false, false
	}

	if s.remaining > 0 {
		// Expecting a 10xxxxxx continuation byte.
		if octet&0xC0 != 0x80 {
			return 0, false, false
		}
		s.accum = s.accum<<6 | uint32(octet&0x3F)
		s.remaining--
		if s.remaining > 0 {
			return 0, false, true
		}
		if s.accum > MaxCodepoint {
			return 0, false, false
		}
		if s.accum >= HighSurrogateMin && s.accum <= LowSurrogateMax {
			return 0, false, false
		}
		return s.accum, true, true
	}

	switch {
	case octet <= 0x7F:
		// Complete one-byte code point.
		return uint32(octet), true, true
	case octet&0xE0 == 0xC0:
		// 110xxxxx starts a two-byte sequence.
		s.accum = uint32(octet & 0x1F)
		s.remaining = 1
	case octet&0xF0 == 0xE0:
		// 1110xxxx starts a three-byte sequence.
		s.accum = uint32(octet & 0x0F)
		s.remaining = 2
	case octet&0xF8 == 0xF0:
		// 11110xxx starts a four-byte sequence.
		s.accum = uint32(octet & 0x07)
		s.remaining = 3
	default:
		// A continuation byte with no lead, or any other bit pattern.
		return 0, false, false
	}
	return 0, false, true
}

// incomplete reports whether the scanner is mid-sequence. A stream that
// ends while incomplete is malformed; there is no accepting state with
// continuation bytes outstanding.
func (s *utf8Scanner) incomplete() bool {
	return s.remaining > 0
}
