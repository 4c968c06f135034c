package charutil

// IsUTF8Valid reports whether octets is a well-formed UTF-8 sequence per
// RFC 3629. An empty sequence is valid.
//
// Well-formedness here is purely structural: overlong encodings, leads
// beyond 0xF4, bad continuation bytes, code points above U+10FFFF or in
// the surrogate range, and truncated multi-byte sequences are all
// rejected. No attempt is made to judge whether the code points form a
// meaningful rendered character (a ZWJ emoji sequence is fine).
func IsUTF8Valid(octets []byte) bool {
	var s utf8Scanner
	for _, octet := range octets {
		if _, _, ok := s.step(octet); !ok {
			return false
		}
	}
	return !s.incomplete()
}
