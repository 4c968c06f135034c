package charutil

import "encoding/binary"

// codeUnit extracts one UTF-16 code unit from buf in the given order.
func codeUnit(buf []byte, littleEndian bool) uint16 {
	if littleEndian {
		return binary.LittleEndian.Uint16(buf)
	}
	return binary.BigEndian.Uint16(buf)
}

// ConvertUTF16ToUTF8 converts a UTF-16 byte sequence to UTF-8, writing
// into out. The input length must be even and no greater than
// MaxUTF16Input; out must hold at least len(in) + len(in)/2 bytes.
// BMP characters from U+0800 up take two input octets and three output
// octets, which is the worst-case 1.5x expansion (surrogate pairs are
// four octets on both sides).
//
// If the input starts with a byte order mark and carries at least one
// code unit after it, the BOM's byte order overrides littleEndian for
// the whole stream. The BOM is not stripped: its code point is decoded
// and re-encoded into the output as 0xEF 0xBB 0xBF like any other
// character.
//
// Surrogate pairs are composed into supplementary-plane code points. A
// lone low surrogate, a high surrogate at end of input, or a high
// surrogate followed by anything but a low surrogate is a failure.
//
// On success it returns true and the number of UTF-8 bytes written. On
// any failure it returns (false, 0) and the contents of out are
// unspecified.
func ConvertUTF16ToUTF8(in, out []byte, littleEndian bool) (bool, int) {
	if len(in) == 0 {
		return true, 0
	}
	if len(in)&1 != 0 {
		return false, 0
	}
	if len(in) > MaxUTF16Input {
		return false, 0
	}
	if len(out) < len(in)+len(in)/2 {
		return false, 0
	}

	if e, ok := DetectBOM(in); ok {
		littleEndian = e == LittleEndian
	}

	n := 0
	for i := 0; i < len(in); i += 2 {
		cp := uint32(codeUnit(in[i:], littleEndian))

		if cp >= HighSurrogateMin && cp <= LowSurrogateMax {
			if cp >= LowSurrogateMin {
				// A low surrogate with no preceding high surrogate.
				return false, 0
			}
			i += 2
			if i >= len(in) {
				return false, 0
			}
			low := uint32(codeUnit(in[i:], littleEndian))
			if low < LowSurrogateMin || low > LowSurrogateMax {
				return false, 0
			}
			cp = SupplementaryBase + (cp-HighSurrogateMin)<<10 + (low - LowSurrogateMin)
		}

		switch {
		case cp <= 0x7F:
			out[n] = byte(cp)
			n++
		case cp <= 0x7FF:
			out[n] = 0xC0 | byte(cp>>6)
			out[n+1] = 0x80 | byte(cp&0x3F)
			n += 2
		case cp <= MaxBMP:
			out[n] = 0xE0 | byte(cp>>12)
			out[n+1] = 0x80 | byte(cp>>6&0x3F)
			out[n+2] = 0x80 | byte(cp&0x3F)
			n += 3
		case cp <= MaxCodepoint:
			out[n] = 0xF0 | byte(cp>>18)
			out[n+1] = 0x80 | byte(cp>>12&0x3F)
			out[n+2] = 0x80 | byte(cp>>6&0x3F)
			out[n+3] = 0x80 | byte(cp&0x3F)
			n += 4
		default:
			// Unreachable given the decode rules above.
			return false, 0
		}
	}

	return true, n
}
