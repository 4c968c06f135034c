package charutil

import "encoding/binary"

// putCodeUnit serializes one UTF-16 code unit into buf in the given order.
func putCodeUnit(buf []byte, u uint16, littleEndian bool) {
	if littleEndian {
		binary.LittleEndian.PutUint16(buf, u)
	} else {
		binary.BigEndian.PutUint16(buf, u)
	}
}

// ConvertUTF8ToUTF16 converts a UTF-8 byte sequence to UTF-16 code units
// serialized into out in the requested byte order. out must hold at least
// 2*len(in) bytes; the worst case is all-ASCII input where every byte
// becomes a two-byte code unit.
//
// The decode half applies the same rejection rules as IsUTF8Valid, so the
// conversion succeeds exactly when IsUTF8Valid accepts the input. Code
// points above the BMP are emitted as surrogate pairs. A U+FEFF anywhere
// in the input, including position 0, is an ordinary character on this
// direction of conversion and is re-encoded normally, never interpreted
// as a BOM.
//
// On success it returns true and the number of bytes written (always
// even). On any failure it returns (false, 0) and the contents of out are
// unspecified.
func ConvertUTF8ToUTF16(in, out []byte, littleEndian bool) (bool, int) {
	if len(in) == 0 {
		return true, 0
	}
	if len(out) < len(in)*2 {
		return false, 0
	}

	var s utf8Scanner
	n := 0
	for _, octet := range in {
		cp, done, ok := s.step(octet)
		if !ok {
			return false, 0
		}
		if !done {
			continue
		}

		if cp <= MaxBMP {
			putCodeUnit(out[n:], uint16(cp), littleEndian)
			n += 2
			continue
		}

		// Supplementary plane: split into a surrogate pair.
		cp -= SupplementaryBase
		high := uint16(HighSurrogateMin + (cp >> 10))
		low := uint16(LowSurrogateMin + (cp & 0x3FF))
		putCodeUnit(out[n:], high, littleEndian)
		putCodeUnit(out[n+2:], low, littleEndian)
		n += 4
	}

	// A truncated multi-byte sequence at end of input.
	if s.incomplete() {
		return false, 0
	}
	return true, n
}
