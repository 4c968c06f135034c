// Package charutil converts byte sequences between the UTF-8 and UTF-16
// Unicode encodings and validates UTF-8 well-formedness per RFC 3629.
//
// The three core operations (IsUTF8Valid, ConvertUTF8ToUTF16 and
// ConvertUTF16ToUTF8) work on caller-owned, pre-sized buffers, never
// allocate, and report failure through a boolean rather than an error.
// Allocating convenience wrappers live in wrappers.go.
package charutil

import "math"

// Unicode range constants.
const (
	// MaxCodepoint is the largest valid Unicode code point (RFC 3629).
	MaxCodepoint = 0x10FFFF

	// MaxBMP is the largest code point in the Basic Multilingual Plane,
	// representable as a single UTF-16 code unit.
	MaxBMP = 0xFFFF

	// Surrogate code units pair up to encode code points above the BMP.
	// They are never valid as standalone code points.
	HighSurrogateMin = 0xD800
	HighSurrogateMax = 0xDBFF
	LowSurrogateMin  = 0xDC00
	LowSurrogateMax  = 0xDFFF

	// SupplementaryBase is the first code point encoded as a surrogate pair.
	SupplementaryBase = 0x10000
)

// BOM byte values for UTF-16 streams.
const (
	BOMHigh = 0xFE // high-order byte of U+FEFF
	BOMLow  = 0xFF // low-order byte of U+FEFF
)

// MaxUTF16Input is the largest UTF-16 input length, in bytes, accepted by
// ConvertUTF16ToUTF8. The bound keeps the 1.5x output-capacity computation
// n + n/2 from overflowing the int type.
const MaxUTF16Input = math.MaxInt / 3 * 2

// Endianness identifies the byte order of a UTF-16 byte stream.
type Endianness byte

const (
	// LittleEndian stores the low-order byte of each code unit first.
	LittleEndian Endianness = iota

	// BigEndian stores the high-order byte of each code unit first.
	BigEndian
)

// String returns the conventional name of the byte order.
func (e Endianness) String() string {
	if e == BigEndian {
		return "UTF-16BE"
	}
	return "UTF-16LE"
}

// DetectBOM reports the byte order implied by a byte order mark at the
// start of a UTF-16 stream. Following ConvertUTF16ToUTF8, a BOM is only
// recognized when at least four bytes are present (a BOM with no code
// units after it carries no usable text). When no BOM is found, ok is
// false and the caller's configured byte order should be used.
func DetectBOM(in []byte) (e Endianness, ok bool) {
	if len(in) < 4 {
		return LittleEndian, false
	}
	if in[0] == BOMHigh && in[1] == BOMLow {
		return BigEndian, true
	}
	if in[0] == BOMLow && in[1] == BOMHigh {
		return LittleEndian, true
	}
	return LittleEndian, false
}
