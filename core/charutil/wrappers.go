package charutil

import (
	apperrors "github.com/calyptra/charconv/core/errors"
)

// The convenience layer allocates correctly-sized buffers, runs the core
// conversion, and maps the boolean failure contract onto the error
// taxonomy in core/errors. The core operations themselves never allocate
// and never return errors.

// UTF8ToUTF16 converts a UTF-8 byte sequence to freshly allocated UTF-16
// bytes in the requested byte order.
func UTF8ToUTF16(in []byte, littleEndian bool) ([]byte, error) {
	out := make([]byte, len(in)*2)
	ok, n := ConvertUTF8ToUTF16(in, out, littleEndian)
	if !ok {
		return nil, apperrors.NewMalformed("UTF-8", "input rejected during conversion")
	}
	return out[:n:n], nil
}

// UTF16ToUTF8 converts a UTF-16 byte sequence to freshly allocated UTF-8
// bytes. littleEndian applies when the input carries no leading BOM.
func UTF16ToUTF8(in []byte, littleEndian bool) ([]byte, error) {
	if len(in)&1 != 0 {
		return nil, apperrors.ErrOddLength
	}
	if len(in) > MaxUTF16Input {
		return nil, apperrors.ErrInputTooLarge
	}
	out := make([]byte, len(in)+len(in)/2)
	ok, n := ConvertUTF16ToUTF8(in, out, littleEndian)
	if !ok {
		enc := "UTF-16LE"
		if e, bom := DetectBOM(in); (bom && e == BigEndian) || (!bom && !littleEndian) {
			enc = "UTF-16BE"
		}
		return nil, apperrors.NewMalformed(enc, "input rejected during conversion")
	}
	return out[:n:n], nil
}

// UTF8ToUTF16Into converts into a caller-supplied buffer like
// ConvertUTF8ToUTF16, but reports failures as typed errors instead of a
// boolean. out must hold at least 2*len(in) bytes.
func UTF8ToUTF16Into(in, out []byte, littleEndian bool) (int, error) {
	if need := len(in) * 2; len(out) < need {
		return 0, apperrors.NewBufferSize(need, len(out))
	}
	ok, n := ConvertUTF8ToUTF16(in, out, littleEndian)
	if !ok {
		return 0, apperrors.NewMalformed("UTF-8", "input rejected during conversion")
	}
	return n, nil
}

// UTF16ToUTF8Into converts into a caller-supplied buffer like
// ConvertUTF16ToUTF8, but reports failures as typed errors instead of a
// boolean. out must hold at least len(in) + len(in)/2 bytes.
func UTF16ToUTF8Into(in, out []byte, littleEndian bool) (int, error) {
	if len(in)&1 != 0 {
		return 0, apperrors.ErrOddLength
	}
	if len(in) > MaxUTF16Input {
		return 0, apperrors.ErrInputTooLarge
	}
	if need := len(in) + len(in)/2; len(out) < need {
		return 0, apperrors.NewBufferSize(need, len(out))
	}
	ok, n := ConvertUTF16ToUTF8(in, out, littleEndian)
	if !ok {
		return 0, apperrors.NewMalformed("UTF-16", "input rejected during conversion")
	}
	return n, nil
}

// ValidString reports whether s is well-formed UTF-8. Go string values
// are not guaranteed to be valid UTF-8, so this is IsUTF8Valid sugar for
// string-typed inputs.
func ValidString(s string) bool {
	return IsUTF8Valid([]byte(s))
}
