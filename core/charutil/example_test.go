package charutil_test

import (
	"fmt"

	"github.com/calyptra/charconv/core/charutil"
)

// Example demonstrates UTF-8 validation
func ExampleIsUTF8Valid() {
	fmt.Println(charutil.IsUTF8Valid([]byte("Hello, 世界")))
	fmt.Println(charutil.IsUTF8Valid([]byte{0xC0, 0xAF}))

	// Output:
	// true
	// false
}

// Example demonstrates conversion to UTF-16 in both byte orders
func ExampleConvertUTF8ToUTF16() {
	in := []byte("Hi")
	out := make([]byte, len(in)*2)

	ok, n := charutil.ConvertUTF8ToUTF16(in, out, true)
	fmt.Printf("LE: %v % X\n", ok, out[:n])

	ok, n = charutil.ConvertUTF8ToUTF16(in, out, false)
	fmt.Printf("BE: %v % X\n", ok, out[:n])

	// Output:
	// LE: true 48 00 69 00
	// BE: true 00 48 00 69
}

// Example demonstrates BOM-driven byte order detection on decode
func ExampleConvertUTF16ToUTF8() {
	// Big-endian BOM followed by big-endian "Hi"; the little-endian
	// argument is overridden and the BOM is preserved as EF BB BF.
	in := []byte{0xFE, 0xFF, 0x00, 0x48, 0x00, 0x69}
	out := make([]byte, len(in)+len(in)/2)

	ok, n := charutil.ConvertUTF16ToUTF8(in, out, true)
	fmt.Printf("%v % X\n", ok, out[:n])

	// Output:
	// true EF BB BF 48 69
}

// Example demonstrates the allocating convenience wrappers
func ExampleUTF16ToUTF8() {
	utf16, err := charutil.UTF8ToUTF16([]byte("\U0001F600"), true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("UTF-16LE: % X\n", utf16)

	utf8, err := charutil.UTF16ToUTF8(utf16, true)
	if err != nil {
		panic(err)
	}
	fmt.Printf("UTF-8:    % X\n", utf8)

	// Output:
	// UTF-16LE: 3D D8 00 DE
	// UTF-8:    F0 9F 98 80
}
