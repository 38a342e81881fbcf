package png

import (
	"fmt"
	"unicode/utf8"
)

// TypeCode is a four-byte chunk type code. Codes compare byte-wise; the
// value is immutable once constructed.
//
// Case of each letter encodes a semantic property in bit 5 (0x20), the bit
// that separates upper and lower case in ASCII:
//
//	Byte  Bit clear (uppercase)    Bit set (lowercase)
//	0     critical                 ancillary
//	1     public                   private
//	2     reserved bit valid       reserved bit invalid
//	3     unsafe to copy           safe to copy
type TypeCode [4]byte

const propertyBit = 0x20

// TypeCodeFromBytes builds a code from raw bytes. Any byte values are
// representable; IsValid reports whether the result is a legal code.
func TypeCodeFromBytes(b [4]byte) TypeCode {
	return TypeCode(b)
}

// ParseTypeCode builds a code from text. The string must be exactly four
// ASCII alphabetic characters; anything else wraps ErrInvalidTypeCode.
func ParseTypeCode(s string) (TypeCode, error) {
	if len(s) != 4 {
		return TypeCode{}, fmt.Errorf("type code %q: got %d characters, want 4: %w", s, len(s), ErrInvalidTypeCode)
	}
	var tc TypeCode
	for i := 0; i < 4; i++ {
		if !isAlpha(s[i]) {
			return TypeCode{}, fmt.Errorf("type code %q: character %d is not alphabetic: %w", s, i, ErrInvalidTypeCode)
		}
		tc[i] = s[i]
	}
	return tc, nil
}

// Bytes returns the raw four-byte view of the code.
func (tc TypeCode) Bytes() [4]byte {
	return tc
}

// Text renders the code as a string, wrapping ErrTypeNotText when the raw
// bytes are not valid text. Only codes built from non-alphabetic raw bytes
// can fail here.
func (tc TypeCode) Text() (string, error) {
	if !utf8.Valid(tc[:]) {
		return "", fmt.Errorf("type code % x: %w", tc[:], ErrTypeNotText)
	}
	return string(tc[:]), nil
}

// String renders the code as text, falling back to hex for non-textual
// codes. Use Text when the failure must be observable.
func (tc TypeCode) String() string {
	if s, err := tc.Text(); err == nil {
		return s
	}
	return fmt.Sprintf("0x%02x%02x%02x%02x", tc[0], tc[1], tc[2], tc[3])
}

// IsCritical reports whether the chunk is required to render the image.
func (tc TypeCode) IsCritical() bool {
	return tc[0]&propertyBit == 0
}

// IsPublic reports whether the code belongs to the public registry.
func (tc TypeCode) IsPublic() bool {
	return tc[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved property bit is in its
// required state. Equivalently, the third character is uppercase.
func (tc TypeCode) IsReservedBitValid() bool {
	return tc[2]&propertyBit == 0
}

// IsSafeToCopy reports whether editors that do not recognize the chunk may
// carry it over unchanged.
func (tc TypeCode) IsSafeToCopy() bool {
	return tc[3]&propertyBit != 0
}

// IsValid reports whether the code is legal: four alphabetic bytes with the
// reserved bit in its valid state.
func (tc TypeCode) IsValid() bool {
	for _, c := range tc {
		if !isAlpha(c) {
			return false
		}
	}
	return tc.IsReservedBitValid()
}

func isAlpha(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
