package transcode

import (
	"unicode/utf16"
	"unicode/utf8"
)

const (
	utf8RuneError = utf8.RuneError
	maxUCS2       = 0xFFFF
)

func (s UTF32) String() string {
	return string(s)
}

// UTF8 encodes each code point. Surrogates and values above U+10FFFF
// are written as U+FFFD.
func (s UTF32) UTF8() UTF8 {
	out := make(UTF8, 0, len(s))
	for _, r := range s {
		out = utf8.AppendRune(out, r)
	}
	return out
}

func (s UTF32) UTF16() UTF16 {
	return UTF16(utf16.Encode(s))
}

func (s UTF32) Wide() Wide {
	return s.UTF16().Wide()
}

// UCS2 fails with ErrNotRepresentable on the first code point above
// U+FFFF. No partial result is returned.
func (s UTF32) UCS2() (UCS2, error) {
	out := make(UCS2, len(s))
	for i, r := range s {
		if r < 0 || r > maxUCS2 {
			return nil, ErrNotRepresentable{Format: formatUCS2, Index: i, CodePoint: r}
		}
		out[i] = uint16(r)
	}
	return out, nil
}

// Validate rejects surrogate code points and values outside the
// Unicode range
func (s UTF32) Validate() error {
	for i, r := range s {
		if !utf8.ValidRune(r) {
			return ErrInvalidUnit{Format: formatUTF32, Index: i, Unit: uint32(r)}
		}
	}
	return nil
}

func (s UTF32) Valid() bool {
	return s.Validate() == nil
}
