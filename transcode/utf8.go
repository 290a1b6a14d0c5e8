package transcode

import (
	"unicode/utf16"
	"unicode/utf8"
)

func (s UTF8) String() string {
	return string(s)
}

func (s UTF8) UTF16() UTF16 {
	out := make(UTF16, 0, len(s))
	for _, r := range string(s) {
		out = utf16.AppendRune(out, r)
	}
	return out
}

func (s UTF8) Wide() Wide {
	return s.UTF16().Wide()
}

func (s UTF8) UTF32() UTF32 {
	out := make(UTF32, 0, utf8.RuneCount(s))
	for _, r := range string(s) {
		out = append(out, r)
	}
	return out
}

// UCS2 fails with ErrNotRepresentable if s contains a code point
// above U+FFFF
func (s UTF8) UCS2() (UCS2, error) {
	return s.UTF32().UCS2()
}

// Validate reports the first byte that does not start a valid UTF-8
// encoding. Overlong forms and encoded surrogates are rejected.
func (s UTF8) Validate() error {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRune(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return ErrInvalidUnit{Format: formatUTF8, Index: i, Unit: uint32(s[i])}
		}
		i += size
	}
	return nil
}

func (s UTF8) Valid() bool {
	return utf8.Valid(s)
}
