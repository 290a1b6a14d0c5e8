package transcode

import (
	"unicode/utf16"
)

func (s UTF16) String() string {
	return string(utf16.Decode(s))
}

func (s UTF16) UTF8() UTF8 {
	return s.UTF32().UTF8()
}

func (s UTF16) Wide() Wide {
	out := make(Wide, len(s))
	for i, u := range s {
		out[i] = WChar(u)
	}
	return out
}

// UTF32 combines surrogate pairs into single code points. Unpaired
// surrogates become U+FFFD.
func (s UTF16) UTF32() UTF32 {
	return UTF32(utf16.Decode(s))
}

// UCS2 fails with ErrNotRepresentable if s contains a surrogate pair
func (s UTF16) UCS2() (UCS2, error) {
	return s.UTF32().UCS2()
}

func (s UTF16) Validate() error {
	if i := invalidUTF16(s); i >= 0 {
		return ErrInvalidUnit{Format: formatUTF16, Index: i, Unit: uint32(s[i])}
	}
	return nil
}

func (s UTF16) Valid() bool {
	return invalidUTF16(s) < 0
}

// invalidUTF16 returns the index of the first unpaired surrogate, or -1
func invalidUTF16(s []uint16) int {
	for i := 0; i < len(s); i++ {
		r1 := rune(s[i])
		if !utf16.IsSurrogate(r1) {
			continue
		}
		if i+1 < len(s) {
			if utf16.DecodeRune(r1, rune(s[i+1])) != utf8RuneError {
				i++
				continue
			}
		}
		return i
	}
	return -1
}
