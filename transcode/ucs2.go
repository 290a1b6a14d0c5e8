package transcode

import "unicode/utf16"

// UTF8 encodes each unit as its own code point. Surrogate values are
// not valid UCS-2 and come out as U+FFFD.
func (s UCS2) UTF8() UTF8 {
	return s.UTF32().UTF8()
}

// UTF16 copies s. Surrogate values are not valid UCS-2 and come out as
// U+FFFD, so two of them never turn into a pair.
func (s UCS2) UTF16() UTF16 {
	out := make(UTF16, len(s))
	for i, u := range s {
		out[i] = ucs2Unit(u)
	}
	return out
}

func (s UCS2) Wide() Wide {
	return s.UTF16().Wide()
}

// UTF32 widens each unit. Surrogates come out as U+FFFD.
func (s UCS2) UTF32() UTF32 {
	out := make(UTF32, len(s))
	for i, u := range s {
		out[i] = rune(ucs2Unit(u))
	}
	return out
}

func ucs2Unit(u uint16) uint16 {
	if utf16.IsSurrogate(rune(u)) {
		return utf8RuneError
	}
	return u
}

func (s UCS2) Validate() error {
	for i, u := range s {
		if utf16.IsSurrogate(rune(u)) {
			return ErrInvalidUnit{Format: formatUCS2, Index: i, Unit: uint32(u)}
		}
	}
	return nil
}

func (s UCS2) Valid() bool {
	return s.Validate() == nil
}
