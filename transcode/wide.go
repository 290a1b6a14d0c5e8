package transcode

func (s Wide) UTF8() UTF8 {
	return s.UTF16().UTF8()
}

// UTF16 narrows each unit to 16 bits. On platforms where wchar_t is
// 32 bits wide the units are still UTF-16, so nothing is lost for
// well-formed input.
func (s Wide) UTF16() UTF16 {
	out := make(UTF16, len(s))
	for i, c := range s {
		out[i] = uint16(c)
	}
	return out
}

func (s Wide) UTF32() UTF32 {
	return s.UTF16().UTF32()
}

func (s Wide) UCS2() (UCS2, error) {
	return s.UTF16().UCS2()
}

// Validate rejects units that do not fit in 16 bits as well as
// unpaired surrogates
func (s Wide) Validate() error {
	for i, c := range s {
		if uint32(c) > 0xFFFF {
			return ErrInvalidUnit{Format: formatUTF16, Index: i, Unit: uint32(c)}
		}
	}
	return s.UTF16().Validate()
}

func (s Wide) Valid() bool {
	return s.Validate() == nil
}
