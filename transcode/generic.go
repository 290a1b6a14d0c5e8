package transcode

import (
	"fmt"
	"slices"
)

// Width returns the size in bits of a single code unit of S
func Width[S Sequence]() int {
	var zero S
	switch any(zero).(type) {
	case UTF8:
		return 8
	case UTF16, UCS2:
		return 16
	case Wide:
		return wcharBits
	case UTF32:
		return 32
	}
	panic(fmt.Errorf("%w: %T", ErrUnsupportedWidth, zero))
}

// ToUTF8 converts any supported sequence to UTF-8. A UTF8 input is
// copied.
func ToUTF8[S Sequence](s S) UTF8 {
	switch v := any(s).(type) {
	case UTF8:
		return slices.Clone(v)
	case UTF16:
		return v.UTF8()
	case Wide:
		return v.UTF8()
	case UTF32:
		return v.UTF8()
	case UCS2:
		return v.UTF8()
	}
	panic(fmt.Errorf("%w: %T", ErrUnsupportedWidth, s))
}

// FromUTF8 converts UTF-8 into the sequence type S. It only fails when
// S is UCS2 and s holds a code point above U+FFFF.
func FromUTF8[S Sequence](s UTF8) (S, error) {
	var out S
	var v any
	var err error
	switch any(out).(type) {
	case UTF8:
		v = slices.Clone(s)
	case UTF16:
		v = s.UTF16()
	case Wide:
		v = s.Wide()
	case UTF32:
		v = s.UTF32()
	case UCS2:
		v, err = s.UCS2()
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedWidth, out))
	}
	if err != nil {
		return out, err
	}
	return v.(S), nil
}

// ToUTF32 converts any supported sequence to the canonical form
func ToUTF32[S Sequence](s S) UTF32 {
	switch v := any(s).(type) {
	case UTF8:
		return v.UTF32()
	case UTF16:
		return v.UTF32()
	case Wide:
		return v.UTF32()
	case UTF32:
		return slices.Clone(v)
	case UCS2:
		return v.UTF32()
	}
	panic(fmt.Errorf("%w: %T", ErrUnsupportedWidth, s))
}

// FromUTF32 converts the canonical form into the sequence type S
func FromUTF32[S Sequence](s UTF32) (S, error) {
	var out S
	var v any
	var err error
	switch any(out).(type) {
	case UTF8:
		v = s.UTF8()
	case UTF16:
		v = s.UTF16()
	case Wide:
		v = s.Wide()
	case UTF32:
		v = slices.Clone(s)
	case UCS2:
		v, err = s.UCS2()
	default:
		panic(fmt.Errorf("%w: %T", ErrUnsupportedWidth, out))
	}
	if err != nil {
		return out, err
	}
	return v.(S), nil
}
