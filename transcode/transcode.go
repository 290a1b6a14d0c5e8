// Package transcode converts text between UTF-8, UTF-16, UTF-32 and UCS-2
// code unit sequences.
//
// Each format has its own slice type, so a UTF-16 sequence can never be
// mistaken for UCS-2 (or the other way around) without an explicit
// conversion. Every type has a method for each of the other formats.
// Conversions never modify their receiver and always return a freshly
// allocated sequence.
//
// Input is not validated unless you ask for it: invalid units decode to
// U+FFFD. Use the Validate methods when you need to reject malformed input.
package transcode

import (
	"errors"
	"fmt"
)

// UTF8 is a sequence of UTF-8 code units
type UTF8 []byte

// UTF16 is a sequence of UTF-16 code units. Code points above U+FFFF are
// stored as surrogate pairs.
type UTF16 []uint16

// UTF32 is a sequence of code points. This is the canonical form that
// the BOM detector produces.
type UTF32 []rune

// UCS2 is a sequence of UCS-2 code units. UCS-2 predates UTF-16 and
// has no surrogate pairs, so it cannot hold anything above U+FFFF.
type UCS2 []uint16

// Wide is a sequence of UTF-16 code units stored in the platform's
// wchar_t width (see WChar).
type Wide []WChar

// Sequence lists the code unit sequence types that the generic
// conversion functions accept.
type Sequence interface {
	UTF8 | UTF16 | Wide | UTF32 | UCS2
}

// ErrUnsupportedWidth is the panic value used when a generic conversion
// receives a type it does not know about. The Sequence constraint makes
// this unreachable for code that compiles.
var ErrUnsupportedWidth = errors.New("unsupported code unit width")

// ErrNotRepresentable is returned when a code point cannot be stored in
// the target format (e.g. U+1F600 in UCS-2)
type ErrNotRepresentable struct {
	Format    string
	Index     int
	CodePoint rune
}

func (e ErrNotRepresentable) Error() string {
	return fmt.Sprintf("code point %U at index %d cannot be represented in %s", e.CodePoint, e.Index, e.Format)
}

// ErrInvalidUnit is returned by the Validate methods, and points to the
// first code unit that is not part of a well-formed sequence.
type ErrInvalidUnit struct {
	Format string
	Index  int
	Unit   uint32
}

func (e ErrInvalidUnit) Error() string {
	return fmt.Sprintf("invalid %s code unit %#x at index %d", e.Format, e.Unit, e.Index)
}

const (
	formatUTF8  = "UTF-8"
	formatUTF16 = "UTF-16"
	formatUTF32 = "UTF-32"
	formatUCS2  = "UCS-2"
)
