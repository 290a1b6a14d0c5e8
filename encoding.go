package unibom

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Encoding identifies the format of a byte buffer, as far as its byte
// order mark can tell. The values are ordered by BOM table priority.
type Encoding int

const (
	UTF32BE Encoding = iota
	UTF32LE
	UTF16BE
	UTF16LE
	UTF8
	// ASCII is what you get when there is no byte order mark. It is
	// decoded as UTF-8.
	ASCII
)

func (e Encoding) String() string {
	switch e {
	case UTF32BE:
		return "utf32-be"
	case UTF32LE:
		return "utf32-le"
	case UTF16BE:
		return "utf16-be"
	case UTF16LE:
		return "utf16-le"
	case UTF8:
		return "utf8"
	case ASCII:
		return "ascii"
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// UnitWidth returns the size of a code unit in bytes, or 0 for
// unknown values
func (e Encoding) UnitWidth() int {
	switch e {
	case UTF32BE, UTF32LE:
		return 4
	case UTF16BE, UTF16LE:
		return 2
	case UTF8, ASCII:
		return 1
	}
	return 0
}

// ByteOrder returns the byte order of multi-byte code units. It is
// nil for the byte oriented encodings.
func (e Encoding) ByteOrder() binary.ByteOrder {
	switch e {
	case UTF32BE, UTF16BE:
		return binary.BigEndian
	case UTF32LE, UTF16LE:
		return binary.LittleEndian
	}
	return nil
}

func (e Encoding) valid() bool {
	return e >= UTF32BE && e <= ASCII
}

// LookupEncoding parses the name of an Encoding. It accepts the String()
// form as well as the usual spellings such as "UTF-16LE".
func LookupEncoding(name string) (Encoding, error) {
	switch strings.ToLower(name) {
	case "utf32-be", "utf32be", "utf-32be", "ucs4be":
		return UTF32BE, nil
	case "utf32-le", "utf32le", "utf-32le", "ucs4le":
		return UTF32LE, nil
	case "utf16-be", "utf16be", "utf-16be":
		return UTF16BE, nil
	case "utf16-le", "utf16le", "utf-16le":
		return UTF16LE, nil
	case "utf8", "utf-8":
		return UTF8, nil
	case "ascii", "us-ascii":
		return ASCII, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}
