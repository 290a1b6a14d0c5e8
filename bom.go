package unibom

import (
	"bytes"

	"github.com/lestrrat-go/unibom/internal/debug"
)

// The order matters: the UTF-32LE mark starts with the UTF-16LE mark,
// so the 4 byte patterns have to be tried first.
var bomTable = []struct {
	encoding Encoding
	pattern  []byte
}{
	{UTF32BE, []byte{0x00, 0x00, 0xFE, 0xFF}},
	{UTF32LE, []byte{0xFF, 0xFE, 0x00, 0x00}},
	{UTF16BE, []byte{0xFE, 0xFF}},
	{UTF16LE, []byte{0xFF, 0xFE}},
	{UTF8, []byte{0xEF, 0xBB, 0xBF}},
}

// BOM returns a copy of the byte order mark for e. ASCII has none.
func BOM(e Encoding) []byte {
	for _, entry := range bomTable {
		if entry.encoding == e {
			return bytes.Clone(entry.pattern)
		}
	}
	return nil
}

// DetectBOM classifies b by its byte order mark, and returns the
// encoding along with the remainder of b after the mark. If no mark
// is found, ASCII and b itself are returned.
func DetectBOM(b []byte) (Encoding, []byte) {
	for _, entry := range bomTable {
		if bytes.HasPrefix(b, entry.pattern) {
			if debug.Enabled {
				debug.Printf("found %s byte order mark (%d bytes)", entry.encoding, len(entry.pattern))
			}
			return entry.encoding, b[len(entry.pattern):]
		}
	}
	if debug.Enabled {
		debug.Printf("no byte order mark, assuming %s", ASCII)
	}
	return ASCII, b
}
