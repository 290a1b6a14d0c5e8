package unibom

import (
	"errors"
	"fmt"
)

var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// ErrMalformedLength is returned when the payload after the byte order
// mark is not a whole number of code units
type ErrMalformedLength struct {
	Encoding Encoding
	Length   int
}

func (e ErrMalformedLength) Error() string {
	return fmt.Sprintf(
		"%s: size in bytes must be a multiple of %d, got %d",
		e.Encoding,
		e.Encoding.UnitWidth(),
		e.Length,
	)
}
