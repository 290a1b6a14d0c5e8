package unibom

import (
	"fmt"

	"github.com/lestrrat-go/unibom/encoding"
	"github.com/lestrrat-go/unibom/transcode"
)

var textEncodingNames = map[Encoding]string{
	UTF32BE: "utf-32be",
	UTF32LE: "utf-32le",
	UTF16BE: "utf-16be",
	UTF16LE: "utf-16le",
}

// Encode serializes s as e, without a byte order mark. ASCII is
// encoded as UTF-8.
func Encode(s transcode.UTF32, e Encoding) ([]byte, error) {
	switch e {
	case UTF8, ASCII:
		return []byte(s.UTF8()), nil
	}

	name, ok := textEncodingNames[e]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, e)
	}

	out, err := encoding.Load(name).NewEncoder().Bytes(s.UTF8())
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", e, err)
	}
	return out, nil
}

// EncodeWithBOM works like Encode, but prepends the byte order mark of
// e. ASCII gets no mark.
func EncodeWithBOM(s transcode.UTF32, e Encoding) ([]byte, error) {
	out, err := Encode(s, e)
	if err != nil {
		return nil, err
	}
	return append(BOM(e), out...), nil
}
