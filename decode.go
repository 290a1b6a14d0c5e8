package unibom

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/lestrrat-go/unibom/encoding"
	"github.com/lestrrat-go/unibom/internal/debug"
	"github.com/lestrrat-go/unibom/transcode"
)

// Decode decodes b, which must not start with a byte order mark, as
// encoding e. For the 16 and 32 bit encodings the length of b must be a
// multiple of the code unit size, otherwise ErrMalformedLength is
// returned. Malformed UTF-8 and UTF-16 units decode to U+FFFD; UTF-32
// values are copied as is, even when they are surrogates or lie above
// U+10FFFF.
func Decode(b []byte, e Encoding) (transcode.UTF32, error) {
	return decode(b, e, false)
}

func decode(b []byte, e Encoding, strict bool) (transcode.UTF32, error) {
	if !e.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEncoding, e)
	}

	width := e.UnitWidth()
	if len(b)%width != 0 {
		return nil, ErrMalformedLength{Encoding: e, Length: len(b)}
	}

	order := e.ByteOrder()
	switch width {
	case 4:
		out := make(transcode.UTF32, len(b)/4)
		for i := range out {
			out[i] = rune(order.Uint32(b[i*4:]))
		}
		if strict {
			if err := out.Validate(); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", e, err)
			}
		}
		return out, nil
	case 2:
		units := make(transcode.UTF16, len(b)/2)
		for i := range units {
			units[i] = order.Uint16(b[i*2:])
		}
		if strict {
			if err := units.Validate(); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", e, err)
			}
		}
		return units.UTF32(), nil
	default:
		s := transcode.UTF8(b)
		if strict {
			if err := s.Validate(); err != nil {
				return nil, fmt.Errorf("failed to decode %s: %w", e, err)
			}
		}
		return s.UTF32(), nil
	}
}

// DetectAndDecode detects the encoding of b from its byte order mark,
// strips the mark, and decodes the rest into UTF-32. Either the whole
// buffer is decoded or an error is returned.
func DetectAndDecode(b []byte, options ...ReadOption) (transcode.UTF32, error) {
	return detectAndDecode(context.Background(), b, newReadConfig(options))
}

// ReadWithBOM reads r until EOF and then works like DetectAndDecode.
// The detected encoding is reported to the trace logger in ctx.
func ReadWithBOM(ctx context.Context, r io.Reader, options ...ReadOption) (transcode.UTF32, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return detectAndDecode(ctx, buf, newReadConfig(options))
}

func detectAndDecode(ctx context.Context, b []byte, cfg readConfig) (transcode.UTF32, error) {
	tlog := getTraceLogFromContext(ctx)

	// input without a byte order mark is read as fallbackTag, unless a
	// legacy code page decoder is given
	fallbackTag := ASCII
	var fallback encodingDecoder
	if cfg.fallback != "" {
		if fe, ok := unicodeFallback(cfg.fallback); ok {
			fallbackTag = fe
		} else {
			ce := encoding.Load(cfg.fallback)
			if ce == nil {
				return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, cfg.fallback)
			}
			fallback = ce.NewDecoder()
		}
	}

	e, payload := DetectBOM(b)
	tlog.Debug("detected encoding",
		slog.String("encoding", e.String()),
		slog.Int("bom_length", len(b)-len(payload)),
		slog.Int("payload_length", len(payload)),
	)

	if e == ASCII {
		if fallback != nil {
			return decodeCodePage(tlog, payload, cfg, fallback)
		}
		e = fallbackTag
	}

	out, err := decode(payload, e, cfg.strict)
	if err != nil {
		if debug.Enabled {
			debug.Dump(err)
		}
		tlog.Debug("decoding failed", slog.String("encoding", e.String()), slog.Any("error", err))
		return nil, err
	}
	return out, nil
}

// unicodeFallback maps the Unicode names that encoding.Load knows to
// an Encoding, so that they go through decode and get the same length
// and strict checks as input with a byte order mark. Without a mark,
// "utf-16" and "utf-32" are big endian.
func unicodeFallback(name string) (Encoding, bool) {
	switch strings.ToLower(name) {
	case "utf-16":
		return UTF16BE, true
	case "utf-32":
		return UTF32BE, true
	case "utf-8-bom":
		return UTF8, true
	}
	if e, err := LookupEncoding(name); err == nil {
		return e, true
	}
	return 0, false
}

// decodeCodePage decodes payload with a legacy code page decoder. These
// decoders never fail, they emit U+FFFD for bytes they cannot map, and
// U+FFFD is not part of any of the code pages. So in strict mode the
// first U+FFFD in the output is reported, and its Index is a position
// in the decoded text.
func decodeCodePage(tlog *slog.Logger, payload []byte, cfg readConfig, dec encodingDecoder) (transcode.UTF32, error) {
	u8, err := dec.Bytes(payload)
	if err != nil {
		tlog.Debug("fallback decoding failed", slog.String("fallback", cfg.fallback), slog.Any("error", err))
		return nil, fmt.Errorf("failed to decode %s: %w", cfg.fallback, err)
	}

	out := transcode.UTF8(u8).UTF32()
	if cfg.strict {
		if i := slices.Index(out, utf8.RuneError); i >= 0 {
			err := transcode.ErrInvalidUnit{Format: cfg.fallback, Index: i, Unit: utf8.RuneError}
			tlog.Debug("fallback decoding failed", slog.String("fallback", cfg.fallback), slog.Any("error", err))
			return nil, fmt.Errorf("failed to decode %s: %w", cfg.fallback, err)
		}
	}
	return out, nil
}

type encodingDecoder interface {
	Bytes([]byte) ([]byte, error)
}
