// Package textfile reads and writes text files through the unibom
// byte order mark detector.
package textfile

import (
	"bytes"
	"context"
	"os"
	"strings"

	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/unibom"
	"github.com/lestrrat-go/unibom/encoding"
	"github.com/lestrrat-go/unibom/transcode"
	"github.com/pkg/errors"
)

type Option = option.Interface

type identBOM struct{}
type identCodePage struct{}
type identPerm struct{}

// WriteOption configures Write
type WriteOption interface {
	Option
	writeOption()
}

type writeOption struct{ Option }

func (*writeOption) writeOption() {}

// WithBOM specifies if Write should start the file with a byte order mark
func WithBOM(v bool) WriteOption {
	return &writeOption{option.New(identBOM{}, v)}
}

// WithCodePage makes Write encode the text with a legacy code page
// (see encoding.Load) instead of a Unicode encoding. The encoding
// argument to Write is ignored, and no byte order mark is written.
func WithCodePage(name string) WriteOption {
	return &writeOption{option.New(identCodePage{}, name)}
}

// WithPerm sets the permission bits used when Write creates the file.
// The default is 0644.
func WithPerm(v os.FileMode) WriteOption {
	return &writeOption{option.New(identPerm{}, v)}
}

// ReadBinary returns the contents of the file as is
func ReadBinary(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to read %s`, path)
	}
	return b, nil
}

// Read decodes the whole file at path into UTF-32, detecting its
// encoding from the byte order mark
func Read(ctx context.Context, path string, options ...unibom.ReadOption) (transcode.UTF32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to open %s`, path)
	}
	defer f.Close()

	s, err := unibom.ReadWithBOM(ctx, f, options...)
	if err != nil {
		return nil, errors.Wrapf(err, `failed to decode %s`, path)
	}
	return s, nil
}

// ReadLines calls fn for each line in the file at path. Line feeds and
// a carriage return right before them are removed. Iteration stops at
// the first error returned by fn.
func ReadLines(ctx context.Context, path string, fn func(string) error, options ...unibom.ReadOption) error {
	s, err := Read(ctx, path, options...)
	if err != nil {
		return err
	}

	for line := range strings.Lines(s.String()) {
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if err := fn(line); err != nil {
			return err
		}
	}
	return nil
}

// ReadText reads the file at path like ReadLines, and returns all
// lines joined together with their terminators removed
func ReadText(ctx context.Context, path string, options ...unibom.ReadOption) (transcode.UTF32, error) {
	var sb strings.Builder
	err := ReadLines(ctx, path, func(line string) error {
		sb.WriteString(line)
		return nil
	}, options...)
	if err != nil {
		return nil, err
	}
	return transcode.UTF32(sb.String()), nil
}

// Write encodes s as e and writes it to path, replacing the file if
// it exists
func Write(path string, s transcode.UTF32, e unibom.Encoding, options ...WriteOption) error {
	var withBOM bool
	var codePage string
	perm := os.FileMode(0o644)
	for _, option := range options {
		switch option.Ident() {
		case identBOM{}:
			withBOM = option.Value().(bool)
		case identCodePage{}:
			codePage = option.Value().(string)
		case identPerm{}:
			perm = option.Value().(os.FileMode)
		}
	}

	var buf bytes.Buffer
	if codePage != "" {
		ce := encoding.Load(codePage)
		if ce == nil {
			return errors.Wrapf(unibom.ErrUnsupportedEncoding, `code page %q`, codePage)
		}
		w := encoding.NewWriter(&buf, ce)
		if _, err := w.Write(s.UTF8()); err != nil {
			return errors.Wrapf(err, `failed to encode %s`, codePage)
		}
		if err := w.Close(); err != nil {
			return errors.Wrapf(err, `failed to encode %s`, codePage)
		}
	} else {
		encode := unibom.Encode
		if withBOM {
			encode = unibom.EncodeWithBOM
		}
		b, err := encode(s, e)
		if err != nil {
			return err
		}
		buf.Write(b)
	}

	if err := os.WriteFile(path, buf.Bytes(), perm); err != nil {
		return errors.Wrapf(err, `failed to write %s`, path)
	}
	return nil
}

// WriteLines joins lines with "\n" (each line is terminated) and
// writes them like Write does
func WriteLines(path string, lines []string, e unibom.Encoding, options ...WriteOption) error {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return Write(path, transcode.UTF8(sb.String()).UTF32(), e, options...)
}
