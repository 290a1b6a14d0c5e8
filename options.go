package unibom

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identStrict struct{}
type identFallback struct{}

// ReadOption configures DetectAndDecode and ReadWithBOM
type ReadOption interface {
	Option
	readOption()
}

type readOption struct{ Option }

func (*readOption) readOption() {}

// WithStrict rejects input that contains malformed code units, instead
// of decoding them to U+FFFD
func WithStrict(v bool) ReadOption {
	return &readOption{option.New(identStrict{}, v)}
}

// WithFallback specifies the encoding used when the input has no byte
// order mark. Unicode names ("utf-16le", "utf-32", ...) are decoded like
// input that carries the matching mark, including the length check.
// Other names are looked up with encoding.Load. Without this option such
// input is decoded as UTF-8.
func WithFallback(name string) ReadOption {
	return &readOption{option.New(identFallback{}, name)}
}

type readConfig struct {
	strict   bool
	fallback string
}

func newReadConfig(options []ReadOption) readConfig {
	var cfg readConfig
	for _, option := range options {
		switch option.Ident() {
		case identStrict{}:
			cfg.strict = option.Value().(bool)
		case identFallback{}:
			cfg.fallback = option.Value().(string)
		}
	}
	return cfg
}
