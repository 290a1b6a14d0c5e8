package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/unibom"
	"github.com/lestrrat-go/unibom/encoding"
	"github.com/lestrrat-go/unibom/internal/cliutil"
	"github.com/lestrrat-go/unibom/transcode"
)

type cmdopts struct {
	Detect   bool   `long:"detect"`
	To       string `long:"to" default:"utf8"`
	BOM      bool   `long:"bom"`
	Fallback string `long:"fallback"`
	Strict   bool   `long:"strict"`
	Verbose  bool   `short:"v" long:"verbose"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "unibom: version %s\n", unibom.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : unibom [options] files ...
	Decode the files (or stdin) using their byte order mark, and write
	them out again in another encoding
	--detect          : only print the detected encoding of each input
	--to=NAME         : output encoding (default utf8). Either one of
	                    utf8, utf16-le, utf16-be, utf32-le, utf32-be,
	                    or a legacy code page: %s
	--bom             : write a byte order mark
	--fallback=NAME   : code page to assume when there is no byte order mark
	--strict          : fail on malformed input instead of using U+FFFD
	-v, --verbose     : log what is detected to stderr
	--version         : display the version of unibom
`, strings.Join(encoding.Names(), ", "))
}

type input struct {
	name string
	r    io.Reader
	// files opened by us are closed after use, stdin is not
	owned bool
}

func (in input) release() {
	if !in.owned {
		return
	}
	if c, ok := in.r.(io.Closer); ok {
		c.Close()
	}
}

func _main(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, argv)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	out, err := newOutput(opts.To, opts.BOM)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	}

	inputCh := make(chan input)
	errCh := make(chan error, 1)
	switch {
	case len(args) > 0: // filename present
		go func() {
			defer close(inputCh)
			for _, f := range args {
				fh, err := os.Open(f)
				if err != nil {
					errCh <- err
					return
				}
				inputCh <- input{name: f, r: fh, owned: true}
			}
		}()
	case !isTerminal(stdin):
		go func() {
			defer close(inputCh)
			inputCh <- input{name: "-", r: stdin}
		}()
	default:
		showUsage(stderr)
		return 1
	}

	ctx := context.Background()
	if opts.Verbose {
		ctx = unibom.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var readOptions []unibom.ReadOption
	if opts.Strict {
		readOptions = append(readOptions, unibom.WithStrict(true))
	}
	if opts.Fallback != "" {
		readOptions = append(readOptions, unibom.WithFallback(opts.Fallback))
	}

	for in := range inputCh {
		err := process(ctx, in, opts.Detect, out, stdout, readOptions)
		in.release()
		if err != nil {
			fmt.Fprintf(stderr, "%s: %s\n", in.name, err)
			// drain so that the producer can finish
			for in := range inputCh {
				in.release()
			}
			return 1
		}
	}

	select {
	case err := <-errCh:
		fmt.Fprintf(stderr, "%s\n", err)
		return 1
	default:
	}

	return 0
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && cliutil.IsTty(f.Fd())
}

func process(ctx context.Context, in input, detect bool, out output, w io.Writer, options []unibom.ReadOption) error {
	if detect {
		buf, err := io.ReadAll(in.r)
		if err != nil {
			return err
		}
		e, _ := unibom.DetectBOM(buf)
		_, err = fmt.Fprintf(w, "%s: %s\n", in.name, e)
		return err
	}

	s, err := unibom.ReadWithBOM(ctx, in.r, options...)
	if err != nil {
		return err
	}

	b, err := out(s)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

type output func(transcode.UTF32) ([]byte, error)

// newOutput prefers the unibom encodings, and falls back to the legacy
// code pages
func newOutput(name string, bom bool) (output, error) {
	if e, err := unibom.LookupEncoding(name); err == nil {
		if bom {
			return func(s transcode.UTF32) ([]byte, error) { return unibom.EncodeWithBOM(s, e) }, nil
		}
		return func(s transcode.UTF32) ([]byte, error) { return unibom.Encode(s, e) }, nil
	}

	ce := encoding.Load(name)
	if ce == nil {
		return nil, fmt.Errorf("%w: %q", unibom.ErrUnsupportedEncoding, name)
	}
	if bom {
		return nil, fmt.Errorf("code page %q has no byte order mark", name)
	}
	return func(s transcode.UTF32) ([]byte, error) {
		return ce.NewEncoder().Bytes(s.UTF8())
	}, nil
}
