package textfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lestrrat-go/unibom"
	"github.com/lestrrat-go/unibom/textfile"
	"github.com/lestrrat-go/unibom/transcode"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	inputs := map[string][]byte{
		"utf8-bom.txt": append([]byte{0xEF, 0xBB, 0xBF}, "first\r\nsecond\nthird"...),
		"utf16le.txt": {
			0xFF, 0xFE,
			'f', 0, 'i', 0, 'r', 0, 's', 0, 't', 0, '\r', 0, '\n', 0,
			's', 0, 'e', 0, 'c', 0, 'o', 0, 'n', 0, 'd', 0, '\n', 0,
			't', 0, 'h', 0, 'i', 0, 'r', 0, 'd', 0,
		},
		"plain.txt": []byte("first\nsecond\r\nthird\n"),
	}

	dir := t.TempDir()
	for name, content := range inputs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, content, 0o644), "os.WriteFile should succeed")

			var lines []string
			err := textfile.ReadLines(context.Background(), path, func(line string) error {
				lines = append(lines, line)
				return nil
			})
			require.NoError(t, err, "ReadLines should succeed")
			require.Equal(t, []string{"first", "second", "third"}, lines, "lines match")
		})
	}
}

func TestReadLinesStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lines.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\nc\n"), 0o644), "os.WriteFile should succeed")

	stop := errors.New("stop")
	var count int
	err := textfile.ReadLines(context.Background(), path, func(string) error {
		count++
		if count == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop, "error from the callback is returned")
	require.Equal(t, 2, count, "iteration stops at the error")
}

func TestReadText(t *testing.T) {
	inputs := map[string][]byte{
		"utf8-bom.txt": append([]byte{0xEF, 0xBB, 0xBF}, "ab\r\ncd\nef\n"...),
		"utf16be.txt": {
			0xFE, 0xFF,
			0, 'a', 0, 'b', 0, '\n',
			0, 'c', 0, 'd', 0, '\r', 0, '\n',
			0, 'e', 0, 'f',
		},
	}

	dir := t.TempDir()
	for name, content := range inputs {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, content, 0o644), "os.WriteFile should succeed")

			s, err := textfile.ReadText(context.Background(), path)
			require.NoError(t, err, "ReadText should succeed")
			require.Equal(t, "abcdef", s.String(), "line feeds are removed")
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := textfile.ReadText(context.Background(), filepath.Join(dir, "missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist, "missing files fail")
	})
}

func TestReadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := textfile.Read(context.Background(), path)
	require.ErrorIs(t, err, os.ErrNotExist, "missing files fail")
	require.Contains(t, err.Error(), path, "error names the file")

	_, err = textfile.ReadBinary(path)
	require.ErrorIs(t, err, os.ErrNotExist, "missing files fail")
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "odd.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xFE, 0xFF, 0x00}, 0o644), "os.WriteFile should succeed")

	_, err := textfile.Read(context.Background(), path)
	var mlerr unibom.ErrMalformedLength
	require.True(t, errors.As(err, &mlerr), "error is ErrMalformedLength")
	require.Equal(t, unibom.UTF16BE, mlerr.Encoding, "error carries the encoding")
}

func TestWrite(t *testing.T) {
	s := transcode.UTF32("Aé中\U0001F600")
	dir := t.TempDir()

	for e := unibom.UTF32BE; e <= unibom.ASCII; e++ {
		t.Run(e.String(), func(t *testing.T) {
			path := filepath.Join(dir, e.String()+".txt")
			require.NoError(t, textfile.Write(path, s, e, textfile.WithBOM(true)), "Write should succeed")

			raw, err := textfile.ReadBinary(path)
			require.NoError(t, err, "ReadBinary should succeed")
			expected, err := unibom.EncodeWithBOM(s, e)
			require.NoError(t, err, "EncodeWithBOM should succeed")
			require.Equal(t, expected, raw, "file contents match")

			got, err := textfile.Read(context.Background(), path)
			require.NoError(t, err, "Read should succeed")
			require.Equal(t, s, got, "file round trips")
		})
	}
}

func TestWriteWithoutBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nobom.txt")
	require.NoError(t, textfile.Write(path, transcode.UTF32("AB"), unibom.UTF16BE), "Write should succeed")

	raw, err := textfile.ReadBinary(path)
	require.NoError(t, err, "ReadBinary should succeed")
	require.Equal(t, []byte{0x00, 'A', 0x00, 'B'}, raw, "no mark is written by default")
}

func TestWriteCodePage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin1.txt")
	require.NoError(t, textfile.WriteLines(path, []string{"café", "naïve"}, unibom.UTF8, textfile.WithCodePage("iso-8859-1")), "WriteLines should succeed")

	raw, err := textfile.ReadBinary(path)
	require.NoError(t, err, "ReadBinary should succeed")
	require.Equal(t, []byte("caf\xe9\nna\xefve\n"), raw, "file is Latin-1")

	var lines []string
	err = textfile.ReadLines(context.Background(), path, func(line string) error {
		lines = append(lines, line)
		return nil
	}, unibom.WithFallback("iso-8859-1"))
	require.NoError(t, err, "ReadLines should succeed")
	require.Equal(t, []string{"café", "naïve"}, lines, "lines match")

	err = textfile.Write(path, transcode.UTF32("x"), unibom.UTF8, textfile.WithCodePage("klingon"))
	require.ErrorIs(t, err, unibom.ErrUnsupportedEncoding, "unknown code pages fail")

	err = textfile.Write(path, transcode.UTF32("中"), unibom.UTF8, textfile.WithCodePage("iso-8859-1"))
	require.Error(t, err, "unmappable characters fail")
}

func TestWritePerm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "perm.txt")
	require.NoError(t, textfile.Write(path, transcode.UTF32("x"), unibom.UTF8, textfile.WithPerm(0o600)), "Write should succeed")

	fi, err := os.Stat(path)
	require.NoError(t, err, "os.Stat should succeed")
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm(), "permission bits match")
}
