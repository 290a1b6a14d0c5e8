// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from unibom.
//
// The encodings here are used for input that carries no byte order
// mark, and for writing text out to legacy code pages.
package encoding

import (
	"io"
	"slices"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

var encodings = map[string]enc.Encoding{
	"utf8":              unicode.UTF8,
	"utf-8":             unicode.UTF8,
	"utf-8-bom":         unicode.UTF8BOM,
	"utf-16":            unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM),
	"utf-16be":          unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-16le":          unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-32":            utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM),
	"utf-32be":          utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM),
	"utf-32le":          utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM),
	"euc-jp":            japanese.EUCJP,
	"shift_jis":         japanese.ShiftJIS,
	"shift-jis":         japanese.ShiftJIS,
	"shiftjis":          japanese.ShiftJIS,
	"cp932":             japanese.ShiftJIS,
	"jis":               japanese.ISO2022JP,
	"iso-2022-jp":       japanese.ISO2022JP,
	"big5":              traditionalchinese.Big5,
	"euc-kr":            korean.EUCKR,
	"gbk":               simplifiedchinese.GBK,
	"gb18030":           simplifiedchinese.GB18030,
	"hz-gb2312":         simplifiedchinese.HZGB2312,
	"cp437":             charmap.CodePage437,
	"cp866":             charmap.CodePage866,
	"iso-8859-1":        charmap.ISO8859_1,
	"latin1":            charmap.ISO8859_1,
	"iso-8859-2":        charmap.ISO8859_2,
	"iso-8859-3":        charmap.ISO8859_3,
	"iso-8859-4":        charmap.ISO8859_4,
	"iso-8859-5":        charmap.ISO8859_5,
	"iso-8859-6":        charmap.ISO8859_6,
	"iso-8859-7":        charmap.ISO8859_7,
	"iso-8859-8":        charmap.ISO8859_8,
	"iso-8859-10":       charmap.ISO8859_10,
	"iso-8859-13":       charmap.ISO8859_13,
	"iso-8859-14":       charmap.ISO8859_14,
	"iso-8859-15":       charmap.ISO8859_15,
	"iso-8859-16":       charmap.ISO8859_16,
	"koi8r":             charmap.KOI8R,
	"koi8u":             charmap.KOI8U,
	"macintosh":         charmap.Macintosh,
	"macintoshcyrillic": charmap.MacintoshCyrillic,
	"windows1250":       charmap.Windows1250,
	"windows1251":       charmap.Windows1251,
	"windows1252":       charmap.Windows1252,
	"windows1253":       charmap.Windows1253,
	"windows1254":       charmap.Windows1254,
	"windows1255":       charmap.Windows1255,
	"windows1256":       charmap.Windows1256,
	"windows1257":       charmap.Windows1257,
	"windows1258":       charmap.Windows1258,
	"windows874":        charmap.Windows874,
	"xuserdefined":      charmap.XUserDefined,
}

// Load returns the encoding registered under name, or nil.
// Names are matched case insensitively.
func Load(name string) enc.Encoding {
	return encodings[strings.ToLower(name)]
}

// Names returns the sorted list of names that Load accepts
func Names() []string {
	names := make([]string, 0, len(encodings))
	for name := range encodings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewReader returns a reader that decodes r from e into UTF-8
func NewReader(r io.Reader, e enc.Encoding) io.Reader {
	return transform.NewReader(r, e.NewDecoder())
}

// NewWriter returns a writer that encodes UTF-8 written to it into e
// before passing it on to w. The caller must Close the returned writer
// to flush any buffered bytes.
func NewWriter(w io.Writer, e enc.Encoding) io.WriteCloser {
	return transform.NewWriter(w, e.NewEncoder())
}

// ISO88591ToUTF8 converts Latin-1 bytes to UTF-8. Every byte maps to the
// code point of the same value.
func ISO88591ToUTF8(b []byte) ([]byte, error) {
	return charmap.ISO8859_1.NewDecoder().Bytes(b)
}
