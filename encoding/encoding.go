// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding. Part of the reason this exists is that
// the package names such as "unicode" clash with the stdlib, and
// it's rather easier if we just hide it from the parsers
package encoding

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownLabel is returned for encoding labels no decoder exists for.
var ErrUnknownLabel = errors.New("unknown encoding label")

var (
	UTF8    enc.Encoding = unicode.UTF8
	UTF16BE enc.Encoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	UTF16LE enc.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Load returns the encoding for a label. WHATWG labels are resolved
// first, so "latin1" and "iso-8859-1" both give windows-1252 like a
// browser would; a few legacy spellings are accepted besides. Load
// returns nil when the label is unknown.
func Load(name string) enc.Encoding {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil
	}
	if e, err := htmlindex.Get(name); err == nil && e != enc.Replacement {
		return e
	}

	switch name {
	case "utf8":
		return unicode.UTF8
	case "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "jis":
		return japanese.ISO2022JP
	case "hz-gb2312", "hz-gb-2312":
		return simplifiedchinese.HZGB2312
	case "big5-hkscs":
		return traditionalchinese.Big5
	case "cp949", "uhc":
		return korean.EUCKR
	case "cp437":
		return charmap.CodePage437
	case "cp850":
		return charmap.CodePage850
	case "cp866":
		return charmap.CodePage866
	case "koi8r":
		return charmap.KOI8R
	case "koi8u":
		return charmap.KOI8U
	case "macintoshcyrillic":
		return charmap.MacintoshCyrillic
	case "windows1250":
		return charmap.Windows1250
	case "windows1251":
		return charmap.Windows1251
	case "windows1252":
		return charmap.Windows1252
	case "windows1253":
		return charmap.Windows1253
	case "windows1254":
		return charmap.Windows1254
	case "windows1255":
		return charmap.Windows1255
	case "windows1256":
		return charmap.Windows1256
	case "windows1257":
		return charmap.Windows1257
	case "windows1258":
		return charmap.Windows1258
	case "windows874":
		return charmap.Windows874
	case "xuserdefined":
		return charmap.XUserDefined
	}
	return nil
}

// Lookup is like Load, but returns an error wrapping ErrUnknownLabel
// for unknown labels.
func Lookup(name string) (enc.Encoding, error) {
	e := Load(name)
	if e == nil {
		return nil, errors.Wrapf(ErrUnknownLabel, "label %q", name)
	}
	return e, nil
}

// Name returns the canonical lower case name of e: its WHATWG name when
// it has one, its IANA name otherwise.
func Name(e enc.Encoding) string {
	if e == nil {
		return ""
	}
	if n, err := htmlindex.Name(e); err == nil {
		return n
	}
	if n, err := ianaindex.IANA.Name(e); err == nil {
		return strings.ToLower(n)
	}
	return ""
}

// SniffBOM looks for a byte order mark at the start of b. It returns
// the encoding the mark stands for and the length of the mark, or nil
// and 0.
func SniffBOM(b []byte) (enc.Encoding, int) {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return UTF8, len(bomUTF8)
	case bytes.HasPrefix(b, bomUTF16BE):
		return UTF16BE, len(bomUTF16BE)
	case bytes.HasPrefix(b, bomUTF16LE):
		return UTF16LE, len(bomUTF16LE)
	}
	return nil, 0
}

const asciiProbe = "<meta charset=\"content-type\"> azAZ09;/\t\r\n"

// IsASCIICompatible reports whether e encodes ASCII text to the same
// bytes, so that markup decoded under one such encoding reads the same
// under another.
func IsASCIICompatible(e enc.Encoding) bool {
	if e == nil {
		return false
	}
	out, err := e.NewEncoder().String(asciiProbe)
	return err == nil && out == asciiProbe
}

// Compatible reports whether a declaration that was read by decoding
// bytes as decodedWith can be trusted to name declared. Either both
// are the same encoding, or both are ASCII compatible: a document
// whose markup reads correctly as ASCII cannot be, say, UTF-16.
func Compatible(decodedWith, declared enc.Encoding) bool {
	if decodedWith == nil || declared == nil {
		return false
	}
	if Name(decodedWith) == Name(declared) {
		return true
	}
	return IsASCIICompatible(decodedWith) && IsASCIICompatible(declared)
}
