package s11n

import (
	"io"
	"strings"
	"unicode/utf8"
)

const (
	qchDquote = '"'
	qchQuote  = '\''
)

// isInCharacterRange checks if rune is in XML Character Range
func isInCharacterRange(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// DumpQuotedString writes s as a quoted literal. Double quotes are
// preferred; single quotes are used when s contains double quotes only;
// when s contains both, the double quotes are written as &quot;.
func DumpQuotedString(out io.Writer, s string) error {
	if strings.IndexByte(s, qchDquote) < 0 {
		return writeStrings(out, `"`, s, `"`)
	}
	if strings.IndexByte(s, qchQuote) < 0 {
		return writeStrings(out, `'`, s, `'`)
	}
	return writeStrings(out, `"`, strings.ReplaceAll(s, `"`, "&quot;"), `"`)
}

const (
	escQuot = "&#34;" // shorter than "&quot;"
	escAmp  = "&amp;"
	escLt   = "&lt;"
	escGt   = "&gt;"
	escTab  = "&#9;"
	escNl   = "&#10;"
	escCr   = "&#13;"
	escFFFD = "\uFFFD" // Unicode replacement character
)

// EscapeAttrValue writes s escaped for use inside a double quoted
// attribute value.
func EscapeAttrValue(w io.Writer, s string) error {
	return escape(w, s, true, func(r rune) (string, bool) {
		switch r {
		case '"':
			return escQuot, true
		case '\n':
			return escNl, true
		case '\t':
			return escTab, true
		}
		return "", false
	})
}

// EscapeText writes to w the properly escaped equivalent of the plain
// text data s. If escapeNewline is true, newline characters will be
// escaped.
func EscapeText(w io.Writer, s string, escapeNewline bool) error {
	return escape(w, s, true, func(r rune) (string, bool) {
		if r == '\n' && escapeNewline {
			return escNl, true
		}
		return "", false
	})
}

// EscapeHTMLAttrValue is EscapeAttrValue for HTML output. Only markup
// significant characters are replaced; everything else is written as is.
func EscapeHTMLAttrValue(w io.Writer, s string) error {
	return escape(w, s, false, func(r rune) (string, bool) {
		if r == '"' {
			return escQuot, true
		}
		return "", false
	})
}

// EscapeHTMLText is EscapeText for HTML output.
func EscapeHTMLText(w io.Writer, s string) error {
	return escape(w, s, false, func(rune) (string, bool) { return "", false })
}

// escape writes s to w replacing markup significant characters. extra
// may claim additional runes. When xml is set, carriage returns are
// escaped and runes outside the XML Char range become U+FFFD.
func escape(w io.Writer, s string, xml bool, extra func(rune) (string, bool)) error {
	last := 0
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width

		esc, ok := extra(r)
		if !ok {
			switch r {
			case '&':
				esc = escAmp
			case '<':
				esc = escLt
			case '>':
				esc = escGt
			case '\r':
				if !xml {
					continue
				}
				esc = escCr
			default:
				if !xml || isInCharacterRange(r) && (r != utf8.RuneError || width > 1) {
					continue
				}
				esc = escFFFD
			}
		}

		if _, err := io.WriteString(w, s[last:i-width]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		last = i
	}

	_, err := io.WriteString(w, s[last:])
	return err
}
