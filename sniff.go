package marked

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime"
	"strings"

	"github.com/lestrrat-go/marked/encoding"
	"github.com/lestrrat-go/marked/internal/pool"
	"github.com/lestrrat-go/marked/node"
	"github.com/pkg/errors"
	nethtml "golang.org/x/net/html"
	enc "golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// source is an input whose encoding has been committed. Reading from
// it yields UTF-8 from the very first byte of the document.
type source struct {
	io.Reader
	enc     enc.Encoding
	hint    *encoding.Hint
	machine encoding.Machine
	buf     []byte
}

// release hands the lookahead buffer back to the pool. The source must
// not be read afterwards.
func (s *source) release() {
	if s.buf != nil {
		pool.ByteSlice().Put(s.buf)
		s.buf = nil
	}
}

func (s *source) commit(e enc.Encoding, head []byte, rest io.Reader) error {
	if err := s.machine.To(encoding.Committed); err != nil {
		return err
	}
	s.enc = e
	s.Reader = transform.NewReader(io.MultiReader(bytes.NewReader(head), rest), e.NewDecoder())
	return nil
}

// sniff decides the encoding of r. A caller supplied encoding wins
// outright. Otherwise a byte order mark commits immediately; failing
// that the default and transport hints are weighed against charset
// declarations found in the lookahead, and the input is decoded again
// under the declared encoding if it differs from the assumed one.
func sniff(ctx context.Context, r io.Reader, cfg *htmlConfig) (*source, error) {
	tlog := getTraceLogFromContext(ctx)
	src := &source{hint: encoding.NewHint()}

	if cfg.encoding != "" {
		e := encoding.Load(cfg.encoding)
		if e == nil {
			return nil, errors.Wrapf(ErrEncodingUnsupported, "encoding %q", cfg.encoding)
		}
		src.hint.Add(e, 1)
		tlog.Debug("encoding forced by caller", slog.String("encoding", encoding.Name(e)))
		if err := src.commit(e, nil, r); err != nil {
			return nil, err
		}
		return src, nil
	}

	src.buf = pool.ByteSlice().GetCapacity(cfg.lookahead)
	head := src.buf[:cfg.lookahead]
	n, err := io.ReadFull(r, head)
	switch {
	case err == nil, errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
	default:
		src.release()
		return nil, errors.Wrapf(ErrParseAborted, "failed to read input: %s", err)
	}
	head = head[:n]

	if e, size := encoding.SniffBOM(head); e != nil {
		src.hint.Add(e, encoding.BOMConfidence)
		if err := src.machine.To(encoding.Sniffed); err != nil {
			src.release()
			return nil, err
		}
		tlog.Debug("byte order mark found", slog.String("encoding", encoding.Name(e)))
		if err := src.commit(e, head[size:], r); err != nil {
			src.release()
			return nil, err
		}
		return src, nil
	}

	if _, err := src.hint.AddLabel(cfg.defaultEncoding, encoding.DefaultConfidence); err != nil {
		src.release()
		return nil, errors.Wrapf(ErrEncodingUnsupported, "default encoding %q", cfg.defaultEncoding)
	}
	if cfg.contentType != "" {
		if label := contentTypeCharset(cfg.contentType); label != "" {
			if _, err := src.hint.AddLabel(label, encoding.ContentTypeConfidence); err != nil {
				tlog.Info("ignoring Content-Type charset", slog.String("label", label))
			}
		}
	}

	assumed := src.hint.Top()
	src.hint.ClearChanged()

	if labels := declaredCharsets(head, assumed); len(labels) > 0 {
		if err := src.machine.To(encoding.Declared); err != nil {
			src.release()
			return nil, err
		}
		weight := encoding.MetaConfidence / float32(len(labels))
		for _, label := range labels {
			declared := encoding.Load(label)
			switch {
			case declared == nil:
				src.hint.AddErrors(1)
				tlog.Info("unknown charset declaration", slog.String("label", label))
			case !encoding.Compatible(assumed, declared):
				src.hint.AddErrors(1)
				tlog.Info("impossible charset declaration",
					slog.String("label", label), slog.String("decoded_with", encoding.Name(assumed)))
			default:
				src.hint.Add(declared, weight)
			}
		}

		if src.hint.Changed() && encoding.Name(src.hint.Top()) != encoding.Name(assumed) {
			if src.machine.CanRestart() {
				if err := src.machine.To(encoding.Restarting); err != nil {
					src.release()
					return nil, err
				}
				tlog.Info("restarting with declared encoding",
					slog.String("from", encoding.Name(assumed)), slog.String("to", src.hint.TopName()))
			}
		}
	}

	if err := src.commit(src.hint.Top(), head, r); err != nil {
		src.release()
		return nil, err
	}
	tlog.Debug("encoding committed",
		slog.String("encoding", encoding.Name(src.enc)), slog.Any("confidence", src.hint.Confidence()))
	return src, nil
}

// declaredCharsets decodes head with e, parses it speculatively and
// returns the charset labels declared by meta elements in its head.
func declaredCharsets(head []byte, e enc.Encoding) []string {
	text, err := e.NewDecoder().Bytes(head)
	if err != nil {
		return nil
	}
	root, err := nethtml.Parse(bytes.NewReader(text))
	if err != nil {
		return nil
	}
	doc := node.New()
	if _, err := appendHTML(doc, node.DocumentID, children(root)...); err != nil {
		return nil
	}
	return metaCharsets(doc)
}

// metaCharsets collects the charset labels declared by the meta
// elements that are direct children of the head of doc, in document
// order.
func metaCharsets(doc *node.Document) []string {
	head, ok := doc.Root().Find(func(n node.NodeRef) bool { return n.Is("head") })
	if !ok {
		return nil
	}

	var labels []string
	for meta := range head.SelectChildren(func(n node.NodeRef) bool { return n.Is("meta") }) {
		e, _ := meta.AsElement()
		if v, ok := e.Attr("charset"); ok {
			if v = strings.TrimSpace(v); v != "" {
				labels = append(labels, v)
			}
			continue
		}
		if v, ok := e.Attr("http-equiv"); !ok || !strings.EqualFold(strings.TrimSpace(v), "content-type") {
			continue
		}
		if v, ok := e.Attr("content"); ok {
			if label := charsetParam(v); label != "" {
				labels = append(labels, label)
			}
		}
	}
	return labels
}

func contentTypeCharset(v string) string {
	if _, params, err := mime.ParseMediaType(v); err == nil {
		return strings.TrimSpace(params["charset"])
	}
	return charsetParam(v)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// charsetParam extracts the value following "charset=" in the content
// attribute of a meta element, quoted or not. It returns the empty
// string when there is none.
func charsetParam(s string) string {
	for {
		i := strings.Index(strings.ToLower(s), "charset")
		if i < 0 {
			return ""
		}
		s = s[i+len("charset"):]
		j := 0
		for j < len(s) && isSpace(s[j]) {
			j++
		}
		if j == len(s) || s[j] != '=' {
			s = s[j:]
			continue
		}
		s = s[j+1:]
		break
	}

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	s = s[i:]
	if s == "" {
		return ""
	}
	if q := s[0]; q == '"' || q == '\'' {
		end := strings.IndexByte(s[1:], q)
		if end < 0 {
			return ""
		}
		return s[1 : end+1]
	}
	end := strings.IndexFunc(s, func(r rune) bool { return r == ';' || r < 0x80 && isSpace(byte(r)) })
	if end < 0 {
		return s
	}
	return s[:end]
}
