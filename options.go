package marked

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identCapacity struct{}
type identContentType struct{}
type identDefaultEncoding struct{}
type identEncoding struct{}
type identKeepBlanks struct{}
type identLookahead struct{}

// HTMLOption configures ParseHTML and friends.
type HTMLOption interface {
	Option
	htmlOption()
}

// XMLOption configures ParseXML.
type XMLOption interface {
	Option
	xmlOption()
}

// ParseOption is accepted by both the HTML and the XML parsers.
type ParseOption interface {
	HTMLOption
	XMLOption
}

type htmlOption struct{ Option }

func (*htmlOption) htmlOption() {}

type xmlOption struct{ Option }

func (*xmlOption) xmlOption() {}

type parseOption struct{ Option }

func (*parseOption) htmlOption() {}
func (*parseOption) xmlOption()  {}

// WithCapacity sets the initial node capacity of the parsed document.
func WithCapacity(v int) ParseOption {
	return &parseOption{option.New(identCapacity{}, v)}
}

// WithEncoding forces the input encoding, skipping detection entirely.
func WithEncoding(label string) HTMLOption {
	return &htmlOption{option.New(identEncoding{}, label)}
}

// WithDefaultEncoding sets the encoding assumed when the input carries
// no byte order mark and declares nothing. The default is UTF-8.
func WithDefaultEncoding(label string) HTMLOption {
	return &htmlOption{option.New(identDefaultEncoding{}, label)}
}

// WithContentType passes the value of an HTTP Content-Type header. Its
// charset parameter, if any, is used as an encoding hint.
func WithContentType(v string) HTMLOption {
	return &htmlOption{option.New(identContentType{}, v)}
}

// WithLookahead sets how many leading bytes are inspected for a byte
// order mark and charset declarations. The default is 4096.
func WithLookahead(n int) HTMLOption {
	return &htmlOption{option.New(identLookahead{}, n)}
}

// WithKeepBlanks keeps character data made of white space only. By
// default such runs are dropped.
func WithKeepBlanks(v bool) XMLOption {
	return &xmlOption{option.New(identKeepBlanks{}, v)}
}

const (
	defaultLookahead = 4096
	defaultCapacity  = 128
)

type htmlConfig struct {
	capacity        int
	contentType     string
	defaultEncoding string
	encoding        string
	lookahead       int
}

func newHTMLConfig(options []HTMLOption) *htmlConfig {
	cfg := htmlConfig{
		capacity:        defaultCapacity,
		defaultEncoding: "utf-8",
		lookahead:       defaultLookahead,
	}
	for _, option := range options {
		switch option.Ident() {
		case identCapacity{}:
			cfg.capacity = option.Value().(int)
		case identContentType{}:
			cfg.contentType = option.Value().(string)
		case identDefaultEncoding{}:
			cfg.defaultEncoding = option.Value().(string)
		case identEncoding{}:
			cfg.encoding = option.Value().(string)
		case identLookahead{}:
			if n := option.Value().(int); n > 0 {
				cfg.lookahead = n
			}
		}
	}
	return &cfg
}

type xmlConfig struct {
	capacity   int
	keepBlanks bool
}

func newXMLConfig(options []XMLOption) *xmlConfig {
	cfg := xmlConfig{capacity: defaultCapacity}
	for _, option := range options {
		switch option.Ident() {
		case identCapacity{}:
			cfg.capacity = option.Value().(int)
		case identKeepBlanks{}:
			cfg.keepBlanks = option.Value().(bool)
		}
	}
	return &cfg
}
