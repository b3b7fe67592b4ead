package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/marked"
	"github.com/lestrrat-go/marked/filter"
	"github.com/lestrrat-go/marked/internal/cliutil"
	"github.com/lestrrat-go/marked/node"
	"github.com/lestrrat-go/marked/s11n"
	"github.com/pkg/errors"
)

type cmdopts struct {
	XML             bool     `long:"xml" description:"parse the input as XML"`
	Fragment        bool     `long:"fragment" description:"parse the input as an HTML fragment"`
	Encoding        string   `long:"encoding" description:"force the input encoding"`
	DefaultEncoding string   `long:"default-encoding" description:"encoding assumed when the input declares none"`
	KeepBlanks      bool     `long:"keepblanks" description:"keep blank character data in XML input"`
	Filters         []string `long:"filter" short:"f" description:"filter to apply, may be repeated"`
	Jobs            int      `long:"jobs" short:"j" default:"4" description:"number of HTML documents parsed at once"`
	Trace           bool     `long:"trace" description:"log encoding decisions to stderr"`
	Version         bool     `long:"version"`
}

var filters = map[string]node.FilterFunc{
	"banned":      filter.DetachBannedElements,
	"basic-attrs": filter.RetainBasicAttributes,
	"comments":    filter.DetachComments,
	"fold-inline": filter.FoldEmptyInline,
	"normalize":   filter.TextNormalize,
	"pis":         filter.DetachProcessingInstructions,
	"xmp":         filter.XmpToPre,
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("marked-lint: using marked version %s\n", marked.Version)
}

func showUsage() {
	fmt.Printf(`Usage : marked-lint [options] files ...
	Parse the HTML or XML files, apply filters and output the result
	--xml : parse the input as XML
	--fragment : parse the input as an HTML fragment
	--encoding name : force the input encoding
	--default-encoding name : encoding assumed when none is declared
	--keepblanks : keep blank character data in XML input
	-f, --filter name : apply a filter (banned, basic-attrs, comments,
	                    fold-inline, normalize, pis, xmp)
	-j, --jobs n : number of HTML documents parsed at once
	--trace : log encoding decisions to stderr
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var inputs []io.Reader
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
		}
	case !cliutil.IsTty(os.Stdin.Fd()):
		inputs = append(inputs, os.Stdin)
	default:
		showUsage()
		return 1
	}

	ctx := context.Background()
	if opts.Trace {
		ctx = marked.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if err := run(ctx, &opts, inputs, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, opts *cmdopts, inputs []io.Reader, out io.Writer) error {
	var list []node.FilterFunc
	for _, name := range opts.Filters {
		f, ok := filters[strings.TrimSpace(name)]
		if !ok {
			return errors.Errorf("unknown filter %q", name)
		}
		list = append(list, f)
	}

	var htmlOptions []marked.HTMLOption
	if opts.Encoding != "" {
		htmlOptions = append(htmlOptions, marked.WithEncoding(opts.Encoding))
	}
	if opts.DefaultEncoding != "" {
		htmlOptions = append(htmlOptions, marked.WithDefaultEncoding(opts.DefaultEncoding))
	}

	d := s11n.Dumper{}
	if opts.XML {
		d.Mode = s11n.XMLMode
	}

	outputs := make([]bytes.Buffer, len(inputs))
	process := func(_ context.Context, i int, doc *node.Document) error {
		if err := filter.Apply(doc, node.DocumentID, list...); err != nil {
			return err
		}
		if err := d.DumpDoc(&outputs[i], doc); err != nil {
			return err
		}
		if d.Mode == s11n.HTMLMode {
			outputs[i].WriteByte('\n')
		}
		return nil
	}

	switch {
	case opts.XML:
		for i, in := range inputs {
			doc, err := marked.ParseXML(ctx, in, marked.WithKeepBlanks(opts.KeepBlanks))
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			if err := process(ctx, i, doc); err != nil {
				return err
			}
		}
	case opts.Fragment:
		for i, in := range inputs {
			doc, err := marked.ParseHTMLFragment(ctx, in, htmlOptions...)
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			if err := process(ctx, i, doc); err != nil {
				return err
			}
		}
	default:
		if err := marked.ProcessAll(ctx, inputs, opts.Jobs, process, htmlOptions...); err != nil {
			return err
		}
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}
