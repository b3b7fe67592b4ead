package marked

import (
	"context"
	"io"

	"github.com/lestrrat-go/marked/node"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DocumentFunc receives each document parsed by ProcessAll along with
// the index of its input.
type DocumentFunc func(ctx context.Context, index int, doc *node.Document) error

// ProcessAll parses every input as HTML and passes the resulting
// document to fn, running at most limit parses at once (no limit when
// limit <= 0). A document is only ever touched by the goroutine that
// parsed it. The first error cancels the remaining work and is
// returned.
func ProcessAll(ctx context.Context, inputs []io.Reader, limit int, fn DocumentFunc, options ...HTMLOption) error {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, r := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := ParseHTML(ctx, r, options...)
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			return fn(ctx, i, doc)
		})
	}
	return g.Wait()
}
