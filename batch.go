package permalink

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/permalink/pkg/slug"
)

// SanitizeAll runs SanitizeTitle over titles concurrently. The result keeps
// the order of titles. It stops early and returns the context error when ctx
// is cancelled.
func (p *Permalinks) SanitizeAll(ctx context.Context, titles []string, fallback string, sctx slug.Context) ([]string, error) {
	out := make([]string, len(titles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, title := range titles {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = p.SanitizeTitle(gctx, title, fallback, sctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// gctx is always done after Wait; only the caller's ctx matters here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
