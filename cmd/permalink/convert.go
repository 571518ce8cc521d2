package main

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/dmitrymomot/permalink"
	"github.com/dmitrymomot/permalink/pkg/sanitizer"
	"github.com/dmitrymomot/permalink/pkg/slug"
)

const maxLineSize = 1 << 20

type converter struct {
	p        *permalink.Permalinks
	enc      encoder
	sctx     slug.Context
	fallback string
	markdown bool
}

// convertAll sanitizes titles as one batch.
func (c *converter) convertAll(ctx context.Context, titles []string) error {
	display := make([]string, len(titles))
	sources := make([]string, len(titles))
	for i, title := range titles {
		d, src, err := c.prepare(title)
		if err != nil {
			return err
		}
		display[i], sources[i] = d, src
	}

	slugs, err := c.p.SanitizeAll(ctx, sources, c.fallback, c.sctx)
	if err != nil {
		return err
	}

	for i := range slugs {
		if err := c.enc.Encode(entry{Title: display[i], Slug: slugs[i]}); err != nil {
			return err
		}
	}
	return nil
}

// convertLines handles one title per line. Blank lines are skipped.
func (c *converter) convertLines(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		display, src, err := c.prepare(line)
		if err != nil {
			return err
		}
		if err := c.enc.Encode(entry{
			Title: display,
			Slug:  c.p.SanitizeTitle(ctx, src, c.fallback, c.sctx),
		}); err != nil {
			return err
		}
	}
	return sc.Err()
}

// prepare returns the display title and the text the slug is built from.
// Markdown titles are rendered first so link targets and markup do not
// leak into the slug.
func (c *converter) prepare(title string) (display, src string, err error) {
	if !c.markdown {
		return sanitizer.Title(title), title, nil
	}
	html, err := sanitizer.MarkdownTitle(title)
	if err != nil {
		return "", "", err
	}
	return html, html, nil
}
