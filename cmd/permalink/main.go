// Command permalink turns post titles into underscore-separated slugs.
//
// Titles come from the arguments or, when there are none, from standard
// input, one per line:
//
//	permalink "Tom & Jerry"                  # tom_jerry
//	permalink --context save "It’s 5 × 3"    # its_5_x_3
//	cat titles.txt | permalink -o json
//	permalink --markdown -o yaml "[Go](https://go.dev) *tips*"
//
// Logging is configured through LOG_LEVEL, LOG_FORMAT and SENTRY_DSN and is
// written to standard error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/permalink"
	"github.com/dmitrymomot/permalink/pkg/config"
	"github.com/dmitrymomot/permalink/pkg/hook"
	"github.com/dmitrymomot/permalink/pkg/logger"
	"github.com/dmitrymomot/permalink/pkg/slug"
)

const flushTimeout = 2 * time.Second

// Config is read from the environment.
type Config struct {
	// Context is the default sanitize context when --context is not given.
	Context string `env:"SLUG_CONTEXT" envDefault:"display"`

	// Output is the default output format when --output is not given.
	Output string `env:"SLUG_OUTPUT" envDefault:"text"`

	Log logger.Config
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()

	// os.Exit skips deferred calls; send buffered Sentry records first.
	logger.Flush(flushTimeout)
	os.Exit(code)
}

func run(ctx context.Context, cfg Config, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("permalink", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	sctx := flags.StringP("context", "c", cfg.Context, "sanitize context: display, save or query")
	output := flags.StringP("output", "o", cfg.Output, "output format: text, json or yaml")
	asJSON := flags.Bool("json", false, "shorthand for --output json")
	markdown := flags.BoolP("markdown", "m", false, "treat titles as Markdown")
	fallback := flags.String("fallback", "", "slug to print when a title sanitizes to nothing")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *asJSON {
		*output = formatJSON
	}

	log, err := logger.NewWithWriter(stderr, cfg.Log, hook.LogExtractor)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	enc, err := newEncoder(*output, stdout)
	if err != nil {
		log.Error("invalid output format", slog.Any("error", err))
		return 2
	}

	p, err := permalink.New(permalink.WithLogger(log))
	if err != nil {
		log.Error("failed to set up permalinks", slog.Any("error", err))
		return 1
	}

	c := &converter{
		p:        p,
		sctx:     slug.ParseContext(*sctx),
		fallback: *fallback,
		markdown: *markdown,
		enc:      enc,
	}

	if titles := flags.Args(); len(titles) > 0 {
		err = c.convertAll(ctx, titles)
	} else {
		err = c.convertLines(ctx, stdin)
	}
	if err == nil {
		err = enc.Close()
	}
	if err != nil {
		log.Error("failed to convert titles", slog.Any("error", err))
		return 1
	}
	return 0
}
