package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errUnknownFormat = errors.New("unknown output format")

type entry struct {
	Title string `json:"title" yaml:"title"`
	Slug  string `json:"slug" yaml:"slug"`
}

// encoder writes entries in one output format. Close flushes buffered output.
type encoder interface {
	Encode(e entry) error
	Close() error
}

func newEncoder(format string, w io.Writer) (encoder, error) {
	bw := bufio.NewWriter(w)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", formatText:
		return &textEncoder{w: bw}, nil
	case formatJSON:
		enc := json.NewEncoder(bw)
		enc.SetEscapeHTML(false)
		return &jsonEncoder{w: bw, enc: enc}, nil
	case formatYAML:
		return &yamlEncoder{w: bw}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownFormat, format)
	}
}

// textEncoder prints one slug per line.
type textEncoder struct {
	w *bufio.Writer
}

func (e *textEncoder) Encode(en entry) error {
	_, err := fmt.Fprintln(e.w, en.Slug)
	return err
}

func (e *textEncoder) Close() error { return e.w.Flush() }

// jsonEncoder prints JSON lines.
type jsonEncoder struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func (e *jsonEncoder) Encode(en entry) error { return e.enc.Encode(en) }

func (e *jsonEncoder) Close() error { return e.w.Flush() }

// yamlEncoder collects entries and writes them as a single sequence on Close.
type yamlEncoder struct {
	w       *bufio.Writer
	entries []entry
}

func (e *yamlEncoder) Encode(en entry) error {
	e.entries = append(e.entries, en)
	return nil
}

func (e *yamlEncoder) Close() error {
	if len(e.entries) > 0 {
		enc := yaml.NewEncoder(e.w)
		enc.SetIndent(2)
		if err := enc.Encode(e.entries); err != nil {
			return err
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return e.w.Flush()
}
