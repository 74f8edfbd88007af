package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cardcheck/pkg/card"
	"github.com/dmitrymomot/cardcheck/pkg/scanner"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatText = "text"
)

var errUnknownFormat = errors.New("unknown output format")

// printer writes values in one output format. JSON is one object per line,
// YAML one document per value.
type printer struct {
	w      io.Writer
	format string
	yaml   *yaml.Encoder
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	p := &printer{w: w, format: format}
	switch format {
	case formatJSON, formatText:
	case formatYAML:
		p.yaml = yaml.NewEncoder(w)
		p.yaml.SetIndent(2)
	default:
		return nil, fmt.Errorf("%w %q: use json, yaml or text", errUnknownFormat, format)
	}
	return p, nil
}

func (p *printer) results(results ...card.Result) error {
	if p.format == formatText {
		tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
		for _, r := range results {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", displayNumber(r.Number), validity(r.Valid), r.Brand)
		}
		return tw.Flush()
	}
	for _, r := range results {
		if err := p.encode(r); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) report(r *scanner.Report) error {
	if p.format != formatText {
		return p.encode(r)
	}
	_, _ = fmt.Fprintf(p.w, "image:   %s\n", r.ImagePath)
	_, _ = fmt.Fprintf(p.w, "message: %s\n", r.Message)
	if r.Note != "" {
		_, _ = fmt.Fprintf(p.w, "note:    %s\n", r.Note)
	}
	if len(r.Results) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(p.w)
	return p.results(r.Results...)
}

func (p *printer) encode(v any) error {
	if p.yaml != nil {
		return p.yaml.Encode(v)
	}
	return json.NewEncoder(p.w).Encode(v)
}

func (p *printer) close() error {
	if p.yaml != nil {
		return p.yaml.Close()
	}
	return nil
}

func validity(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}

func displayNumber(n string) string {
	if n == "" {
		return "-"
	}
	return n
}
