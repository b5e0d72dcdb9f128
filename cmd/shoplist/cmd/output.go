package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// printer renders command results in the selected format.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(format string, w io.Writer) (*printer, error) {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return &printer{format: format, w: w}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// print writes v as JSON or YAML, or calls table for the table format.
func (p *printer) print(v any, table func(tw *tabwriter.Writer)) error {
	switch p.format {
	case formatJSON:
		data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = p.w.Write(data)
		return err
	default:
		tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
		table(tw)
		return tw.Flush()
	}
}

type messageView struct {
	Message string `json:"message"`
}

// message prints a one-line result.
func (p *printer) message(msg string) error {
	return p.print(messageView{Message: msg}, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, msg)
	})
}
