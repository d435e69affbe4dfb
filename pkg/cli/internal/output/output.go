// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ohler55/ojg/jp"
	"gopkg.in/yaml.v3"
)

// Formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrNoMatch is returned when a --select path matches nothing.
var ErrNoMatch = errors.New("no match")

// Printer writes command results in the configured format.
type Printer struct {
	Out    io.Writer
	Format string

	// Select is a JSONPath applied to the structured form of a result
	// before it is written.
	Select string
}

// Print writes v. In text format textFn renders it; without a textFn the
// value is written as JSON.
func (p *Printer) Print(v any, textFn func(w io.Writer) error) error {
	if p.Select != "" {
		selected, err := Select(v, p.Select)
		if err != nil {
			return err
		}
		v = selected
		textFn = func(w io.Writer) error { return Plain(w, selected) }
	}

	switch p.Format {
	case FormatJSON:
		return JSON(p.Out, v)
	case FormatYAML:
		return YAML(p.Out, v)
	default:
		if textFn == nil {
			return JSON(p.Out, v)
		}
		return textFn(p.Out)
	}
}

// Select evaluates a JSONPath against v. A single match is returned as is;
// several are returned as a list.
func Select(v any, path string) (any, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid --select path %q: %w", path, err)
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, err
	}

	results := expr.Get(data)
	switch len(results) {
	case 0:
		return nil, fmt.Errorf("%w for %s", ErrNoMatch, path)
	case 1:
		return results[0], nil
	default:
		return results, nil
	}
}

// Plain writes strings as they are and other values as compact JSON, one
// list element per line.
func Plain(w io.Writer, v any) error {
	if list, ok := v.([]any); ok {
		for _, item := range list {
			if err := Plain(w, item); err != nil {
				return err
			}
		}
		return nil
	}
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// JSON writes indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Table creates an aligned table writer.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Warn prints a warning message.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}
