package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Renderer writes a report to w.
type Renderer interface {
	Render(w io.Writer, r Report) error
}

// NewRenderer returns the renderer for format ("text", "json" or "yaml").
// styles is only used by the text renderer.
func NewRenderer(format string, styles Styles) (Renderer, error) {
	switch format {
	case "text", "":
		return TextRenderer{Styles: styles}, nil
	case "json":
		return JSONRenderer{}, nil
	case "yaml":
		return YAMLRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// TextRenderer prints one line per result followed by a summary line.
type TextRenderer struct {
	Styles Styles
}

// Render implements Renderer.
func (t TextRenderer) Render(w io.Writer, r Report) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, t.line(res)); err != nil {
			return err
		}
	}
	if r.Summary.Total > 1 {
		summary := fmt.Sprintf("%d checked, %d valid, %d invalid", r.Summary.Total, r.Summary.Valid, r.Summary.Invalid)
		if _, err := fmt.Fprintln(w, t.Styles.Summary.Render(summary)); err != nil {
			return err
		}
	}
	return nil
}

func (t TextRenderer) line(res Result) string {
	input := fmt.Sprintf("%-11s", res.Input)
	if !res.Valid {
		return strings.Join([]string{
			t.Styles.Invalid.Render("✗"),
			input,
			t.Styles.Muted.Render(res.Reason),
		}, "  ")
	}

	parts := []string{t.Styles.Valid.Render("✓"), input}
	if res.BirthDate != "" {
		parts = append(parts, res.BirthDate, fmt.Sprintf("%-6s", res.Sex))
	}
	if res.Reference != "" {
		parts = append(parts, t.Styles.Muted.Render(res.Reference))
	}
	return strings.Join(parts, "  ")
}

// JSONRenderer writes the report as indented JSON.
type JSONRenderer struct{}

// Render implements Renderer.
func (JSONRenderer) Render(w io.Writer, r Report) error {
	if r.Results == nil {
		r.Results = []Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// YAMLRenderer writes the report as a YAML document.
type YAMLRenderer struct{}

// Render implements Renderer.
func (YAMLRenderer) Render(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
