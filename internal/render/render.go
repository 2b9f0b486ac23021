// ============================================================================
// strhelp - String helpers for data file collections
// ============================================================================
//
// Package:     render
// Description: Renders command results as styled text, JSON or YAML
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	sherror "github.com/msto63/strhelp/foundation/core/error"
	"github.com/msto63/strhelp/foundation/utils/strhelp"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a format name into a Format
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return FormatText, sherror.Newf("unknown output format %q", name).
			WithCode(sherror.CodeInvalidInput).
			WithOperation("render.ParseFormat").
			WithDetail("expected", "text, json or yaml")
	}
}

// Color palette
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles used for text output
type Styles struct {
	Header lipgloss.Style
	Label  lipgloss.Style
	Member lipgloss.Style
	Count  lipgloss.Style
	True   lipgloss.Style
	False  lipgloss.Style
}

// DefaultStyles returns the colored style set
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true),
		Label:  lipgloss.NewStyle().Foreground(ColorMuted),
		Member: lipgloss.NewStyle(),
		Count:  lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
		True:   lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
		False:  lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	}
}

// PlainStyles returns styles that render text unchanged
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Label: plain, Member: plain, Count: plain, True: plain, False: plain}
}

// Field is a labelled value in a result record
type Field struct {
	Label string
	Value interface{}
}

// Renderer writes results in one format
type Renderer struct {
	out    io.Writer
	format Format
	styles Styles
}

// New creates a renderer writing to out
func New(out io.Writer, format Format, color bool) *Renderer {
	styles := PlainStyles()
	if color {
		styles = DefaultStyles()
	}
	return &Renderer{out: out, format: format, styles: styles}
}

// Format returns the renderer's output format
func (r *Renderer) Format() Format {
	return r.format
}

// Groups renders named groups, one header per group followed by its members
func (r *Renderer) Groups(groups []strhelp.Group) error {
	if groups == nil {
		groups = []strhelp.Group{}
	}

	switch r.format {
	case FormatJSON:
		return r.json(groups)
	case FormatYAML:
		return r.yaml(groups)
	}

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		name := g.Name
		if name == "" {
			name = `""`
		}
		fmt.Fprintf(&b, "%s %s\n", r.styles.Header.Render(name), r.styles.Count.Render(fmt.Sprintf("(%d)", g.Len())))
		for _, m := range g.Members {
			fmt.Fprintf(&b, "  %s\n", r.styles.Member.Render(m))
		}
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Buckets renders unnamed partitions. Each bucket is named after the range
// of strings it holds.
func (r *Renderer) Buckets(buckets [][]string) error {
	groups := make([]strhelp.Group, len(buckets))
	for i, bucket := range buckets {
		groups[i] = strhelp.Group{Name: BucketName(bucket), Members: bucket}
	}
	return r.Groups(groups)
}

// BucketName names a bucket by its first and last member
func BucketName(bucket []string) string {
	switch len(bucket) {
	case 0:
		return ""
	case 1:
		return bucket[0]
	default:
		return bucket[0] + " .. " + bucket[len(bucket)-1]
	}
}

// Fields renders a single record. Text output aligns the labels.
func (r *Renderer) Fields(fields ...Field) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		record := make(map[string]interface{}, len(fields))
		for _, f := range fields {
			record[f.Label] = f.Value
		}
		if r.format == FormatJSON {
			return r.json(record)
		}
		return r.yaml(record)
	}

	width := 0
	for _, f := range fields {
		width = max(width, len(f.Label))
	}

	var b strings.Builder
	for _, f := range fields {
		label := r.styles.Label.Render(f.Label + ":")
		pad := strings.Repeat(" ", width-len(f.Label)+1)
		fmt.Fprintf(&b, "%s%s%s\n", label, pad, r.value(f.Value))
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// Records renders one record per input, keyed by the input itself
func (r *Renderer) Records(keyLabel string, keys []string, valueLabel string, values []interface{}) error {
	switch r.format {
	case FormatJSON, FormatYAML:
		records := make([]map[string]interface{}, len(keys))
		for i, k := range keys {
			records[i] = map[string]interface{}{keyLabel: k, valueLabel: values[i]}
		}
		if r.format == FormatJSON {
			return r.json(records)
		}
		return r.yaml(records)
	}

	var b strings.Builder
	for i, k := range keys {
		fmt.Fprintf(&b, "%s\t%s\n", r.styles.Label.Render(k), r.value(values[i]))
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// List renders a list of strings, one per line in text output
func (r *Renderer) List(items []string) error {
	if items == nil {
		items = []string{}
	}

	switch r.format {
	case FormatJSON:
		return r.json(items)
	case FormatYAML:
		return r.yaml(items)
	}

	var b strings.Builder
	for _, item := range items {
		b.WriteString(r.styles.Member.Render(item))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) value(v interface{}) string {
	switch val := v.(type) {
	case bool:
		if val {
			return r.styles.True.Render("true")
		}
		return r.styles.False.Render("false")
	case []string:
		return r.styles.Member.Render(strings.Join(val, ", "))
	default:
		return r.styles.Member.Render(fmt.Sprint(val))
	}
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sherror.Wrap(err, "failed to encode JSON").WithCode(sherror.CodeInternal)
	}
	return nil
}

func (r *Renderer) yaml(v interface{}) error {
	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return sherror.Wrap(err, "failed to encode YAML").WithCode(sherror.CodeInternal)
	}
	return enc.Close()
}
