// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/ui/styles"
	"github.com/arthur-debert/stau/pkg/ui/view"
	"github.com/pterm/pterm"
)

// Renderer paints views with lipgloss styles and pterm prefixes
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderResult renders a command result
func (r *Renderer) RenderResult(result *commands.Result) error {
	v := view.Build(result)

	var b strings.Builder
	b.WriteString(styles.Render("Header", v.Header))
	b.WriteString("\n")
	for _, s := range v.Sections {
		if s.Title != "" {
			b.WriteString(styles.Render("Title", s.Title))
			b.WriteString("\n")
		}
		for _, l := range s.Lines {
			b.WriteString(renderLine(l))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(prefix(v.Footer.Tone))
	b.WriteString(" ")
	b.WriteString(styles.Render(string(v.Footer.Tone), v.Footer.Text))
	b.WriteString("\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error and its hint
func (r *Renderer) RenderError(err error) error {
	info := view.DescribeError(err)
	msg := fmt.Sprintf("%s %s %s\n", pterm.Error.Prefix.Text, styles.Render("Error", info.Code), info.Message)
	if info.Hint != "" {
		msg += fmt.Sprintf("%s %s\n", pterm.Info.Prefix.Text, styles.Render("Muted", info.Hint))
	}
	_, werr := io.WriteString(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}

func renderLine(l view.Line) string {
	line := "  " + styles.Get("Label").Inherit(styles.Get(string(l.Tone))).Render(l.Label) + " " + l.Text
	if l.Detail != "" {
		line += "  " + styles.Render("Detail", l.Detail)
	}
	return line
}

func prefix(t view.Tone) string {
	switch t {
	case view.ToneError:
		return pterm.Error.Prefix.Text
	case view.ToneWarning:
		return pterm.Warning.Prefix.Text
	case view.ToneSuccess:
		return pterm.Success.Prefix.Text
	default:
		return pterm.Info.Prefix.Text
	}
}
