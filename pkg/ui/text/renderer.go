// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/ui/view"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result *commands.Result) error {
	v := view.Build(result)

	var b strings.Builder
	b.WriteString(v.Header + "\n")
	for _, s := range v.Sections {
		if s.Title != "" {
			b.WriteString(s.Title + "\n")
		}
		for _, l := range s.Lines {
			line := fmt.Sprintf("  %-11s %s", l.Label, l.Text)
			if l.Detail != "" {
				line += " (" + l.Detail + ")"
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString(v.Footer.Text + "\n")

	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	info := view.DescribeError(err)
	msg := fmt.Sprintf("Error [%s]: %s\n", info.Code, info.Message)
	if info.Hint != "" {
		msg += "Hint: " + info.Hint + "\n"
	}
	_, werr := io.WriteString(r.output, msg)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
