// Package ui provides a unified interface for rendering command output in
// different formats: terminal (rich), text (plain), JSON and YAML.
package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/ui/json"
	"github.com/arthur-debert/stau/pkg/ui/terminal"
	"github.com/arthur-debert/stau/pkg/ui/text"
	"github.com/arthur-debert/stau/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result *commands.Result) error

	// RenderError renders an error with its hint
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format. FormatAuto inspects output.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
