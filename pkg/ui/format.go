package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format names an output renderer
type Format string

const (
	FormatAuto     Format = "auto"
	FormatTerminal Format = "term"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

var formatAliases = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
	"yaml":     FormatYAML,
	"yml":      FormatYAML,
}

func (f Format) String() string {
	return string(f)
}

// IsMachine reports whether f is meant for other programs. Anything else
// a command prints must then stay off stdout.
func (f Format) IsMachine() bool {
	return f == FormatJSON || f == FormatYAML
}

// Names lists the canonical format names, for help and completion
func Names() []string {
	return []string{string(FormatAuto), string(FormatTerminal), string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat accepts a canonical name or an alias, case-insensitively
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return FormatAuto, fmt.Errorf("unknown format %q (want one of %s)", s, strings.Join(Names(), ", "))
}

// DetectFormat resolves FormatAuto for w. Only a color-capable terminal
// gets FormatTerminal; buffers, pipes and NO_COLOR get plain text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	f, ok := w.(*os.File)
	if !ok {
		return FormatText
	}
	if fd := f.Fd(); !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
