// Package view turns command results into a format-neutral list of styled
// lines. The terminal and text renderers only differ in how they paint it.
package view

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/stau/pkg/commands"
	"github.com/arthur-debert/stau/pkg/types"
)

// Tone is the semantic style of a line
type Tone string

const (
	ToneSuccess Tone = "Success"
	ToneError   Tone = "Error"
	ToneWarning Tone = "Warning"
	ToneInfo    Tone = "Info"
	ToneMuted   Tone = "Muted"
)

// Line is one row of output
type Line struct {
	Tone   Tone
	Label  string
	Text   string
	Detail string
}

// Section groups lines under an optional title
type Section struct {
	Title string
	Lines []Line
}

// View is a rendered command result
type View struct {
	Header   string
	Sections []Section
	Footer   Line
}

// Build converts a command result into a View
func Build(r *commands.Result) View {
	v := View{Header: string(r.Command)}
	if r.Package != "" {
		v.Header += " " + r.Package
	}
	if r.DryRun {
		v.Header += " (dry run)"
	}

	switch r.Command {
	case types.CommandList:
		v.Sections = append(v.Sections, listSection(r.Status))
		v.Footer = Line{Tone: ToneMuted, Text: plural(len(r.Status), "package")}
		return v
	case types.CommandStatus:
		for _, st := range r.Status {
			v.Sections = append(v.Sections, statusSection(st))
		}
		v.Footer = Line{Tone: ToneMuted, Text: plural(len(r.Status), "package")}
		return v
	}

	if len(r.Actions) > 0 {
		s := Section{Title: "Actions"}
		for _, ar := range r.Actions {
			s.Lines = append(s.Lines, actionLine(ar))
		}
		v.Sections = append(v.Sections, s)
	}

	if r.Plan != nil && len(r.Plan.Conflicts) > 0 {
		s := Section{Title: "Conflicts"}
		for _, c := range r.Plan.Conflicts {
			s.Lines = append(s.Lines, Line{Tone: ToneWarning, Label: "conflict", Text: c.Path, Detail: c.Reason})
		}
		v.Sections = append(v.Sections, s)
	}

	if r.Hook != nil {
		v.Sections = append(v.Sections, Section{Lines: []Line{hookLine(r.Hook)}})
	}

	v.Footer = footer(r)
	return v
}

func actionLine(ar types.ActionResult) Line {
	l := Line{Label: string(ar.Status), Text: ar.Action.Describe(), Detail: ar.Message}
	switch ar.Status {
	case types.StatusApplied:
		l.Tone = ToneSuccess
	case types.StatusSimulated:
		l.Tone = ToneInfo
		l.Label = "would"
	case types.StatusSkipped:
		l.Tone = ToneWarning
	case types.StatusFailed:
		l.Tone = ToneError
	}
	return l
}

func hookLine(h *types.HookOutcome) Line {
	name := filepath.Base(h.Hook.Script)
	switch {
	case h.Error != "":
		return Line{Tone: ToneError, Label: "failed", Text: name, Detail: h.Error}
	case h.Ran:
		return Line{Tone: ToneSuccess, Label: "ran", Text: name}
	default:
		return Line{Tone: ToneMuted, Label: "skipped", Text: name, Detail: h.Skipped}
	}
}

func footer(r *commands.Result) Line {
	if r.Plan == nil || (r.Plan.IsEmpty() && !r.Plan.HasConflicts()) {
		return Line{Tone: ToneSuccess, Text: "nothing to do"}
	}

	counts := types.CountByStatus(r.Actions)
	var parts []string
	for _, st := range []types.ActionStatus{types.StatusApplied, types.StatusSimulated, types.StatusSkipped, types.StatusFailed} {
		if n := counts[st]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, st))
		}
	}
	if r.HasConflicts() {
		parts = append(parts, plural(len(r.Plan.Conflicts), "conflict"))
	}

	tone := ToneSuccess
	switch {
	case counts[types.StatusFailed] > 0:
		tone = ToneError
	case r.HasConflicts():
		tone = ToneWarning
	}
	return Line{Tone: tone, Text: strings.Join(parts, ", ")}
}

func listSection(pkgs []types.PackageStatus) Section {
	s := Section{}
	for _, st := range pkgs {
		detail := fmt.Sprintf("%d/%d linked", st.Linked, st.Total())
		if st.Broken > 0 {
			detail += fmt.Sprintf(", %s", plural(st.Broken, "broken link"))
		}
		s.Lines = append(s.Lines, Line{Tone: stateTone(st.State), Label: string(st.State), Text: st.Package, Detail: detail})
	}
	return s
}

func statusSection(st types.PackageStatus) Section {
	s := Section{Title: fmt.Sprintf("%s: %s (%d linked, %d missing, %d conflicted)",
		st.Package, st.State, st.Linked, st.Missing, st.Conflicted)}
	for _, e := range st.Entries {
		l := Line{Label: string(e.Condition), Text: e.Entry}
		switch e.Condition {
		case types.EntryLinked:
			l.Tone = ToneSuccess
		case types.EntryMissing:
			l.Tone = ToneMuted
		case types.EntryConflicted:
			l.Tone = ToneWarning
			l.Detail = e.Current.Describe()
		}
		s.Lines = append(s.Lines, l)
	}
	return s
}

func stateTone(s types.InstallState) Tone {
	switch s {
	case types.StateInstalled:
		return ToneSuccess
	case types.StatePartial:
		return ToneWarning
	default:
		return ToneMuted
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
