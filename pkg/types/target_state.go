package types

import "fmt"

// TargetKind classifies what exists at a target path
type TargetKind string

const (
	// TargetAbsent means nothing exists at the path
	TargetAbsent TargetKind = "absent"

	// TargetManagedLink is a symlink into the package being processed
	TargetManagedLink TargetKind = "managed_link"

	// TargetForeignLink is any other symlink
	TargetForeignLink TargetKind = "foreign_link"

	// TargetRegularFile is a regular (or special) file
	TargetRegularFile TargetKind = "regular_file"

	// TargetDirectory is a real directory
	TargetDirectory TargetKind = "directory"
)

// TargetState is the classification of one target path. It is recomputed on
// every invocation and never persisted.
type TargetState struct {
	Kind TargetKind `json:"kind" yaml:"kind"`
	Path string     `json:"path" yaml:"path"`

	// Package is set for managed links, and for foreign links pointing into
	// another package of the dotfiles directory
	Package string `json:"package,omitempty" yaml:"package,omitempty"`

	// Entry is the package-relative path a link points at, when it points
	// into a package
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`

	// Destination is the link text as stored on disk
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`

	// Broken is set for links whose destination does not exist
	Broken bool `json:"broken,omitempty" yaml:"broken,omitempty"`
}

// IsLink reports whether the state describes a symlink
func (s TargetState) IsLink() bool {
	return s.Kind == TargetManagedLink || s.Kind == TargetForeignLink
}

// Describe returns a short human readable description
func (s TargetState) Describe() string {
	switch s.Kind {
	case TargetAbsent:
		return "nothing"
	case TargetManagedLink:
		if s.Broken {
			return fmt.Sprintf("broken link to %s", s.Destination)
		}
		return fmt.Sprintf("link to %s/%s", s.Package, s.Entry)
	case TargetForeignLink:
		desc := "link to " + s.Destination
		if s.Package != "" {
			desc = fmt.Sprintf("link into package %s", s.Package)
		}
		if s.Broken {
			desc = "broken " + desc
		}
		return desc
	case TargetRegularFile:
		return "existing file"
	case TargetDirectory:
		return "existing directory"
	default:
		return string(s.Kind)
	}
}
