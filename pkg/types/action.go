package types

import (
	"fmt"
	"os"
)

// ActionKind identifies a filesystem mutation
type ActionKind string

const (
	// ActionCreateSymlink creates Target pointing at Source
	ActionCreateSymlink ActionKind = "create_symlink"

	// ActionRemoveSymlink removes the link at Target
	ActionRemoveSymlink ActionKind = "remove_symlink"

	// ActionCopyFileBack replaces the link at Target with a copy of Source
	ActionCopyFileBack ActionKind = "copy_file_back"

	// ActionCopyFileIntoPackage copies the file at Source to Target inside
	// the package
	ActionCopyFileIntoPackage ActionKind = "copy_file_into_package"

	// ActionCreateDirectory creates the directory at Target
	ActionCreateDirectory ActionKind = "create_directory"

	// ActionRemoveEmptyDirectory removes Target if it is an empty directory
	ActionRemoveEmptyDirectory ActionKind = "remove_empty_directory"

	// ActionRemovePath deletes whatever exists at Target, recursively
	ActionRemovePath ActionKind = "remove_path"
)

// Action is a single planned filesystem mutation. Target is always the path
// the action writes or removes.
type Action struct {
	Kind   ActionKind `json:"kind" yaml:"kind"`
	Source string     `json:"source,omitempty" yaml:"source,omitempty"`
	Target string     `json:"target" yaml:"target"`
	Entry  string     `json:"entry,omitempty" yaml:"entry,omitempty"`

	// Mode is the permission for created directories and copied files
	Mode os.FileMode `json:"mode,omitempty" yaml:"mode,omitempty"`

	// Replace lets CreateSymlink atomically replace an existing file
	Replace bool `json:"replace,omitempty" yaml:"replace,omitempty"`
}

// Describe returns a human readable one-line description
func (a Action) Describe() string {
	switch a.Kind {
	case ActionCreateSymlink:
		if a.Replace {
			return fmt.Sprintf("replace %s with link to %s", a.Target, a.Source)
		}
		return fmt.Sprintf("link %s -> %s", a.Target, a.Source)
	case ActionRemoveSymlink:
		return fmt.Sprintf("remove link %s", a.Target)
	case ActionCopyFileBack:
		return fmt.Sprintf("replace link %s with a copy of %s", a.Target, a.Source)
	case ActionCopyFileIntoPackage:
		return fmt.Sprintf("copy %s into package as %s", a.Source, a.Target)
	case ActionCreateDirectory:
		return fmt.Sprintf("create directory %s", a.Target)
	case ActionRemoveEmptyDirectory:
		return fmt.Sprintf("remove empty directory %s", a.Target)
	case ActionRemovePath:
		return fmt.Sprintf("delete %s", a.Target)
	default:
		return fmt.Sprintf("%s %s", a.Kind, a.Target)
	}
}
