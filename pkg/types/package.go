package types

import "path/filepath"

// Package is a directory under the dotfiles directory whose files are
// mirrored into the target directory
type Package struct {
	// Name is the directory name
	Name string `json:"name" yaml:"name"`

	// Path is the absolute path to the package directory
	Path string `json:"path" yaml:"path"`
}

// FilePath returns the absolute path of an entry inside the package
func (p Package) FilePath(entry string) string {
	return filepath.Join(p.Path, filepath.FromSlash(entry))
}

// ScriptHookKind distinguishes package scripts
type ScriptHookKind string

const (
	// HookSetup runs after a successful install
	HookSetup ScriptHookKind = "setup"

	// HookTeardown runs before an uninstall
	HookTeardown ScriptHookKind = "teardown"
)

// Environment variables passed to package scripts
const (
	ScriptEnvDir     = "STAU_DIR"
	ScriptEnvPackage = "STAU_PACKAGE"
	ScriptEnvTarget  = "STAU_TARGET"
)

// ScriptHook asks the caller to run a package script
type ScriptHook struct {
	Kind    ScriptHookKind    `json:"kind" yaml:"kind"`
	Package string            `json:"package" yaml:"package"`
	Script  string            `json:"script" yaml:"script"`
	Dir     string            `json:"dir" yaml:"dir"`
	Env     map[string]string `json:"env" yaml:"env"`
}

// HookOutcome records whether and how a script hook ran
type HookOutcome struct {
	Hook    ScriptHook `json:"hook" yaml:"hook"`
	Ran     bool       `json:"ran" yaml:"ran"`
	Skipped string     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error   string     `json:"error,omitempty" yaml:"error,omitempty"`
}
