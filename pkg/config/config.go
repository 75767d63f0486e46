package config

import "os"

// Config is the decoded stau configuration
type Config struct {
	// Dir is the dotfiles directory as configured (may contain ~ or be empty)
	Dir string `koanf:"dir"`

	// Target is the target directory as configured (may contain ~ or be empty)
	Target string `koanf:"target"`

	Walker      Walker      `koanf:"walker"`
	Uninstall   Uninstall   `koanf:"uninstall"`
	Clean       Clean       `koanf:"clean"`
	Permissions Permissions `koanf:"permissions"`
}

// Walker controls package enumeration
type Walker struct {
	// Reserved names at a package root that are never mirrored
	Reserved []string `koanf:"reserved"`
}

// Uninstall controls uninstall behavior
type Uninstall struct {
	// CopyBack replaces managed links with copies of the package files
	CopyBack bool `koanf:"copy_back"`
	// Prune removes directories left empty once links are removed. The
	// planner cannot tell which of them existed before install.
	Prune bool `koanf:"prune"`
}

// Clean controls the broken link scan
type Clean struct {
	// SkipDirs are directory names under the target that are not descended into
	SkipDirs []string `koanf:"skip_dirs"`
}

// Permissions holds modes used when creating filesystem objects
type Permissions struct {
	Directory os.FileMode `koanf:"directory"`
}

// Default returns the embedded defaults, decoded
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUser: true, SkipEnv: true, SkipRoot: true})
	if err != nil {
		// The embedded defaults are part of the binary; failing to parse
		// them is a build problem.
		panic(err)
	}
	return cfg
}
