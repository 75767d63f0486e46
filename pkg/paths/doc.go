// Package paths resolves the two root directories stau works with.
//
// The dotfiles directory holds one subdirectory per package; the target
// directory (usually $HOME) is where package files are mirrored as symlinks.
//
// # Resolution order
//
//   - explicit value (command line flag or config file)
//   - STAU_DIR / STAU_TARGET environment variables
//   - ~/dotfiles for the dotfiles directory, $HOME for the target
//
// Values starting with ~ are expanded and every path is made absolute and
// cleaned before use.
//
// # XDG
//
// The user configuration file and the log file live under the XDG config and
// state directories (see ConfigDir and StateDir).
package paths
