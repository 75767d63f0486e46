// Package packs discovers the packages of a dotfiles directory and
// enumerates the files each package mirrors into the target.
//
// A package is any non-hidden directory directly under the dotfiles
// directory. Its optional .stau.toml declares extra ignore globs.
//
// Walk yields package-relative, slash-separated entries lazily and in
// lexical order per directory. It skips:
//
//   - reserved names at the package root (.git, .gitignore, .stau.toml, ...)
//   - setup.sh and teardown.sh at any depth
//   - entries matching the package's ignore globs
//   - symlinks and special files; only regular files are mirrored
package packs
