// Package testutil provides utilities for testing stau components.
//
// Key components:
//   - TestEnvironment: a temp directory holding a dotfiles dir and a target
//     dir, with helpers to create package files and target objects
//   - HashTree: a content hash of a directory tree, used to prove that
//     dry runs do not mutate anything
//   - FaultFS: a types.FS wrapper that fails chosen operations
//   - Assert helpers for links, files and absent paths
//
// All environments use the real filesystem under t.TempDir(); symlink
// semantics cannot be reproduced faithfully in memory.
package testutil
