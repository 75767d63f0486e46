// Package executor applies plans to the filesystem.
//
// In real mode actions run in order and execution halts at the first
// failure; there is no rollback. Actions that touch a conflicting path of a
// plan without force are skipped.
//
// In dry-run mode nothing is mutated. The executor keeps a virtual overlay
// of what earlier actions would have created or removed and checks every
// action's preconditions against it, reporting each as simulated or failed.
//
// Copies (CopyFileBack, CopyFileIntoPackage) are written to a temporary
// file in the destination directory, synced, then renamed into place. The
// temporary file is removed on every failure path.
package executor
