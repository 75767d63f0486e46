// Package filesystem provides implementations of the types.FS interface.
//
// NewOS is the real filesystem. Tests wrap it with testutil.FaultFS to
// inject failures.
package filesystem
