// Package internal holds the plumbing shared by the command packages: the
// per-invocation session that resolves directories and wires the planner
// and executor, the command Result, flag validation and script hooks.
package internal
