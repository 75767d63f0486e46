// Package planner turns target classifications into ordered action lists.
//
// Every command is a fresh read-plan cycle: the planner walks the package,
// classifies each target path with the prober and emits Actions for what
// must change and Conflicts for what it refuses to touch. Planning never
// mutates the filesystem, so a plan can be shown, simulated or applied.
//
// Ordering guarantees:
//
//   - CreateDirectory for a parent precedes any action below it
//   - RemovePath (force only) precedes the action it clears the way for
//   - RemoveEmptyDirectory follows every removal below it, deepest first
package planner
