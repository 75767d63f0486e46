// Package types defines the data model shared by stau's components: packages,
// target states, actions, plans, conflicts and results, plus the FS interface
// every filesystem access goes through.
package types
