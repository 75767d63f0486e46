// Package status reports how much of each package is installed.
//
// The reporter is read-only. It walks a package with the same walker the
// planner uses and classifies every entry's target path with the prober, so
// what status reports as linked is exactly what install would leave alone.
package status
