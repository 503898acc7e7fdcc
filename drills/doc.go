// Package drills groups the practice suites used in the version-control
// exercises. Each sub-package is one chapter. Its tests assert on literal
// values so that editing a single line yields a readable diff, a failing test,
// or a merge conflict, depending on the exercise.
//
// Run a chapter with:
//
//	go test ./drills/branching/...
package drills
