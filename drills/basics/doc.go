// Package basics tests the sample app helpers. It is the file staged hunk by
// hunk in the partial staging exercise.
package basics
