// Package sdet holds the regression and user profile suites used in the
// release branch and hotfix workflow exercises.
package sdet
