// Package merging holds the order and payment suites. Two teammates edit the
// payment settings on different branches to produce a merge conflict.
package merging
