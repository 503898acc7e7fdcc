// Package undoing holds the suites used to practice restore, reset and
// revert. The registration suite is where a deliberate bug gets committed
// and then undone.
package undoing
