// Package advanced holds the inventory suite used with stash and bisect and
// the payment integration suite used with cherry-pick.
package advanced
