// Package branching holds the login, users API and search suites edited on
// separate branches in the branching exercises.
package branching

// BaseURL is the login service the suites pretend to call.
const BaseURL = "https://example.com"

// APIBaseURL is the users API root.
const APIBaseURL = "https://api.example.com/v1"
