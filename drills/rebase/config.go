// Package rebase holds the reporting feature suite and its settings, edited
// in many small commits and then squashed or reworded with interactive rebase.
package rebase

import "time"

// Test execution settings.
const (
	Timeout      = 30 * time.Second // exercise 8.5 changes this
	MaxRetries   = 3
	BaseURL      = "https://staging.example.com/api"
	ReportFormat = "html" // html, csv or json
)
