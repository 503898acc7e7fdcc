package models

// CSVHeaders are the columns of an exported test report row.
var CSVHeaders = []string{"test_name", "status", "duration"}

// Summary tallies a test run.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// PassRate returns the percentage of passed tests, or 0 for an empty run.
func (s Summary) PassRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total) * 100
}

// Consistent reports whether every test is counted exactly once.
func (s Summary) Consistent() bool {
	return s.Total == s.Passed+s.Failed
}
