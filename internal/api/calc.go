package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickwarner/gitdrills/internal/sampleapp"
)

// DivideHandler handles GET /calc/divide?a=..&b=.. using the sample app helper.
func (s *Server) DivideHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "divide"
	const method = "GET"
	defer func() { s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start)) }()

	q := r.URL.Query()
	a, errA := strconv.ParseFloat(q.Get("a"), 64)
	b, errB := strconv.ParseFloat(q.Get("b"), 64)
	if errA != nil || errB != nil || !finite(a) || !finite(b) {
		status := writeError(w, http.StatusBadRequest, "a and b must be finite numbers")
		s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
		return
	}

	result, err := sampleapp.Divide(a, b)
	if err != nil {
		status := writeError(w, http.StatusBadRequest, err.Error())
		s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
		return
	}
	if !finite(result) {
		status := writeError(w, http.StatusBadRequest, "result out of range")
		s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
		return
	}

	status := writeJSON(w, http.StatusOK, map[string]any{"status": http.StatusOK, "result": result})
	s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
