package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/patrickwarner/gitdrills/internal/fixtures"
	"github.com/patrickwarner/gitdrills/internal/middleware"
	"github.com/patrickwarner/gitdrills/internal/observability"
)

// DrillListing is the body of GET /drills.
type DrillListing struct {
	Drills map[string][]string `json:"drills"`
}

// ListDrillsHandler handles GET /drills, listing every drill with its case names.
func (s *Server) ListDrillsHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "drills"
	const method = "GET"
	defer func() { s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start)) }()

	listing := DrillListing{Drills: make(map[string][]string)}
	for _, drill := range s.Catalog.Drills() {
		cases, err := s.Catalog.Cases(drill)
		if err != nil {
			// Drills() and Cases() read the same immutable map.
			middleware.LoggerFromRequest(r, s.Logger).Error("list cases", zap.String("drill", drill), zap.Error(err))
			continue
		}
		listing.Drills[drill] = cases
	}

	status := writeJSON(w, http.StatusOK, listing)
	s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
}

// FixtureHandler handles GET /drills/{drill}/{case}. It replies with the
// canned body and the canned status code.
func (s *Server) FixtureHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	const endpoint = "fixture"
	const method = "GET"
	defer func() { s.Metrics.RecordRequestLatency(endpoint, method, time.Since(start)) }()

	vars := mux.Vars(r)
	drill, name := vars["drill"], vars["case"]

	_, span := observability.Tracer("api").Start(r.Context(), "fixtures.Lookup",
		trace.WithAttributes(attribute.String("drill", drill), attribute.String("case", name)))
	resp, err := s.Catalog.Lookup(drill, name)
	if err != nil {
		span.RecordError(err)
	}
	span.End()
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, fixtures.ErrUnknownDrill) || errors.Is(err, fixtures.ErrUnknownCase) {
			status = http.StatusNotFound
			s.Metrics.IncrementFixtureMisses()
		}
		middleware.LoggerFromRequest(r, s.Logger).Debug("fixture lookup failed", zap.Error(err))
		status = writeError(w, status, err.Error())
		s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
		return
	}

	s.Metrics.IncrementFixtureServed(drill)

	if resp.Status == http.StatusNoContent || resp.Status == http.StatusNotModified || resp.Status < 200 {
		w.WriteHeader(resp.Status)
		s.Metrics.IncrementRequests(endpoint, method, statusLabel(resp.Status))
		return
	}
	status := writeJSON(w, resp.Status, resp)
	s.Metrics.IncrementRequests(endpoint, method, statusLabel(status))
}
