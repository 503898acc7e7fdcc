package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/patrickwarner/gitdrills/internal/fixtures"
	"github.com/patrickwarner/gitdrills/internal/middleware"
	"github.com/patrickwarner/gitdrills/internal/observability"
)

// Server groups dependencies for HTTP handlers.
type Server struct {
	Logger  *zap.Logger
	Catalog *fixtures.Catalog
	Metrics observability.MetricsRegistry
}

// NewServer constructs a Server. A nil metrics registry records nothing.
func NewServer(logger *zap.Logger, catalog *fixtures.Catalog, metrics observability.MetricsRegistry) *Server {
	if metrics == nil {
		metrics = observability.NewNoOpRegistry()
	}
	return &Server{
		Logger:  logger,
		Catalog: catalog,
		Metrics: metrics,
	}
}

// Router registers every route and the request middleware on a new router.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogger(s.Logger))

	r.HandleFunc("/health", s.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/drills", s.ListDrillsHandler).Methods(http.MethodGet)
	r.HandleFunc("/drills/{drill}/{case}", s.FixtureHandler).Methods(http.MethodGet)
	r.HandleFunc("/calc/divide", s.DivideHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// writeJSON encodes v before touching the response, so a value that cannot
// be encoded turns into a 500 instead of an empty body. It returns the
// status actually sent.
func writeJSON(w http.ResponseWriter, status int, v interface{}) int {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"status":500,"error":"response could not be encoded"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
	return status
}

func writeError(w http.ResponseWriter, status int, msg string) int {
	return writeJSON(w, status, map[string]any{"status": status, "error": msg})
}

func statusLabel(code int) string {
	return strconv.Itoa(code)
}
