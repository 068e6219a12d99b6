// router/router.go
package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dalemusser/syrup/logging"
	"github.com/dalemusser/syrup/metrics"
)

// New creates a chi.Router pre-wired with the standard middleware stack:
// - RequestID
// - RealIP
// - Recoverer (panic → 500)
// - metrics HTTP middleware
// - request logging
// Route registration (including route.WithCurrent or route.Routed for the
// link helpers' current-page detection) remains an app-level decision.
func New(logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Request context & safety
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Recoverer(logger))

	// Metrics
	r.Use(metrics.HTTPMetrics)

	// Access logging
	r.Use(logging.RequestLogger(logger))

	return r
}
