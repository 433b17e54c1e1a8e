package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"go-calculator/internal/calculator"
	"go-calculator/internal/handlers"
	"go-calculator/internal/observability"
)

// NewRouter serves calc over HTTP along with /health and /metrics. The router
// takes ownership of calc. Calculator OTel instruments discard measurements
// until calculator.InitMetrics runs.
func NewRouter(calc *calculator.Calculator) http.Handler {

	api := calculator.NewAPI(calc)

	reg := observability.NewRegistry()
	if err := calculator.RegisterCollectors(reg, api); err != nil {
		panic(err)
	}

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler(reg))

	calculator.RegisterRoutes(r, api)

	return r
}
