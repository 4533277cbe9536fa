package http

import "net/http"

// NewRouter wires the LP endpoints, health and metrics behind the request
// ID middleware. Only /lp/solve is rate limited.
func NewRouter(h *SolveHandler, limiter *RateLimiter, metrics *Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.Handle(
		"/lp/solve",
		metrics.Instrument("/lp/solve",
			RateLimitMiddleware(
				limiter,
				http.HandlerFunc(h.Solve),
			),
		),
	)

	mux.Handle(
		"/lp/history",
		metrics.Instrument("/lp/history", http.HandlerFunc(h.History)),
	)

	mux.HandleFunc("/healthz", Health)
	mux.Handle("/metrics", metrics.Handler())

	return RequestID(mux)
}
