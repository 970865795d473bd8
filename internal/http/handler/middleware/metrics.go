package middleware

import (
	"net/http"
	"time"
)

const unmatchedRoute = "unmatched"

type HTTPMetrics interface {
	RequestStarted()
	RequestFinished(method, route string, status int, elapsed time.Duration)
}

type MetricsMiddleware struct {
	metrics HTTPMetrics
}

func NewMetricsMiddleware(metrics HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: metrics,
	}
}

// Metrics must wrap the ServeMux directly so that the matched pattern is
// visible on r after the mux has served it.
func (m *MetricsMiddleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		m.metrics.RequestStarted()
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = unmatchedRoute
		}
		m.metrics.RequestFinished(r.Method, route, rec.status, time.Since(start))
	})
}
