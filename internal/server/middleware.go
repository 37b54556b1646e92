package server

import (
	"net/http"
	"strconv"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"search-relay/internal/common/metrics"
)

// requestLogger logs each API request with its status and latency, and feeds
// the Prometheus and OpenTelemetry counters.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		metrics.RelayRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(status)).Inc()
		metrics.RelayRequestDuration.WithLabelValues(r.URL.Path).Observe(elapsed.Seconds())
		if s.obs != nil {
			s.obs.RecordRequest(r.Context(), r.URL.Path, strconv.Itoa(status))
			s.obs.RecordRequestDuration(r.Context(), r.URL.Path, elapsed)
		}

		s.log.Info("Request handled", map[string]interface{}{
			"method":    r.Method,
			"path":      r.URL.Path,
			"status":    status,
			"duration":  elapsed.String(),
			"requestId": chiMiddleware.GetReqID(r.Context()),
		})
	})
}
