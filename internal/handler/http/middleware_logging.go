package http

import (
	"net/http"
	"time"

	"github.com/glowclean/quote-api/internal/logger"
)

// withLogging writes one structured access-log entry per request after the
// downstream handler returns: URI, method, response status, duration, and
// body size. The status and size are observed through [responseWriter]
// without buffering the response. Bodies are never logged; request payloads
// on this API contain personal data.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
