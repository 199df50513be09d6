package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader is the HTTP header used to carry the trace identifier both
// inbound (from a caller that already has one) and outbound (echoed back so
// the admin frontend can correlate a failed call with server logs).
const traceIDHeader = "X-Trace-ID"

// withTraceID assigns every request a trace identifier and attaches a child
// logger carrying it as the "trace_id" field to the request context. A trace
// ID supplied by the caller in the X-Trace-ID header is reused; otherwise a
// fresh UUID is generated. The ID is always echoed in the response header.
//
// This middleware must run before withLogging so the access log entry carries
// the trace ID too.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var traceID string
		if traceIDFromRequestHeader := r.Header.Get(traceIDHeader); traceIDFromRequestHeader != "" {
			traceID = traceIDFromRequestHeader
		} else {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
