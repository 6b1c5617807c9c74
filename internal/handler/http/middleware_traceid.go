package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the correlation id. Callers are services, so a
// token fetch usually arrives with the id of the request that triggered it.
const traceIDHeader = "X-Trace-ID"

// withTraceID stamps each request with a trace id and threads a child
// logger carrying it through the request context. An id supplied by the
// calling service is kept so one credential fetch can be correlated across
// service hops; otherwise a fresh one is generated. The id is echoed in
// the response header either way.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
