package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/annolab/annolab-backend/pkg/ctxutil"
)

// RequestIDHeader carries the correlation id between the annotation frontend
// and this service.
const RequestIDHeader = "X-Request-Id"

// RequestID propagates the incoming correlation id, or mints a UUID when the
// client sent none. The id is stored in the context for log lines and echoed
// back on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
