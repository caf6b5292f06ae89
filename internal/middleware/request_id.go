package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// requestIDKey is the context key type for request correlation IDs
type requestIDKey struct{}

// RequestID assigns each request a correlation ID, honoring one supplied by
// the client in the X-Request-ID header, and echoes it on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(constants.HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			w.Header().Set(constants.HeaderRequestID, requestID)

			ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the correlation ID assigned to the request, if any
func GetRequestID(r *http.Request) string {
	if id, ok := r.Context().Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// statusRecorder captures the response status code for logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// RequestLogger logs every request with its correlation ID, outcome and latency
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			utils.LogHTTPRequest(
				GetRequestID(r),
				r.Method,
				r.URL.Path,
				r.RemoteAddr,
				r.UserAgent(),
				rec.status,
				time.Since(start),
			)
		})
	}
}
