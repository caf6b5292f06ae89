package middleware

import (
	"net/http"

	"github.com/tinhat/dirtysecrets/internal/constants"
)

// SecurityHeaders sets conservative browser protection headers on every response
func SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constants.HeaderXContentTypeOptions, constants.ValueNoSniff)
			w.Header().Set(constants.HeaderXFrameOptions, constants.ValueDenyFrames)

			next.ServeHTTP(w, r)
		})
	}
}

// CORS adds cross-origin headers for the configured origins and answers
// OPTIONS preflight requests directly.
func CORS(allowedOrigins []string, allowCredentials bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			for _, allowedOrigin := range allowedOrigins {
				if allowedOrigin == "*" || allowedOrigin == origin {
					if allowedOrigin == "*" && origin == "" {
						w.Header().Set("Access-Control-Allow-Origin", "*")
					} else {
						w.Header().Set("Access-Control-Allow-Origin", origin)
					}
					if allowCredentials {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}

					if r.Method != http.MethodOptions {
						next.ServeHTTP(w, r)
						return
					}

					// Handle OPTIONS preflight requests
					w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
					w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Request-ID")
					w.Header().Set("Access-Control-Max-Age", "300")
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}

			// Origin not allowed: continue without CORS headers
			next.ServeHTTP(w, r)
		})
	}
}
