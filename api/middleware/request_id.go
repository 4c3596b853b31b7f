package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/espressolab/storefront-backend/pkg/logger"
)

const (
	requestIDHeader = "X-Request-Id"
	maxRequestIDLen = 128
)

// RequestID propagates the caller's X-Request-Id or mints one, echoes it on the
// response and binds it to the request logger.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := incomingRequestID(r)
			w.Header().Set(requestIDHeader, reqID)

			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithRequestID(ctx, reqID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func incomingRequestID(r *http.Request) string {
	reqID := strings.TrimSpace(r.Header.Get(requestIDHeader))
	if reqID == "" || len(reqID) > maxRequestIDLen {
		return uuid.NewString()
	}
	return reqID
}
