package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"pdf-toolkit/internal/domain"
)

const requestIDHeader = "X-Request-ID"

// RequestMiddleware tags each request with an id, logs its outcome and turns
// panics into a JSON 500.
type RequestMiddleware struct {
	logger domain.Logger
}

// NewRequestMiddleware creates the request middleware
func NewRequestMiddleware(logger domain.Logger) *RequestMiddleware {
	return &RequestMiddleware{logger: logger}
}

// Middleware wraps next
func (m *RequestMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" || len(requestID) > 128 {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)

		defer func() {
			if p := recover(); p != nil {
				m.logger.Error("Panic while handling request", fmt.Errorf("%v", p),
					"request_id", requestID, "method", r.Method, "path", r.URL.Path)
				if !rec.wroteHeader {
					writeError(rec, http.StatusInternalServerError, "Internal server error")
				}
			}
			m.logger.Info("Request completed",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		}()

		next.ServeHTTP(rec, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
	}
	return r.ResponseWriter.Write(b)
}
