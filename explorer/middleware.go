package explorer

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"
)

// statusWriter records the response status for the request log line.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// withLogging logs one line per request and converts handler panics into
// internal-error responses. Malformed canonical paths panic in the
// renderer, so a crafted query must not take the service down.
func withLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("PANIC recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))
				writeError(sw, NewError(CodeInternal, fmt.Sprintf("internal server error (panic): %v", rec)), logger)
			}
			logger.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)))
		}()

		next.ServeHTTP(sw, r)
	})
}
