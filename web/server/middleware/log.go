package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/felixge/httpsnoop"
)

// Logger logs one line per request with the response metrics. Client errors
// are logged as warnings and server errors as errors.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(next, w, r)
			logger.Log(r.Context(), levelForStatus(m.Code),
				fmt.Sprintf("%s %s", r.Method, r.URL),
				"response_code", m.Code,
				"duration", m.Duration,
				"bytes_sent", m.Written,
				"remote_addr", r.RemoteAddr,
			)
		})
	}
}

func levelForStatus(code int) slog.Level {
	switch {
	case code >= http.StatusInternalServerError:
		return slog.LevelError
	case code >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
