package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bloggydev/bloggy/internal/logging"
)

// RequestLogger attaches a request-scoped logger to the context and emits a
// structured completion line per request.
func RequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With(
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)
			if rid := chiMiddleware.GetReqID(r.Context()); rid != "" {
				l = l.With("request_id", rid)
			}

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ctx := logging.IntoContext(r.Context(), l)

			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))
			dur := time.Since(start)

			status := ww.Status()
			switch {
			case status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds())
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", ww.BytesWritten())
			}
		})
	}
}
