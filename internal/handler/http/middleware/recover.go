package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/response"
)

// Recoverer turns a handler panic into the standard 500 error envelope.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}

				slog.ErrorContext(r.Context(), "panic recovered",
					"panic", p,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.InternalServerError(w, "An unexpected error occurred")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
