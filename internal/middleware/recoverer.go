package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/SergeyBogomolovv/order-tracking/pkg/utils"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Recoverer turns a panic into a generic JSON 500 so internals never reach the client.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				logger.Error("panic recovered",
					slog.Any("panic", rvr),
					slog.String("path", r.URL.Path),
					slog.String("request_id", chimw.GetReqID(r.Context())),
					slog.String("stack", string(debug.Stack())),
				)

				utils.WriteError(w, "Unexpected error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
