package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/bookit-service/internal/api/handlers"
)

// Recovery перехватывает панику обработчика и отвечает 500
func Recovery(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					requestID, _ := GetRequestID(r.Context())
					log.Error("Panic recovered: %v, method=%s, path=%s, request_id=%s\n%s",
						p, r.Method, r.URL.Path, requestID, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
