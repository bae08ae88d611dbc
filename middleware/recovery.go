package middleware

import (
	"net/http"

	"github.com/manku13/Task-Manager-BackEnd/logging"
)

// Recovery is the last-resort handler: a panicking request ends as a
// generic 500 instead of tearing the connection down.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logging.Logger.Errorf("Event ID: PANIC_RECOVERED, Description: Panic while handling %s %s: %v", r.Method, r.URL.Path, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"message": "Server error"}`))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
