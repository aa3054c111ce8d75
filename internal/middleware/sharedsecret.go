package middleware

import (
	"crypto/subtle"
	"net/http"
)

// SharedSecret guards scheduler and webhook routes with a static secret in
// the X-Internal-Secret header. Comparison is constant time. An empty
// configured secret locks the routes rather than opening them.
func SharedSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Internal-Secret")
			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
