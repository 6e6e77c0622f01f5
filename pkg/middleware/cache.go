package middleware

import (
	"fmt"
	"net/http"
	"time"
)

// CacheControl marks GET and HEAD responses as publicly cacheable for maxAge.
// Downstream caches may serve a stale copy for another maxAge while they
// revalidate.
func CacheControl(maxAge time.Duration) func(http.Handler) http.Handler {
	secs := int(maxAge / time.Second)
	value := fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", secs, secs)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				w.Header().Set("Cache-Control", value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// NoStore disables caching, used on routes whose response depends on the
// request body.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}
