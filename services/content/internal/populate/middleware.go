package populate

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/cmsquery"
	"github.com/Ali-Hassan-870/colorfullStandard-clone/pkg/logger"
)

// Middleware replaces the populate directive of every request with the
// fixed graph of endpoint. Other query parameters pass through untouched.
//
// It panics when endpoint has no graph, so a misconfigured route fails at
// startup instead of silently forwarding caller-controlled populates.
func Middleware(endpoint Endpoint, l *slog.Logger) func(http.Handler) http.Handler {
	graph, ok := Graph(endpoint)
	if !ok {
		panic(fmt.Sprintf("populate: no graph registered for endpoint %q", endpoint))
	}

	fixed := url.Values{}
	graph.Encode(fixed)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.WithContext(r.Context(), l).InfoContext(r.Context(), "populate middleware",
				slog.String("endpoint", string(endpoint)),
			)

			q := r.URL.Query()
			cmsquery.StripPopulate(q)
			for key, values := range fixed {
				q[key] = append([]string(nil), values...)
			}
			r.URL.RawQuery = q.Encode()

			next.ServeHTTP(w, r)
		})
	}
}
