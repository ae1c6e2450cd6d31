// Prometheus middleware: records duration and count of every HTTP request,
// labelled by method, chi route pattern, and status code.
package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dmonterocr/legalia/pkg/metrics"
)

// Metrics wraps next with request instrumentation. The route pattern (not the
// raw path) is used as the endpoint label to keep metric cardinality bounded.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			endpoint = rctx.RoutePattern()
		}
		metrics.RecordHTTPRequest(r.Method, endpoint, ww.Status(), time.Since(started))
	})
}
