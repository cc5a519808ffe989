package useragent

import (
	"net/http"
)

// Middleware classifies every request and stores the result in its
// context, where GetFromContext finds it. A nil detector uses Default.
func Middleware(d *Detector) func(http.Handler) http.Handler {
	if d == nil {
		d = Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// requests without a user agent still carry header verdicts
			ua, _ := d.DetectRequest(r)
			next.ServeHTTP(w, r.WithContext(SetToContext(r.Context(), ua)))
		})
	}
}
