package useragent

import (
	"net/http"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
)

// Middleware classifies every request once and stores the detection in the
// request context. It asks clients for the hints the detector uses through
// Accept-CH. Requests that cannot be classified pass through without a
// detection; resolution failures are logged by the detector.
func Middleware(d *Detector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Accept-CH", clienthints.AcceptCH)

			det, err := d.ParseRequest(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetDetectionToContext(r.Context(), det)))
		})
	}
}
