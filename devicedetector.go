package devicedetector

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/useragent"
)

var defaultDetector = sync.OnceValues(func() (*useragent.Detector, error) {
	cfg, err := useragent.LoadConfig()
	if err != nil {
		return nil, err
	}
	return useragent.NewFromConfig(cfg)
})

// Default returns the shared detector, building it on first use. A failed
// build is returned on every call.
func Default() (*useragent.Detector, error) {
	return defaultDetector()
}

// Parse classifies ua with the shared detector.
func Parse(ua string, headers ...clienthints.Header) (useragent.Detection, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.Parse(ua, headers)
}

// ParseRequest classifies the user agent and client hints of r with the
// shared detector.
func ParseRequest(r *http.Request) (useragent.Detection, error) {
	d, err := Default()
	if err != nil {
		return nil, err
	}
	return d.ParseRequest(r)
}

// Handler responds with the JSON detection of the request. A detection
// stored by useragent.Middleware is reused.
func Handler(d *useragent.Detector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		det, ok := useragent.GetDetectionFromContext(r.Context())
		if !ok {
			var err error
			det, err = d.ParseRequest(r)
			if err != nil {
				status := http.StatusInternalServerError
				if errors.Is(err, useragent.ErrEmptyUserAgent) {
					status = http.StatusBadRequest
				}
				http.Error(w, err.Error(), status)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Add("Vary", "User-Agent")
		_ = json.NewEncoder(w).Encode(det)
	}
}
