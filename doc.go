// Package devicedetector classifies HTTP user agents and client hints into a
// bot identity or a device, client and operating system triple.
//
// The package level functions share one lazily built detector configured
// from the environment (see useragent.LoadConfig):
//
//	det, err := devicedetector.Parse(r.UserAgent())
//	if err != nil {
//	    return err
//	}
//	if known, ok := useragent.AsKnown(det); ok && known.IsMobile() {
//	    // serve the mobile layout
//	}
//
// Handler exposes a detection as JSON, which is handy for debugging what a
// client sends:
//
//	r := chi.NewRouter()
//	r.Get("/whoami", devicedetector.Handler(d))
//
// The rule engine, corpus and middleware live in pkg/useragent.
package devicedetector
