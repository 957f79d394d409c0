package useragent

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/devicedetector/pkg/logger"
)

type detectionContextKey struct{}

// SetDetectionToContext stores d in ctx.
func SetDetectionToContext(ctx context.Context, d Detection) context.Context {
	return context.WithValue(ctx, detectionContextKey{}, d)
}

// GetDetectionFromContext returns the detection stored by the middleware.
func GetDetectionFromContext(ctx context.Context) (Detection, bool) {
	d, ok := ctx.Value(detectionContextKey{}).(Detection)
	return d, ok && d != nil
}

// LogExtractor adds the kind of the request's detection ("bot" or "known")
// to every record logged with the request context.
func LogExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		d, ok := GetDetectionFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return logger.DetectionKind(detectionKind(d)), true
	}
}

func detectionKind(d Detection) string {
	if d.IsBot() {
		return "bot"
	}
	return "known"
}
