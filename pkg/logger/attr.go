package logger

import (
	"log/slog"
	"sort"
	"strconv"
)

// maxUserAgentLen caps logged user agents; crafted headers can be huge.
const maxUserAgentLen = 256

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// UserAgent records a user agent under the key "user_agent", truncated to
// a bounded length.
func UserAgent(ua string) slog.Attr {
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen] + "..."
	}
	return slog.String("user_agent", ua)
}

// Stage records the resolution stage (bot, os, client, device) under the
// key "stage".
func Stage(name string) slog.Attr {
	return slog.String("stage", name)
}

// DetectionKind records whether a detection is a bot or a known client
// under the key "detection".
func DetectionKind(kind string) slog.Attr {
	return slog.String("detection", kind)
}

// RuleCounts groups per-family rule counts under the key "rules", in
// stable key order.
func RuleCounts(counts map[string]int) slog.Attr {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	as := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		as = append(as, slog.Int(k, counts[k]))
	}
	return slog.Attr{Key: "rules", Value: slog.GroupValue(as...)}
}

// Patterns records how many patterns were compiled under the key "patterns".
func Patterns(n int64) slog.Attr {
	return slog.Int64("patterns", n)
}
