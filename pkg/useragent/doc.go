// Package useragent classifies HTTP user agents, optionally refined by
// client hint headers, into either a bot identity or a device, client and
// operating system triple.
//
// Resolution runs in a fixed order against an ordered rule corpus in the
// device-detector YAML layout:
//
//  1. bots: the first matching bot rule ends resolution with a *Bot;
//  2. operating system, superseded by Sec-CH-UA-Platform hints;
//  3. client: feed readers, mobile apps, media players, PIM, browsers and
//     libraries, first match wins, browser names normalized against the
//     Catalog and refined by the Sec-CH-UA brand list;
//  4. device: brand and model rules, then form-factor hints and type
//     heuristics over the resolved client and OS.
//
// The outcome is a *Known carrying derived predicates (IsMobile, IsDesktop,
// IsTablet, ...) that are serialized under "is" by MarshalJSON.
//
// # Usage
//
//	d, err := useragent.New(useragent.WithCacheSize(4096))
//	if err != nil {
//	    return err
//	}
//	det, err := d.Parse(r.UserAgent(), nil)
//	if bot, ok := useragent.AsBot(det); ok {
//	    log.Info("crawler", "name", bot.Name)
//	}
//
// Detectors can also be built from the environment with LoadConfig and
// NewFromConfig (UA_CORPUS_DIR, UA_CACHE_SIZE, UA_MATCH_TIMEOUT,
// UA_LAZY_COMPILE). Setting UA_ENV, UA_LOG_LEVEL or UA_LOG_FORMAT turns on
// logging to stderr.
//
// # HTTP
//
// Middleware stores one detection per request in its context, available
// through GetDetectionFromContext, and advertises Accept-CH.
//
// # Errors
//
// New fails with ErrCorpusLoad (and ErrMalformedCorpus for schema problems)
// when the corpus cannot be loaded or compiled. Parse returns
// ErrEmptyUserAgent for blank input and ErrResolution when a rule cannot be
// evaluated; it never returns a partial detection.
package useragent
