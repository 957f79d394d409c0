package useragent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/logger"
	"github.com/dmitrymomot/devicedetector/pkg/pattern"
	"github.com/dmitrymomot/devicedetector/pkg/useragent/regexes"
)

// Option configures a Detector.
type Option func(*options)

type options struct {
	corpus       fs.FS
	cacheSize    int
	matchTimeout time.Duration
	lazy         bool
	logger       *slog.Logger
	catalog      *Catalog
}

// WithCorpus replaces the embedded rule corpus. The file system must use the
// same layout as the embedded one.
func WithCorpus(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.corpus = fsys
		}
	}
}

// WithCacheSize enables an LRU of the last n distinct inputs. Zero disables
// caching.
func WithCacheSize(n int) Option {
	return func(o *options) { o.cacheSize = n }
}

// WithMatchTimeout bounds a single regular expression evaluation.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) { o.matchTimeout = d }
}

// WithLazyCompile defers pattern compilation to first use. A broken pattern
// then surfaces as a resolution error instead of failing New.
func WithLazyCompile() Option {
	return func(o *options) { o.lazy = true }
}

// WithLogger sets the logger used for load and resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCatalog replaces the built-in browser catalog.
func WithCatalog(c *Catalog) Option {
	return func(o *options) {
		if c != nil {
			o.catalog = c
		}
	}
}

// Detector classifies user agents. It is immutable after New and safe for
// concurrent use.
type Detector struct {
	engine  *pattern.Engine
	corpus  *corpus
	catalog *Catalog
	cache   *resultCache
	logger  *slog.Logger
}

// New loads the rule corpus and returns a ready Detector.
func New(opts ...Option) (*Detector, error) {
	o := options{
		corpus:  regexes.FS,
		logger:  logger.Discard(),
		catalog: DefaultCatalog(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cacheSize < 0 {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("cache size %d is negative", o.cacheSize))
	}
	if o.matchTimeout < 0 {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("match timeout %s is negative", o.matchTimeout))
	}

	log := o.logger.With(logger.Component("useragent"))
	start := time.Now()

	engine := pattern.NewEngine(pattern.WithMatchTimeout(o.matchTimeout))
	c, err := loadCorpus(context.Background(), o.corpus, engine, o.lazy)
	if err != nil {
		log.Error("failed to load rule corpus", logger.Error(err))
		return nil, err
	}

	d := &Detector{
		engine:  engine,
		corpus:  c,
		catalog: o.catalog,
		logger:  log,
	}
	if o.cacheSize > 0 {
		d.cache = newResultCache(o.cacheSize)
	}

	log.Info("rule corpus loaded",
		logger.RuleCounts(c.counts()),
		logger.Patterns(engine.Compiled()),
		logger.Duration(time.Since(start)),
	)
	log.Debug("detector configured",
		slog.Int("cache_size", o.cacheSize),
		slog.Duration("match_timeout", o.matchTimeout),
		slog.Bool("lazy_compile", o.lazy),
	)
	return d, nil
}

// Parse classifies ua together with ordered client hint headers.
func (d *Detector) Parse(ua string, headers []clienthints.Header) (Detection, error) {
	return d.ParseHints(ua, clienthints.FromHeaders(headers))
}

// ParseRequest classifies the User-Agent and client hint headers of r.
func (d *Detector) ParseRequest(r *http.Request) (Detection, error) {
	return d.ParseHints(r.UserAgent(), clienthints.FromHTTP(r.Header))
}

// ParseHints classifies ua with already parsed client hints. The returned
// detection is owned by the caller.
func (d *Detector) ParseHints(ua string, hints *clienthints.Set) (Detection, error) {
	if strings.TrimSpace(ua) == "" {
		return nil, ErrEmptyUserAgent
	}

	key := ""
	if d.cache != nil {
		key = hintsKey(hints)
		if det, ok := d.cache.get(ua, key); ok {
			return det, nil
		}
	}

	det, err := d.resolve(ua, hints)
	if err != nil {
		return nil, err
	}

	if d.cache != nil {
		d.cache.put(ua, key, det)
	}
	return det, nil
}

// resolve runs bot, OS, client and device resolution in that order. A bot
// match ends the pipeline.
func (d *Detector) resolve(ua string, hints *clienthints.Set) (Detection, error) {
	bot, err := d.corpus.lookupBot(ua)
	if err != nil {
		return nil, d.fail(ua, "bot", err)
	}
	if bot != nil {
		return bot, nil
	}

	os, err := d.corpus.lookupOS(ua, hints)
	if err != nil {
		return nil, d.fail(ua, "os", err)
	}
	client, err := d.lookupClient(ua, hints)
	if err != nil {
		return nil, d.fail(ua, "client", err)
	}
	device, err := d.lookupDevice(ua, client, hints, os)
	if err != nil {
		return nil, d.fail(ua, "device", err)
	}

	return &Known{Client: client, Device: device, OS: os}, nil
}

func (d *Detector) fail(ua, stage string, err error) error {
	d.logger.Warn("user agent resolution failed",
		logger.Stage(stage),
		logger.UserAgent(ua),
		logger.Error(err),
	)
	return errors.Join(ErrResolution, fmt.Errorf("%s: %w", stage, err))
}

// Catalog returns the browser catalog the detector normalizes names with.
func (d *Detector) Catalog() *Catalog { return d.catalog }
