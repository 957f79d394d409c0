package useragent

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/devicedetector/pkg/logger"
)

// serviceName tags records from loggers built by Config.
const serviceName = "devicedetector"

// Config is the environment-driven detector configuration.
type Config struct {
	// CorpusDir points at an on-disk corpus. Empty uses the embedded one.
	CorpusDir    string        `env:"UA_CORPUS_DIR"`
	CacheSize    int           `env:"UA_CACHE_SIZE" envDefault:"0"`
	MatchTimeout time.Duration `env:"UA_MATCH_TIMEOUT" envDefault:"0s"`
	LazyCompile  bool          `env:"UA_LAZY_COMPILE" envDefault:"false"`

	// Logging stays off unless at least one of these is set. Env selects
	// the environment defaults of logger.WithEnvironment; LogLevel and
	// LogFormat override them.
	Env       string `env:"UA_ENV"`
	LogLevel  string `env:"UA_LOG_LEVEL"`
	LogFormat string `env:"UA_LOG_FORMAT"`
}

var dotenvLoaded sync.Once

// LoadConfig reads Config from the environment. A .env file in the working
// directory is loaded once per process when present.
func LoadConfig() (Config, error) {
	dotenvLoaded.Do(func() {
		// the file is optional
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MustLoadConfig is LoadConfig that panics on error.
func MustLoadConfig() Config {
	cfg, err := LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("failed to load user agent config: %v", err))
	}
	return cfg
}

// Validate reports settings New would reject.
func (c Config) Validate() error {
	if c.CacheSize < 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("UA_CACHE_SIZE must not be negative, got %d", c.CacheSize))
	}
	if c.MatchTimeout < 0 {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("UA_MATCH_TIMEOUT must not be negative, got %s", c.MatchTimeout))
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return errors.Join(ErrInvalidConfig, fmt.Errorf("UA_LOG_LEVEL: %w", err))
		}
	}
	if c.LogFormat != "" {
		if _, err := logger.ParseFormat(c.LogFormat); err != nil {
			return errors.Join(ErrInvalidConfig, fmt.Errorf("UA_LOG_FORMAT: %w", err))
		}
	}
	return nil
}

// Logging reports whether any logging setting is present.
func (c Config) Logging() bool {
	return c.Env != "" || c.LogLevel != "" || c.LogFormat != ""
}

// NewLogger builds the logger described by the logging settings. An empty
// Env means production. Values that fail Validate are ignored. Extra options are applied last.
func (c Config) NewLogger(opts ...logger.Option) *slog.Logger {
	envName := c.Env
	if envName == "" {
		envName = logger.EnvProduction
	}
	base := []logger.Option{logger.WithEnvironment(envName, serviceName)}
	if c.LogLevel != "" {
		if l, err := logger.ParseLevel(c.LogLevel); err == nil {
			base = append(base, logger.WithLevel(l))
		}
	}
	if c.LogFormat != "" {
		if f, err := logger.ParseFormat(c.LogFormat); err == nil {
			base = append(base, logger.WithFormat(f))
		}
	}
	return logger.New(append(base, opts...)...)
}

// Options translates the configuration into detector options.
func (c Config) Options() []Option {
	opts := []Option{
		WithCacheSize(c.CacheSize),
		WithMatchTimeout(c.MatchTimeout),
	}
	if c.CorpusDir != "" {
		opts = append(opts, WithCorpus(os.DirFS(c.CorpusDir)))
	}
	if c.LazyCompile {
		opts = append(opts, WithLazyCompile())
	}
	if c.Logging() {
		opts = append(opts, WithLogger(c.NewLogger()))
	}
	return opts
}

// NewFromConfig builds a Detector from cfg. Extra options are applied after
// the configured ones.
func NewFromConfig(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return New(append(cfg.Options(), opts...)...)
}
