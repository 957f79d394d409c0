package pattern

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dlclark/regexp2"
)

// uaBoundary keeps rules from matching in the middle of a product token.
const uaBoundary = `(?:^|[^A-Z0-9_\-]|[^A-Z0-9\-]_|sprd-|MZ-)(?:`

// Option configures an Engine.
type Option func(*Engine)

// WithMatchTimeout bounds a single evaluation of any pattern the engine
// compiles. Zero leaves evaluation unbounded.
func WithMatchTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.timeout = d
		}
	}
}

type cacheKey struct {
	ua   bool
	expr string
}

type cell struct {
	once sync.Once
	p    *Pattern
	err  error
}

// Engine is a concurrency-safe memoizing pattern compiler.
type Engine struct {
	cells    sync.Map
	timeout  time.Duration
	compiled atomic.Int64
}

// NewEngine creates an empty Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile returns the compiled form of expr exactly as written.
func (e *Engine) Compile(expr string) (*Pattern, error) {
	return e.load(cacheKey{expr: expr})
}

// CompileUA returns the compiled form of a user-agent rule: case-insensitive
// and anchored on a token boundary.
func (e *Engine) CompileUA(expr string) (*Pattern, error) {
	return e.load(cacheKey{ua: true, expr: expr})
}

// Lazy returns a handle for a user-agent rule that compiles on first use.
func (e *Engine) Lazy(expr string) *Lazy {
	return &Lazy{engine: e, key: cacheKey{ua: true, expr: expr}}
}

// Compiled reports how many distinct patterns the engine has compiled.
func (e *Engine) Compiled() int64 {
	return e.compiled.Load()
}

func (e *Engine) load(key cacheKey) (*Pattern, error) {
	v, ok := e.cells.Load(key)
	if !ok {
		v, _ = e.cells.LoadOrStore(key, &cell{})
	}
	c := v.(*cell)
	c.once.Do(func() {
		c.p, c.err = e.compile(key)
	})
	return c.p, c.err
}

func (e *Engine) compile(key cacheKey) (*Pattern, error) {
	e.compiled.Add(1)

	expr, opts := key.expr, regexp2.RegexOptions(regexp2.None)
	if key.ua {
		expr = uaBoundary + key.expr + ")"
		opts = regexp2.IgnoreCase
	}

	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, errors.Join(ErrCompile, fmt.Errorf("pattern %q: %w", key.expr, err))
	}
	if e.timeout > 0 {
		re.MatchTimeout = e.timeout
	}
	return &Pattern{source: key.expr, re: re}, nil
}

// Pattern is an immutable compiled rule, safe for concurrent use.
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// Source returns the rule text the pattern was compiled from.
func (p *Pattern) Source() string { return p.source }

// Match evaluates the pattern against subject and returns its captures.
// Index 0 holds the whole match; unmatched optional groups are empty.
func (p *Pattern) Match(subject string) (Captures, bool, error) {
	m, err := p.re.FindStringMatch(subject)
	if err != nil {
		return nil, false, errors.Join(ErrMatch, fmt.Errorf("pattern %q: %w", p.source, err))
	}
	if m == nil {
		return nil, false, nil
	}

	groups := m.Groups()
	caps := make(Captures, len(groups))
	for i := range groups {
		caps[i] = groups[i].String()
	}
	return caps, true, nil
}

// MatchString reports whether subject matches the pattern.
func (p *Pattern) MatchString(subject string) (bool, error) {
	ok, err := p.re.MatchString(subject)
	if err != nil {
		return false, errors.Join(ErrMatch, fmt.Errorf("pattern %q: %w", p.source, err))
	}
	return ok, nil
}

// Lazy defers compilation of a user-agent rule to its first evaluation.
type Lazy struct {
	engine *Engine
	key    cacheKey
}

// Source returns the rule text.
func (l *Lazy) Source() string { return l.key.expr }

// Get compiles the rule, or returns the cached compilation.
func (l *Lazy) Get() (*Pattern, error) {
	return l.engine.load(l.key)
}

// Match compiles the rule on first use and matches it against subject.
func (l *Lazy) Match(subject string) (Captures, bool, error) {
	p, err := l.Get()
	if err != nil {
		return nil, false, err
	}
	return p.Match(subject)
}

// MatchString is Match without captures.
func (l *Lazy) MatchString(subject string) (bool, error) {
	p, err := l.Get()
	if err != nil {
		return false, err
	}
	return p.MatchString(subject)
}
