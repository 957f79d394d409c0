// Package pattern compiles, caches and applies the regular expressions that
// drive user-agent rule corpora.
//
// Corpus rules are written in a PCRE-like dialect with lookarounds, so the
// package is built on github.com/dlclark/regexp2 rather than the standard
// library's RE2 engine.
//
// # Compilation
//
// An Engine memoizes compiled patterns by their source text. The first caller
// for a given pattern compiles it; concurrent callers block on the same
// compute-once cell and observe the same *Pattern. UA-facing rules go through
// CompileUA which anchors the rule on a token boundary and makes it
// case-insensitive:
//
//	(?:^|[^A-Z0-9_\-]|[^A-Z0-9\-]_|sprd-|MZ-)(?:<rule>)
//
// Lazy returns a handle that defers compilation until the first match.
//
// # Placeholders
//
// Rule fields reference capture groups with $1..$9. Captures.Expand
// substitutes them, leaving unmatched groups empty; Version additionally
// normalises separators and trims trailing ".0" segments:
//
//	caps, ok, err := p.Match("Chrome/114.0.0")
//	pattern.Version("$1", caps) // "114"
//
// # Errors
//
// Compilation failures wrap ErrCompile, evaluation failures (for example a
// match timeout) wrap ErrMatch. Neither panics.
package pattern
