package useragent

import "errors"

var (
	ErrEmptyUserAgent  = errors.New("empty user agent string")
	ErrCorpusLoad      = errors.New("failed to load rule corpus")
	ErrMalformedCorpus = errors.New("malformed rule corpus")
	ErrResolution      = errors.New("failed to resolve user agent")
	ErrInvalidConfig   = errors.New("invalid detector configuration")
)
