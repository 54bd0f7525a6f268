package skiplist

import (
	"errors"
	"fmt"
)

const (
	// DefaultMaxLevel is the maximum list height used when no
	// WithMaxLevel option is given.
	DefaultMaxLevel = 16

	// DefaultProbability is the level promotion probability used when
	// no WithProbability option is given.
	DefaultProbability = 0.5

	// maxLevelLimit caps configurable heights at one word of coin
	// flips; the fast path for p = 0.5 draws all its flips from a
	// single Uint64.
	maxLevelLimit = 64
)

// Errors
var (
	// ErrInvalidMaxLevel is returned by New and ValidateParams when the
	// configured maximum level is outside [1, 64].
	ErrInvalidMaxLevel = errors.New("invalid max level")
	// ErrInvalidProbability is returned by New and ValidateParams when
	// the configured promotion probability is outside (0, 1).
	ErrInvalidProbability = errors.New("invalid probability")
)

type config struct {
	maxLevel int
	p        float64
	src      Source
}

// Option configures a SkipList at construction time.
type Option func(*config)

// WithMaxLevel sets the maximum height of the list. Valid heights are
// in [1, 64].
func WithMaxLevel(maxLevel int) Option {
	return func(c *config) { c.maxLevel = maxLevel }
}

// WithProbability sets the level promotion probability. Valid values
// are strictly between 0 and 1.
func WithProbability(p float64) Option {
	return func(c *config) { c.p = p }
}

// WithRandomSource sets the entropy source consumed by level draws.
// Supplying a deterministic source makes the list's shape reproducible.
func WithRandomSource(src Source) Option {
	return func(c *config) { c.src = src }
}

// ValidateParams reports whether the given maximum level and promotion
// probability form a usable configuration. It is exported so config
// layers can validate before constructing a list.
func ValidateParams(maxLevel int, p float64) error {
	if maxLevel <= 0 || maxLevel > maxLevelLimit {
		return fmt.Errorf("%w: must be in [1, %d], but %d was given", ErrInvalidMaxLevel, maxLevelLimit, maxLevel)
	}
	if p <= 0 || p >= 1 {
		return fmt.Errorf("%w: must be in (0, 1), but %g was given", ErrInvalidProbability, p)
	}
	return nil
}
