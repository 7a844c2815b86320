package pagerank

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Sentinel errors for pagerank execution.
var (
	// ErrNilCorpus is returned if a nil *corpus.Corpus is passed.
	ErrNilCorpus = errors.New("pagerank: corpus is nil")

	// ErrEmptyCorpus is returned when the corpus has no pages to rank.
	ErrEmptyCorpus = errors.New("pagerank: corpus has no pages")

	// ErrPageNotFound is returned when the requested page is absent from
	// the corpus. This is a caller contract violation, not a runtime state.
	ErrPageNotFound = errors.New("pagerank: page not found in corpus")

	// ErrBadDamping is returned when the damping factor is outside (0,1).
	ErrBadDamping = errors.New("pagerank: damping factor must be in (0,1)")

	// ErrBadSampleCount is returned when the sample count is below 1.
	ErrBadSampleCount = errors.New("pagerank: sample count must be positive")

	// ErrBadEpsilon is returned when the convergence threshold is ≤ 0.
	ErrBadEpsilon = errors.New("pagerank: convergence threshold must be positive")

	// ErrBadMaxIterations is returned when the iteration cap is negative.
	ErrBadMaxIterations = errors.New("pagerank: MaxIterations cannot be negative")

	// ErrNoConvergence is returned when a configured iteration cap is
	// reached before every per-page delta drops below the threshold.
	ErrNoConvergence = errors.New("pagerank: iteration cap reached before convergence")
)

// Default parameter values shared by the estimators.
const (
	// DefaultDamping is the probability of following a link rather than
	// jumping to a uniformly random page.
	DefaultDamping = 0.85

	// DefaultSampleCount is the random-walk length used by Sample when
	// WithSampleCount is not supplied.
	DefaultSampleCount = 10000

	// DefaultEpsilon is the convergence threshold used by Iterate when
	// WithEpsilon is not supplied.
	DefaultEpsilon = 0.001
)

// Source supplies the randomness consumed by the sample estimator.
// *math/rand.Rand satisfies it; tests inject a seeded instance for
// reproducible walks.
type Source interface {
	// Intn returns a uniform int in [0,n). Used for the initial page choice.
	Intn(n int) int

	// Float64 returns a uniform float64 in [0,1). Used for weighted draws.
	Float64() float64
}

// Option configures estimator behavior via functional arguments.
// If an Option is invalid (e.g. a zero sample count), the violation is
// recorded internally and surfaced as the matching sentinel error when the
// estimator is invoked.
type Option func(*Options)

// Options holds the parameters shared by Transition, Sample and Iterate.
// Each estimator reads only the fields it documents.
type Options struct {
	// Damping is the link-follow probability d ∈ (0,1).
	Damping float64

	// SampleCount is the total number of samples drawn by Sample,
	// including the uniformly chosen first page.
	SampleCount int

	// Epsilon is the convergence threshold for Iterate: the fixed point is
	// reached when every per-page delta is strictly below it.
	Epsilon float64

	// MaxIterations caps Iterate defensively. 0 (the default) means no cap;
	// reaching a non-zero cap before convergence yields ErrNoConvergence.
	MaxIterations int

	// Rand is the randomness source for Sample. Nil selects a time-seeded
	// source at invocation.
	Rand Source

	// InitialRanks optionally seeds Iterate instead of the uniform 1/N
	// start. Pages missing from the map fall back to 1/N.
	InitialRanks Distribution

	// OnIteration is called after each completed pass of Iterate with the
	// 1-based pass index and the maximum per-page delta of that pass.
	OnIteration func(iteration int, maxDelta float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// damping 0.85, 10000 samples, epsilon 0.001, no iteration cap,
// randomness deferred to a time-seeded source, no-op hook.
func DefaultOptions() Options {
	return Options{
		Damping:     DefaultDamping,
		SampleCount: DefaultSampleCount,
		Epsilon:     DefaultEpsilon,
		OnIteration: func(int, float64) {},
	}
}

// WithDamping sets the damping factor d. Values outside the open interval
// (0,1) surface as ErrBadDamping on invocation.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d <= 0 || d >= 1 {
			o.err = fmt.Errorf("%w: got %v", ErrBadDamping, d)
			return
		}
		o.Damping = d
	}
}

// WithSampleCount sets the total number of samples for Sample.
// Values below 1 surface as ErrBadSampleCount on invocation.
func WithSampleCount(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: got %d", ErrBadSampleCount, n)
			return
		}
		o.SampleCount = n
	}
}

// WithEpsilon sets the convergence threshold for Iterate.
// Non-positive values surface as ErrBadEpsilon on invocation.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: got %v", ErrBadEpsilon, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxIterations caps the number of passes Iterate may run.
//
//	m > 0: cap at m passes; ErrNoConvergence if the cap is hit first
//	m == 0: explicit no cap (the default)
//	m < 0: invalid option → ErrBadMaxIterations
func WithMaxIterations(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxIterations, m)
			return
		}
		o.MaxIterations = m
	}
}

// WithRand injects the randomness source used by Sample.
// A nil source is ignored, keeping the default.
func WithRand(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Rand = src
		}
	}
}

// WithInitialRanks seeds Iterate with the given distribution instead of the
// uniform start. The map is copied; the caller's map is never mutated.
func WithInitialRanks(ranks Distribution) Option {
	return func(o *Options) {
		if ranks != nil {
			o.InitialRanks = ranks.clone()
		}
	}
}

// WithOnIteration registers a per-pass hook for Iterate.
// A nil hook is ignored.
func WithOnIteration(fn func(iteration int, maxDelta float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// source returns the configured randomness source, falling back to a
// time-seeded math/rand instance.
func (o *Options) source() Source {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
