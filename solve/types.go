// Package solve defines core types and configuration options for the
// iterative relaxation Solver.
package solve

import "errors"

// Sentinel errors returned by the Solver.
var (
	// ErrEmptyTable indicates the join table has no rows to relax.
	ErrEmptyTable = errors.New("solve: join table is empty")

	// ErrBadMaxIters indicates MaxIters <= 0.
	ErrBadMaxIters = errors.New("solve: MaxIters must be positive")

	// ErrBadEpsilon indicates Epsilon < 0.
	ErrBadEpsilon = errors.New("solve: Epsilon must be non-negative")

	// ErrBadTopN indicates n <= 0 was passed to Extract.
	ErrBadTopN = errors.New("solve: n must be positive")
)

// Options configures the behavior of Run.
//
// MaxIters – hard cap on relaxation iterations. Default 10.
// Epsilon  – convergence threshold; Run stops early once no cost moves
//
//	by more than Epsilon in one iteration. Default 1e-6.
type Options struct {
	MaxIters int
	Epsilon  float64
}

// Option is a functional option for Run.
type Option func(*Options)

// WithMaxIters overrides the iteration cap.
func WithMaxIters(n int) Option {
	return func(o *Options) { o.MaxIters = n }
}

// WithEpsilon overrides the convergence threshold.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// DefaultOptions returns the Solver's default configuration.
func DefaultOptions() Options {
	return Options{MaxIters: 10, Epsilon: 1e-6}
}

// Pair identifies one candidate match (v,u) in the relaxed table.
type Pair struct {
	V, U int
}

// Result is the Solver's output: the relaxed cost of every candidate
// match that appeared in the join table, after Run converges or the
// iteration cap is reached.
type Result struct {
	Costs     map[Pair]float64
	Iters     int
	Converged bool
}
