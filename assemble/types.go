// File: types.go
// Role: Row/Table value types, functional Options, and sentinel errors
// for the Neighborhood Assembler.
package assemble

import (
	"context"
	"errors"
)

// Sentinel errors for neighborhood assembly.
var (
	// ErrUnknownQuery is returned when the query has no matches at all.
	ErrUnknownQuery = errors.New("assemble: unknown query")

	// ErrBadHoppingDistance is returned for h < 1.
	ErrBadHoppingDistance = errors.New("assemble: hopping distance must be >= 1")
)

// Row is one entry of the join table: a pivot match (v,u), a neighbor
// pair (vv,uu) that is itself a candidate match, and the pair of BFS
// distances that connect them to the pivot.
type Row struct {
	V, U   int     // pivot match
	VV, UU int     // neighbor candidate match
	DV, DU int     // BFS distances from v to vv, and from u to uu
	Weight float64 // weight of the pivot match (v,u)
}

// Table is the full join table for one query execution: every Row, plus
// the target-graph edges incident to any UU observed, for the Ranker's
// target-edge closure.
type Table struct {
	Rows        []Row
	TargetEdges [][2]int
}

// Option configures Build.
type Option func(*config)

type config struct {
	ctx context.Context
	h   int
}

func defaultConfig() config {
	return config{ctx: context.Background(), h: 2}
}

// WithContext sets a cancellation context, checked between BFS frontiers.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithHops sets the hopping distance h (default 2). h < 1 is surfaced as
// ErrBadHoppingDistance by Build.
func WithHops(h int) Option {
	return func(c *config) { c.h = h }
}
