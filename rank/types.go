package rank

import "errors"

// ErrBadTopN indicates n <= 0 was passed to Rank.
var ErrBadTopN = errors.New("rank: n must be positive")

// SubgraphMatch is one ranked result of a query execution.
type SubgraphMatch struct {
	// QueryNodes lists every query node the caller asked to match,
	// ascending, regardless of whether it was actually assigned.
	QueryNodes []int

	// Assignment maps query node -> target node for every node that
	// received a candidate; a query node absent here was unmatched.
	Assignment map[int]int

	// Score is the total inference cost of this assignment: lower is a
	// better match. 0 means every query node matched at zero cost.
	Score float64

	// TargetEdges lists the target-graph edges whose both endpoints are
	// present in Assignment's values, ascending (a,b) with a<b.
	TargetEdges [][2]int
}
