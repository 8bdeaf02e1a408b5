// Package rank turns the Solver's raw subgraphs into the ordered,
// public-facing result of a query execution.
//
// A SubgraphMatch pairs a query-node -> target-node assignment with its
// total score (lower is better) and the list of target edges the
// assignment actually realizes, so a caller can render the match without
// going back to a GraphStore. Rank sorts ascending by score and keeps at
// most n entries, breaking ties by the assignment's lexicographic
// target-node order for determinism.
package rank
