// File: payload.go
// Role: the value types returned by Query.Execute.
package query

// Pair identifies one assigned (query node, target node) pair inside a
// returned subgraph match.
type Pair struct {
	QNode int
	TNode int
}

// SubgraphMatch is one ranked result of a query execution: an ordered
// set of assigned pairs, its total score, and the per-pair inference
// cost that contributed to that score.
type SubgraphMatch struct {
	// SubgraphMatch lists the assigned (q_node, t_node) pairs, ascending
	// by q_node. A query node with no surviving candidate is absent
	// here; its cost is folded into TotalScore via the Ranker's
	// unmatched-node penalty instead.
	SubgraphMatch []Pair

	// TotalScore is rank.SubgraphMatch.Score: the sum of this
	// subgraph's individual costs plus one penalty unit per unmatched
	// query node. Lower is better.
	TotalScore float64

	// IndividualScores gives the raw inference cost of each pair in
	// SubgraphMatch, in the same order.
	IndividualScores []float64
}

// Payload is the complete return value of Query.Execute.
type Payload struct {
	// Iterations is the number of relaxation iterations the Solver
	// actually ran before converging or hitting MaxIters.
	Iterations int

	// SubgraphMatches is the ranked list of up to n subgraphs, ascending
	// by TotalScore.
	SubgraphMatches []SubgraphMatch

	// QueryNodes lists every node of the query graph, ascending.
	QueryNodes []int

	// QueryEdges canonicalizes the query graph's edges (a<b), ascending.
	// Present only when Execute was called WithEdges(true); nil
	// otherwise.
	QueryEdges [][2]int

	// TargetNodes is the union of t_node across every returned
	// subgraph, ascending.
	TargetNodes []int

	// TargetEdges is the union, across every returned subgraph, of the
	// target-graph edges whose both endpoints are assigned within that
	// same subgraph — not a global filter over TargetNodes, since two
	// returned subgraphs may each use one endpoint of an edge without
	// either subgraph using both.
	TargetEdges [][2]int
}
