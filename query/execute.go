// File: execute.go
// Role: Query.Execute, the core entry point orchestrating
// assemble.Build -> solve.Run -> solve.Extract -> rank.Rank into one
// Payload.
package query

import (
	"context"
	"fmt"
	"sort"

	"github.com/fornaxgraph/fornax/assemble"
	"github.com/fornaxgraph/fornax/core"
	"github.com/fornaxgraph/fornax/rank"
	"github.com/fornaxgraph/fornax/solve"
)

// execConfig holds Execute's tunables, defaulted to hopping_distance=2,
// max_iters=10, n=5, edges=false.
type execConfig struct {
	h        int
	maxIters int
	n        int
	edges    bool
}

func defaultExecConfig() execConfig {
	return execConfig{h: 2, maxIters: 10, n: 5, edges: false}
}

// ExecOption configures Execute.
type ExecOption func(*execConfig)

// WithHoppingDistance overrides h, the hopping distance bounding both
// the Neighborhood Assembler's BFS and the Solver's distance penalty.
func WithHoppingDistance(h int) ExecOption {
	return func(c *execConfig) { c.h = h }
}

// WithMaxIters overrides the Solver's iteration cap.
func WithMaxIters(n int) ExecOption {
	return func(c *execConfig) { c.maxIters = n }
}

// WithTopN overrides n, the number of subgraphs Execute returns.
func WithTopN(n int) ExecOption {
	return func(c *execConfig) { c.n = n }
}

// WithEdges controls whether Payload.QueryEdges is populated.
func WithEdges(enabled bool) ExecOption {
	return func(c *execConfig) { c.edges = enabled }
}

// Execute runs one matching execution against q's persisted graphs and
// matches, returning the ranked top-n subgraphs with their auxiliary
// structural data. Fails with ErrUnknownQuery if q's match set is empty,
// ErrBadTopN if n <= 0, or whatever assemble/solve surface for a bad
// hopping distance or iteration cap.
//
// Execute performs I/O only outside the Solver — QueryGraphs/Matches,
// assemble.Build's graph lookups, and the query graph's node (and, with
// WithEdges(true), edge) lookups after solving; the Solver's relaxation
// loop is pure computation checked against ctx between iterations.
func (q *Query) Execute(ctx context.Context, opts ...ExecOption) (*Payload, error) {
	cfg := defaultExecConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.n <= 0 {
		return nil, ErrBadTopN
	}

	queryGraphID, targetGraphID, err := q.store.QueryGraphs(q.id)
	if err != nil {
		return nil, err
	}

	matches, err := q.store.Matches(q.id)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, ErrUnknownQuery
	}

	table, err := assemble.Build(q.graphs, queryGraphID, targetGraphID, matches,
		assemble.WithHops(cfg.h), assemble.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("query: assemble: %w", err)
	}

	result, err := solve.Run(ctx, table, cfg.h, solve.WithMaxIters(cfg.maxIters))
	if err != nil {
		return nil, fmt.Errorf("query: solve: %w", err)
	}

	queryNodes, err := q.graphs.Nodes(queryGraphID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStorage, err)
	}
	sortedQueryNodes := append([]int(nil), queryNodes...)
	sort.Ints(sortedQueryNodes)

	subgraphs, err := solve.Extract(table, result, len(sortedQueryNodes), cfg.n, 1)
	if err != nil {
		return nil, fmt.Errorf("query: extract: %w", err)
	}

	ranked, err := rank.Rank(subgraphs, sortedQueryNodes, table.TargetEdges, cfg.n)
	if err != nil {
		return nil, fmt.Errorf("query: rank: %w", err)
	}

	payload := &Payload{
		Iterations:      result.Iters,
		SubgraphMatches: toSubgraphMatches(ranked, result.Costs),
		QueryNodes:      sortedQueryNodes,
		TargetNodes:     targetNodeUnion(ranked),
		TargetEdges:     targetEdgeUnion(ranked),
	}

	if cfg.edges {
		queryEdges, err := q.graphs.Edges(queryGraphID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", core.ErrStorage, err)
		}
		payload.QueryEdges = canonicalEdges(queryEdges)
	}

	return payload, nil
}

// toSubgraphMatches converts rank.SubgraphMatch values into the public
// Payload shape, pairing each assigned (v,u) with its raw relaxed cost
// from costs.
func toSubgraphMatches(ranked []rank.SubgraphMatch, costs map[solve.Pair]float64) []SubgraphMatch {
	out := make([]SubgraphMatch, 0, len(ranked))
	for _, m := range ranked {
		vs := make([]int, 0, len(m.Assignment))
		for v := range m.Assignment {
			vs = append(vs, v)
		}
		sort.Ints(vs)

		pairs := make([]Pair, 0, len(vs))
		scores := make([]float64, 0, len(vs))
		for _, v := range vs {
			u := m.Assignment[v]
			pairs = append(pairs, Pair{QNode: v, TNode: u})
			scores = append(scores, costs[solve.Pair{V: v, U: u}])
		}

		out = append(out, SubgraphMatch{
			SubgraphMatch:    pairs,
			TotalScore:       m.Score,
			IndividualScores: scores,
		})
	}

	return out
}

// targetNodeUnion collects every target node assigned by any ranked
// subgraph, ascending.
func targetNodeUnion(ranked []rank.SubgraphMatch) []int {
	set := map[int]struct{}{}
	for _, m := range ranked {
		for _, u := range m.Assignment {
			set[u] = struct{}{}
		}
	}

	nodes := make([]int, 0, len(set))
	for u := range set {
		nodes = append(nodes, u)
	}
	sort.Ints(nodes)

	return nodes
}

// targetEdgeUnion collects the union of each ranked subgraph's own
// target-edge closure: two subgraphs that each touch one endpoint of an
// edge without either assigning both endpoints must not contribute that
// edge.
func targetEdgeUnion(ranked []rank.SubgraphMatch) [][2]int {
	seen := map[[2]int]struct{}{}
	var edges [][2]int
	for _, m := range ranked {
		for _, e := range m.TargetEdges {
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})

	return edges
}

// canonicalEdges deduplicates and sorts a raw symmetric edge list into
// single (a,b) entries with a<b.
func canonicalEdges(raw [][2]int) [][2]int {
	seen := map[[2]int]struct{}{}
	var out [][2]int
	for _, e := range raw {
		a, b := e[0], e[1]
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}
