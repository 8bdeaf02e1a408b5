// File: extract.go
// Role: greedy extraction of up to n distinct candidate subgraphs from a
// relaxed Result.
package solve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fornaxgraph/fornax/assemble"
)

// Subgraph is one candidate assignment: a complete or partial mapping
// from query nodes to target nodes, with its total inference cost.
type Subgraph struct {
	Assignment map[int]int // query node -> target node
	Cost       float64     // sum of assigned pair costs + unmatched penalty
}

// Extract walks the query graph outward from each candidate match,
// cheapest first, assigning every newly visited query node the lowest-
// cost target node that is both unused within the subgraph under
// construction and within h hops, in the target graph, of some node
// already placed. It stops extending a branch once no legal candidate
// remains for the next query node; any node left unreached contributes
// unmatchedPenalty to that subgraph's cost instead of an assignment.
// Distinct roots frequently converge on the same assignment, so results
// are deduplicated by their (query node, target node) set before being
// sorted ascending by cost and trimmed to n.
//
// table supplies both the candidate pool (every match that survived
// into the join table) and the query-graph adjacency used to order each
// walk: a row with DV==1 relates a pivot to a direct query-graph
// neighbor. totalQueryNodes is the number of query nodes the caller
// expects assigned; unmatchedPenalty defaults to 1 if <= 0.
func Extract(table *assemble.Table, result *Result, totalQueryNodes, n int, unmatchedPenalty float64) ([]Subgraph, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, ErrEmptyTable
	}
	if n <= 0 {
		return nil, ErrBadTopN
	}
	if unmatchedPenalty <= 0 {
		unmatchedPenalty = 1
	}

	byPivot := map[Pair][]assemble.Row{}
	for _, r := range table.Rows {
		p := Pair{V: r.V, U: r.U}
		byPivot[p] = append(byPivot[p], r)
	}

	roots := make([]Pair, 0, len(byPivot))
	for p := range byPivot {
		roots = append(roots, p)
	}
	sort.Slice(roots, func(i, j int) bool {
		a, b := roots[i], roots[j]
		ca, cb := result.Costs[a], result.Costs[b]
		if ca != cb {
			return ca < cb
		}
		if a.V != b.V {
			return a.V < b.V
		}
		return a.U < b.U
	})

	seen := map[string]bool{}
	var subgraphs []Subgraph
	for _, root := range roots {
		assignment := walkFrom(root, byPivot, result.Costs)
		key := assignmentKey(assignment)
		if seen[key] {
			continue
		}
		seen[key] = true

		var total float64
		for v, u := range assignment {
			total += result.Costs[Pair{V: v, U: u}]
		}
		total += unmatchedPenalty * float64(totalQueryNodes-len(assignment))

		subgraphs = append(subgraphs, Subgraph{Assignment: assignment, Cost: total})
	}

	sort.SliceStable(subgraphs, func(i, j int) bool { return subgraphs[i].Cost < subgraphs[j].Cost })
	if len(subgraphs) > n {
		subgraphs = subgraphs[:n]
	}

	return subgraphs, nil
}

// walkFrom performs one BFS walk starting at root, growing assignment by
// consulting every already-placed pivot's own rows for candidates of the
// next query neighbor.
func walkFrom(root Pair, byPivot map[Pair][]assemble.Row, costs map[Pair]float64) map[int]int {
	assignment := map[int]int{root.V: root.U}
	used := map[int]bool{root.U: true}
	visited := map[int]bool{root.V: true}
	queue := []int{root.V}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		neighborSet := map[int]bool{}
		for _, r := range byPivot[Pair{V: v, U: assignment[v]}] {
			if r.DV == 1 {
				neighborSet[r.VV] = true
			}
		}
		neighbors := make([]int, 0, len(neighborSet))
		for vv := range neighborSet {
			neighbors = append(neighbors, vv)
		}
		sort.Ints(neighbors)

		for _, vv := range neighbors {
			if visited[vv] {
				continue
			}
			visited[vv] = true

			uu, ok := bestCandidate(vv, assignment, used, byPivot, costs)
			if !ok {
				continue
			}
			assignment[vv] = uu
			used[uu] = true
			queue = append(queue, vv)
		}
	}

	return assignment
}

// bestCandidate picks the cheapest unused target node for vv among every
// row contributed by an already-placed pivot, tie-broken by distance to
// the pivot that offered it (closer wins) then by target node id.
func bestCandidate(vv int, assignment map[int]int, used map[int]bool, byPivot map[Pair][]assemble.Row, costs map[Pair]float64) (int, bool) {
	bestDU := map[int]int{}
	for av, au := range assignment {
		for _, r := range byPivot[Pair{V: av, U: au}] {
			if r.VV != vv {
				continue
			}
			if d, ok := bestDU[r.UU]; !ok || r.DU < d {
				bestDU[r.UU] = r.DU
			}
		}
	}

	type candidate struct {
		uu, du int
	}
	var legal []candidate
	for uu, du := range bestDU {
		if !used[uu] {
			legal = append(legal, candidate{uu, du})
		}
	}
	if len(legal) == 0 {
		return 0, false
	}

	sort.Slice(legal, func(i, j int) bool {
		ci, cj := costs[Pair{V: vv, U: legal[i].uu}], costs[Pair{V: vv, U: legal[j].uu}]
		if ci != cj {
			return ci < cj
		}
		if legal[i].du != legal[j].du {
			return legal[i].du < legal[j].du
		}
		return legal[i].uu < legal[j].uu
	})

	return legal[0].uu, true
}

// assignmentKey renders assignment as a canonical string for deduping.
func assignmentKey(assignment map[int]int) string {
	keys := make([]int, 0, len(assignment))
	for v := range assignment {
		keys = append(keys, v)
	}
	sort.Ints(keys)

	var b strings.Builder
	for _, v := range keys {
		fmt.Fprintf(&b, "%d:%d,", v, assignment[v])
	}

	return b.String()
}
