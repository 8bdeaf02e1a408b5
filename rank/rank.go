// File: rank.go
// Role: sort and trim raw subgraphs into SubgraphMatch results.
package rank

import (
	"sort"

	"github.com/fornaxgraph/fornax/solve"
)

// Rank converts subgraphs into at most n SubgraphMatch values, sorted
// ascending by score, annotated with the subset of targetEdges that the
// assignment's target nodes actually close.
func Rank(subgraphs []solve.Subgraph, queryNodes []int, targetEdges [][2]int, n int) ([]SubgraphMatch, error) {
	if n <= 0 {
		return nil, ErrBadTopN
	}

	nodes := append([]int(nil), queryNodes...)
	sort.Ints(nodes)

	matches := make([]SubgraphMatch, 0, len(subgraphs))
	for _, sg := range subgraphs {
		matches = append(matches, SubgraphMatch{
			QueryNodes:  nodes,
			Assignment:  sg.Assignment,
			Score:       sg.Cost,
			TargetEdges: closureEdges(sg.Assignment, targetEdges),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return lessAssignment(matches[i].Assignment, matches[j].Assignment, nodes)
	})

	if len(matches) > n {
		matches = matches[:n]
	}

	return matches, nil
}

// closureEdges returns the edges of targetEdges whose both endpoints
// appear among assignment's values.
func closureEdges(assignment map[int]int, targetEdges [][2]int) [][2]int {
	used := make(map[int]struct{}, len(assignment))
	for _, u := range assignment {
		used[u] = struct{}{}
	}

	var out [][2]int
	for _, e := range targetEdges {
		_, aUsed := used[e[0]]
		_, bUsed := used[e[1]]
		if aUsed && bUsed {
			out = append(out, e)
		}
	}

	return out
}

func lessAssignment(a, b map[int]int, nodes []int) bool {
	for _, v := range nodes {
		ua, aok := a[v]
		ub, bok := b[v]
		if aok != bok {
			return aok // an assignment with more matched nodes sorts first
		}
		if ua != ub {
			return ua < ub
		}
	}

	return false
}
