// File: validate.go
// Role: input validation for node/edge/match creation.
//
// Validation runs in full before any persistence side effect; the whole
// call aborts on the first violation rather than leaving partial state
// behind.
package core

import "fmt"

// ValidateNodes checks that every node id is usable as a graph node.
// Since node ids are already typed as int in this API, the only possible
// violation is a caller-supplied duplicate; ValidateNodes exists as a
// single choke point for that check and to keep the door open for
// future stricter validation (e.g. negative ids).
func ValidateNodes(nodes []int) error {
	seen := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: duplicate node %d", ErrBadNode, n)
		}
		seen[n] = struct{}{}
	}

	return nil
}

// ValidateEdges checks start != end for every edge and that both
// endpoints appear in nodeSet.
func ValidateEdges(edges [][2]int, nodeSet map[int]struct{}) error {
	for _, e := range edges {
		start, end := e[0], e[1]
		if start == end {
			return fmt.Errorf("%w: edge (%d,%d), start and end must differ", ErrBadEdge, start, end)
		}
		if _, ok := nodeSet[start]; !ok {
			return fmt.Errorf("%w: edge (%d,%d), start not in graph", ErrBadEdge, start, end)
		}
		if _, ok := nodeSet[end]; !ok {
			return fmt.Errorf("%w: edge (%d,%d), end not in graph", ErrBadEdge, start, end)
		}
	}

	return nil
}

// ValidateMatches checks 0 < weight <= 1 for every match and rejects
// duplicate (q_node, t_node) pairs within a single query, rather than
// silently merging them.
func ValidateMatches(matches []Match) error {
	seen := make(map[[2]int]struct{}, len(matches))
	for _, m := range matches {
		if m.Weight <= 0 || m.Weight > 1 {
			return fmt.Errorf("%w: %s, weight must satisfy 0 < weight <= 1", ErrBadMatch, m)
		}
		key := [2]int{m.QNode, m.TNode}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: %s, duplicate match within one query", ErrBadMatch, m)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// ValidateMatchEndpoints checks that every match's QNode belongs to the
// query graph and TNode belongs to the target graph.
func ValidateMatchEndpoints(matches []Match, queryNodes, targetNodes map[int]struct{}) error {
	for _, m := range matches {
		if _, ok := queryNodes[m.QNode]; !ok {
			return fmt.Errorf("%w: %s, q_node not in query graph", ErrBadMatch, m)
		}
		if _, ok := targetNodes[m.TNode]; !ok {
			return fmt.Errorf("%w: %s, t_node not in target graph", ErrBadMatch, m)
		}
	}

	return nil
}
