// File: graph.go
// Role: thin, deterministic public facade exposing the Graph handle:
//       constructors, read-only getters, and delete. No algorithmic
//       complexity lives here — it all lives in the GraphStore
//       collaborator and, for matching itself, in assemble/solve/rank.
package core

import (
	"fmt"
	"sort"
)

// Graph is a handle onto a graph persisted in a GraphStore. It holds no
// data of its own; every read is delegated to store. Once Delete has been
// called, the handle is dead and every subsequent call that reaches the
// store fails with ErrUnknownGraph.
type Graph struct {
	store GraphStore
	id    int
}

// CreateGraph validates nodes and edges (core.ValidateNodes/ValidateEdges),
// persists them via store, and returns a live handle to the new graph.
//
// Complexity: O(V+E) to validate, plus whatever store.CreateGraph costs.
func CreateGraph(store GraphStore, nodes []int, edges [][2]int) (*Graph, error) {
	if err := ValidateNodes(nodes); err != nil {
		return nil, err
	}
	nodeSet := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		nodeSet[n] = struct{}{}
	}
	if err := ValidateEdges(edges, nodeSet); err != nil {
		return nil, err
	}

	id, err := store.CreateGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return &Graph{store: store, id: id}, nil
}

// OpenGraph returns a handle to an existing graph, failing with
// ErrUnknownGraph if no nodes exist for graphID.
//
// fornax names each constructor after what it returns: OpenGraph always
// returns a *Graph, never a *Query, so the two handle types can never be
// confused for one another.
func OpenGraph(store GraphStore, graphID int) (*Graph, error) {
	exists, err := store.GraphExists(graphID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: graph %d", ErrUnknownGraph, graphID)
	}

	return &Graph{store: store, id: graphID}, nil
}

// ID returns the graph's assigned id.
func (g *Graph) ID() int { return g.id }

// String renders a Graph handle for logs, mirroring the original's
// <GraphHandle(graph_id=...)> repr.
func (g *Graph) String() string { return fmt.Sprintf("Graph(graph_id=%d)", g.id) }

// Store returns the underlying GraphStore, for collaborators (package
// query, assemble) that need to look up a graph's nodes/edges by id
// without going through a *Graph handle.
func (g *Graph) Store() GraphStore { return g.store }

// Delete removes the graph's edges then its nodes. Subsequent operations
// on this handle fail with ErrUnknownGraph.
func (g *Graph) Delete() error {
	exists, err := g.store.GraphExists(g.id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if !exists {
		return fmt.Errorf("%w: graph %d", ErrUnknownGraph, g.id)
	}
	if err := g.store.DeleteGraph(g.id); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return nil
}

// Nodes returns every node id in ascending order.
func (g *Graph) Nodes() ([]int, error) {
	nodes, err := g.store.Nodes(g.id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	sorted := append([]int(nil), nodes...)
	sort.Ints(sorted)

	return sorted, nil
}

// Edges yields each undirected edge exactly once, canonicalized with
// start < end, sorted lexicographically by (start,end).
func (g *Graph) Edges() ([][2]int, error) {
	raw, err := g.store.Edges(g.id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	seen := make(map[[2]int]struct{}, len(raw)/2+1)
	canon := make([][2]int, 0, len(raw)/2+1)
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
		canon = append(canon, key)
	}
	sort.Slice(canon, func(i, j int) bool {
		if canon[i][0] != canon[j][0] {
			return canon[i][0] < canon[j][0]
		}
		return canon[i][1] < canon[j][1]
	})

	return canon, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() (int, error) {
	nodes, err := g.Nodes()
	if err != nil {
		return 0, err
	}

	return len(nodes), nil
}
