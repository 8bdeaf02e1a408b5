// File: types.go
// Role: sentinel errors, the Match value type, and the GraphStore
// collaborator interface the rest of fornax is built against.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph and match operations.
//
// Callers branch on these with errors.Is; messages identify the offending
// record, but the sentinel itself never carries that detail — detail is
// attached with fmt.Errorf("%w: ...") at the call site.
var (
	// ErrBadNode indicates a non-integer node id in a creation call.
	ErrBadNode = errors.New("core: bad node id")

	// ErrBadEdge indicates a non-integer endpoint, or start == end.
	ErrBadEdge = errors.New("core: bad edge")

	// ErrBadMatch indicates a non-integer endpoint, non-numeric weight,
	// weight outside (0,1], or a duplicate (q_node, t_node) within one query.
	ErrBadMatch = errors.New("core: bad match")

	// ErrUnknownGraph indicates a handle references a graph id with no nodes.
	ErrUnknownGraph = errors.New("core: unknown graph")

	// ErrStorage wraps a pass-through failure from the storage collaborator.
	// The enclosing transactional scope has already been rolled back.
	ErrStorage = errors.New("core: storage error")
)

// Match is a weighted candidate pairing of a query node with a target
// node, tagged implicitly by the query_id it was created under.
type Match struct {
	// QNode is the query-graph node id.
	QNode int

	// TNode is the target-graph node id.
	TNode int

	// Weight is the candidacy weight, strictly in (0,1].
	Weight float64
}

// String renders a Match for error messages and logs.
func (m Match) String() string {
	return fmt.Sprintf("Match(q=%d, t=%d, w=%g)", m.QNode, m.TNode, m.Weight)
}

// GraphStore is the narrow capability set the core asks of its
// persistence collaborator. Implementations (storage/memstore,
// storage/badgerstore) need not share representation, only this contract.
//
// Edges are returned symmetrically: for every stored (a,b) there is a
// stored (b,a). CreateGraph assigns each new graph an id greater than any
// it assigned before and commits nodes, then edges, under one
// transactional scope.
type GraphStore interface {
	// CreateGraph persists nodes/edges and returns the newly assigned
	// graph id. It does not validate them; core.CreateGraph does that
	// before calling it.
	CreateGraph(nodes []int, edges [][2]int) (graphID int, err error)

	// DeleteGraph removes a graph's edges then its nodes.
	DeleteGraph(graphID int) error

	// GraphExists reports whether any node has been persisted for graphID.
	GraphExists(graphID int) (bool, error)

	// Nodes returns every node id in the graph. The order is up to the
	// implementation; Graph.Nodes sorts it.
	Nodes(graphID int) ([]int, error)

	// Edges returns every stored (start,end) pair, both orientations.
	Edges(graphID int) ([][2]int, error)

	// Neighbors returns the node ids adjacent to node within graphID.
	Neighbors(graphID, node int) ([]int, error)
}
