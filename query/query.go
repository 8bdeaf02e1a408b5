// File: query.go
// Role: the Query handle: constructors, delete, and the thin getters
// Execute needs. No algorithmic complexity lives here — it all lives in
// assemble/solve/rank; Query only validates, stores, and orchestrates.
package query

import (
	"fmt"

	"github.com/fornaxgraph/fornax/core"
)

// Query is a handle onto a query persisted in a Store: which query
// graph is matched against which target graph, and the candidate match
// set between them. Like core.Graph, it holds no data of its own.
type Query struct {
	store  Store
	graphs core.GraphStore
	id     int
}

// CreateQuery validates matches against src/tgt's node sets
// (core.ValidateMatches, core.ValidateMatchEndpoints), persists the
// query row then the match rows via store, and returns a live handle.
//
// src and tgt must be backed by the same core.GraphStore; Execute and
// every collaborator below it look up both graphs through src.Store().
func CreateQuery(store Store, src, tgt *core.Graph, matches []core.Match) (*Query, error) {
	if err := core.ValidateMatches(matches); err != nil {
		return nil, err
	}

	qNodes, err := src.Nodes()
	if err != nil {
		return nil, err
	}
	tNodes, err := tgt.Nodes()
	if err != nil {
		return nil, err
	}

	if err := core.ValidateMatchEndpoints(matches, toSet(qNodes), toSet(tNodes)); err != nil {
		return nil, err
	}

	id, err := store.CreateQuery(src.ID(), tgt.ID(), matches)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStorage, err)
	}

	return &Query{store: store, graphs: src.Store(), id: id}, nil
}

// OpenQuery returns a handle to an existing query, failing with
// ErrUnknownQuery if queryID has no matches. graphs is the
// core.GraphStore backing both of the query's graphs.
//
// OpenQuery always returns a *Query, full stop — never a *Graph, so the
// two handle types can never be confused for one another.
func OpenQuery(graphs core.GraphStore, store Store, queryID int) (*Query, error) {
	exists, err := store.QueryExists(queryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrStorage, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: query %d", ErrUnknownQuery, queryID)
	}

	return &Query{store: store, graphs: graphs, id: queryID}, nil
}

// ID returns the query's assigned id.
func (q *Query) ID() int { return q.id }

// String renders a Query handle for logs, mirroring core.Graph.String.
func (q *Query) String() string { return fmt.Sprintf("Query(query_id=%d)", q.id) }

// Delete removes the query's matches (and its row). Subsequent
// operations on this handle fail with ErrUnknownQuery.
func (q *Query) Delete() error {
	if err := q.store.DeleteQuery(q.id); err != nil {
		return fmt.Errorf("%w: %w", core.ErrStorage, err)
	}

	return nil
}

func toSet(nodes []int) map[int]struct{} {
	set := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		set[n] = struct{}{}
	}

	return set
}
