// File: store.go
// Role: in-memory implementation of core.GraphStore and query.Store.
package memstore

import (
	"fmt"
	"sync"

	"github.com/fornaxgraph/fornax/core"
	"github.com/fornaxgraph/fornax/query"
)

// graphRecord holds one graph's persisted nodes and symmetric edges.
type graphRecord struct {
	nodes []int
	edges [][2]int
	adj   map[int][]int
}

// queryRecord holds one query's graph pair and candidate matches.
type queryRecord struct {
	queryGraphID, targetGraphID int
	matches                     []core.Match
}

// Store is a GraphStore and query.Store backed by maps guarded by two
// independent mutexes, one per logical region: graph operations never
// block query operations and vice versa.
type Store struct {
	muGraphs sync.RWMutex
	graphs   map[int]*graphRecord
	nextG    int

	muQueries sync.RWMutex
	queries   map[int]*queryRecord
	nextQ     int
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		graphs:  map[int]*graphRecord{},
		queries: map[int]*queryRecord{},
	}
}

var (
	_ core.GraphStore = (*Store)(nil)
	_ query.Store     = (*Store)(nil)
)

// CreateGraph assigns the next id from a counter starting at 0 (ids of
// deleted graphs are not reused), then commits nodes
// and symmetric edges as one in-memory transaction: if anything below
// were to fail, the partially built record is simply discarded before it
// is ever installed into s.graphs.
func (s *Store) CreateGraph(nodes []int, edges [][2]int) (int, error) {
	s.muGraphs.Lock()
	defer s.muGraphs.Unlock()

	rec := &graphRecord{
		nodes: append([]int(nil), nodes...),
		adj:   make(map[int][]int, len(nodes)),
	}
	for _, n := range nodes {
		rec.adj[n] = nil
	}
	for _, e := range edges {
		rec.edges = append(rec.edges, [2]int{e[0], e[1]}, [2]int{e[1], e[0]})
		rec.adj[e[0]] = append(rec.adj[e[0]], e[1])
		rec.adj[e[1]] = append(rec.adj[e[1]], e[0])
	}

	id := s.nextG
	s.nextG++
	s.graphs[id] = rec

	return id, nil
}

// DeleteGraph removes a graph's edges then its nodes.
func (s *Store) DeleteGraph(graphID int) error {
	s.muGraphs.Lock()
	defer s.muGraphs.Unlock()
	delete(s.graphs, graphID)

	return nil
}

// GraphExists reports whether graphID has been created and not deleted,
// even if it was created with no nodes.
func (s *Store) GraphExists(graphID int) (bool, error) {
	s.muGraphs.RLock()
	defer s.muGraphs.RUnlock()
	_, ok := s.graphs[graphID]

	return ok, nil
}

// Nodes returns every node id of graphID.
func (s *Store) Nodes(graphID int) ([]int, error) {
	s.muGraphs.RLock()
	defer s.muGraphs.RUnlock()
	rec, ok := s.graphs[graphID]
	if !ok {
		return nil, fmt.Errorf("%w: graph %d", core.ErrUnknownGraph, graphID)
	}

	return append([]int(nil), rec.nodes...), nil
}

// Edges returns every stored (start,end) pair, both orientations.
func (s *Store) Edges(graphID int) ([][2]int, error) {
	s.muGraphs.RLock()
	defer s.muGraphs.RUnlock()
	rec, ok := s.graphs[graphID]
	if !ok {
		return nil, fmt.Errorf("%w: graph %d", core.ErrUnknownGraph, graphID)
	}

	return append([][2]int(nil), rec.edges...), nil
}

// Neighbors returns the node ids adjacent to node within graphID.
func (s *Store) Neighbors(graphID, node int) ([]int, error) {
	s.muGraphs.RLock()
	defer s.muGraphs.RUnlock()
	rec, ok := s.graphs[graphID]
	if !ok {
		return nil, fmt.Errorf("%w: graph %d", core.ErrUnknownGraph, graphID)
	}

	return append([]int(nil), rec.adj[node]...), nil
}

// CreateQuery assigns the next id from a counter starting at 0 (ids of
// deleted queries are not reused), then commits the
// query row and its match rows under a single lock, so a reader never
// observes a query row with no matches yet attached.
func (s *Store) CreateQuery(queryGraphID, targetGraphID int, matches []core.Match) (int, error) {
	s.muQueries.Lock()
	defer s.muQueries.Unlock()

	id := s.nextQ
	s.nextQ++
	s.queries[id] = &queryRecord{
		queryGraphID:  queryGraphID,
		targetGraphID: targetGraphID,
		matches:       append([]core.Match(nil), matches...),
	}

	return id, nil
}

// DeleteQuery removes a query and its matches.
func (s *Store) DeleteQuery(queryID int) error {
	s.muQueries.Lock()
	defer s.muQueries.Unlock()
	if _, ok := s.queries[queryID]; !ok {
		return fmt.Errorf("%w: query %d", query.ErrUnknownQuery, queryID)
	}
	delete(s.queries, queryID)

	return nil
}

// QueryExists reports whether queryID is known to the Store.
func (s *Store) QueryExists(queryID int) (bool, error) {
	s.muQueries.RLock()
	defer s.muQueries.RUnlock()
	_, ok := s.queries[queryID]

	return ok, nil
}

// QueryGraphs returns the query and target graph ids for queryID.
func (s *Store) QueryGraphs(queryID int) (int, int, error) {
	s.muQueries.RLock()
	defer s.muQueries.RUnlock()
	rec, ok := s.queries[queryID]
	if !ok {
		return 0, 0, fmt.Errorf("%w: query %d", query.ErrUnknownQuery, queryID)
	}

	return rec.queryGraphID, rec.targetGraphID, nil
}

// Matches returns the candidate match set for queryID.
func (s *Store) Matches(queryID int) ([]core.Match, error) {
	s.muQueries.RLock()
	defer s.muQueries.RUnlock()
	rec, ok := s.queries[queryID]
	if !ok {
		return nil, fmt.Errorf("%w: query %d", query.ErrUnknownQuery, queryID)
	}

	return append([]core.Match(nil), rec.matches...), nil
}
