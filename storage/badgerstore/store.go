// File: store.go
// Role: BadgerDB-backed implementation of core.GraphStore and
// query.Store (see doc.go for the key layout).
package badgerstore

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"

	"github.com/dgraph-io/badger/v4"

	"github.com/fornaxgraph/fornax/core"
	"github.com/fornaxgraph/fornax/query"
)

const (
	prefixNode  = "n:"
	prefixEdge  = "e:"
	prefixQuery = "q:"
	prefixMatch = "m:"

	seqGraph = "fornax:seq:graph"
	seqQuery = "fornax:seq:query"
)

// queryRow is the JSON payload stored under prefixQuery.
type queryRow struct {
	QueryGraphID  int
	TargetGraphID int
}

// Store is a GraphStore and query.Store backed by an open *badger.DB.
type Store struct {
	db       *badger.DB
	graphSeq *badger.Sequence
	querySeq *badger.Sequence
}

// Open opens (or creates) a BadgerDB database at path and returns a Store
// ready to serve core.GraphStore and query.Store traffic.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("%w: opening badger db: %v", core.ErrStorage, err)
	}

	graphSeq, err := db.GetSequence([]byte(seqGraph), 100)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: graph sequence: %v", core.ErrStorage, err)
	}
	querySeq, err := db.GetSequence([]byte(seqQuery), 100)
	if err != nil {
		_ = graphSeq.Release()
		_ = db.Close()
		return nil, fmt.Errorf("%w: query sequence: %v", core.ErrStorage, err)
	}

	return &Store{db: db, graphSeq: graphSeq, querySeq: querySeq}, nil
}

// Close releases the sequences and closes the underlying database.
func (s *Store) Close() error {
	_ = s.graphSeq.Release()
	_ = s.querySeq.Release()

	return s.db.Close()
}

var (
	_ core.GraphStore = (*Store)(nil)
	_ query.Store     = (*Store)(nil)
)

func nodeKey(graphID, node int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d", prefixNode, graphID, node))
}

func nodePrefix(graphID int) []byte {
	return []byte(fmt.Sprintf("%s%d:", prefixNode, graphID))
}

func edgeKey(graphID, start, end int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d:%d", prefixEdge, graphID, start, end))
}

func edgePrefix(graphID int) []byte {
	return []byte(fmt.Sprintf("%s%d:", prefixEdge, graphID))
}

func queryKey(queryID int) []byte {
	return []byte(fmt.Sprintf("%s%d", prefixQuery, queryID))
}

func matchKey(queryID, qNode, tNode int) []byte {
	return []byte(fmt.Sprintf("%s%d:%d:%d", prefixMatch, queryID, qNode, tNode))
}

func matchPrefix(queryID int) []byte {
	return []byte(fmt.Sprintf("%s%d:", prefixMatch, queryID))
}

func encodeWeight(w float64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, math.Float64bits(w))
	return buf
}

func decodeWeight(buf []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(buf))
}

// CreateGraph assigns an id from the graph sequence, then persists nodes
// and symmetric edges in one transaction (phase one: nodes, phase two:
// edges); either both phases land or neither does.
func (s *Store) CreateGraph(nodes []int, edges [][2]int) (int, error) {
	id64, err := s.graphSeq.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: next graph id: %v", core.ErrStorage, err)
	}
	id := int(id64)

	err = s.db.Update(func(txn *badger.Txn) error {
		for _, n := range nodes {
			if err := txn.Set(nodeKey(id, n), nil); err != nil {
				return err
			}
		}
		for _, e := range edges {
			if err := txn.Set(edgeKey(id, e[0], e[1]), nil); err != nil {
				return err
			}
			if err := txn.Set(edgeKey(id, e[1], e[0]), nil); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: create graph: %v", core.ErrStorage, err)
	}

	return id, nil
}

// DeleteGraph removes a graph's edges then its nodes in one transaction.
func (s *Store) DeleteGraph(graphID int) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, edgePrefix(graphID)); err != nil {
			return err
		}
		return deletePrefix(txn, nodePrefix(graphID))
	})
	if err != nil {
		return fmt.Errorf("%w: delete graph %d: %v", core.ErrStorage, graphID, err)
	}

	return nil
}

// GraphExists reports whether any node key exists for graphID.
func (s *Store) GraphExists(graphID int) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = nodePrefix(graphID)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		it.Rewind()
		found = it.Valid()

		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: graph exists %d: %v", core.ErrStorage, graphID, err)
	}

	return found, nil
}

// Nodes returns every node id persisted for graphID.
func (s *Store) Nodes(graphID int) ([]int, error) {
	var nodes []int
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := nodePrefix(graphID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var n int
			key := it.Item().Key()
			if _, err := fmt.Sscanf(string(key[len(prefix):]), "%d", &n); err != nil {
				return fmt.Errorf("parsing node key %q: %w", key, err)
			}
			nodes = append(nodes, n)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: nodes %d: %v", core.ErrStorage, graphID, err)
	}
	if nodes == nil {
		return nil, fmt.Errorf("%w: graph %d", core.ErrUnknownGraph, graphID)
	}

	return nodes, nil
}

// Edges returns every stored (start,end) pair, both orientations.
func (s *Store) Edges(graphID int) ([][2]int, error) {
	exists, err := s.GraphExists(graphID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: graph %d", core.ErrUnknownGraph, graphID)
	}

	var edges [][2]int
	err = s.db.View(func(txn *badger.Txn) error {
		prefix := edgePrefix(graphID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var a, b int
			key := it.Item().Key()
			if _, err := fmt.Sscanf(string(key[len(prefix):]), "%d:%d", &a, &b); err != nil {
				return fmt.Errorf("parsing edge key %q: %w", key, err)
			}
			edges = append(edges, [2]int{a, b})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: edges %d: %v", core.ErrStorage, graphID, err)
	}

	return edges, nil
}

// Neighbors returns the node ids adjacent to node within graphID.
func (s *Store) Neighbors(graphID, node int) ([]int, error) {
	var out []int
	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("%s%d:%d:", prefixEdge, graphID, node))
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var end int
			key := it.Item().Key()
			if _, err := fmt.Sscanf(string(key[len(prefix):]), "%d", &end); err != nil {
				return fmt.Errorf("parsing neighbor key %q: %w", key, err)
			}
			out = append(out, end)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: neighbors %d/%d: %v", core.ErrStorage, graphID, node, err)
	}

	return out, nil
}

// CreateQuery assigns an id from the query sequence, then persists the
// query row and its match rows in one transaction (phase one: query row,
// phase two: matches).
func (s *Store) CreateQuery(queryGraphID, targetGraphID int, matches []core.Match) (int, error) {
	id64, err := s.querySeq.Next()
	if err != nil {
		return 0, fmt.Errorf("%w: next query id: %v", core.ErrStorage, err)
	}
	id := int(id64)

	row, err := json.Marshal(queryRow{QueryGraphID: queryGraphID, TargetGraphID: targetGraphID})
	if err != nil {
		return 0, fmt.Errorf("%w: marshal query row: %v", core.ErrStorage, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(queryKey(id), row); err != nil {
			return err
		}
		for _, m := range matches {
			if err := txn.Set(matchKey(id, m.QNode, m.TNode), encodeWeight(m.Weight)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: create query: %v", core.ErrStorage, err)
	}

	return id, nil
}

// DeleteQuery removes a query and its matches.
func (s *Store) DeleteQuery(queryID int) error {
	exists, err := s.QueryExists(queryID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: query %d", query.ErrUnknownQuery, queryID)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := deletePrefix(txn, matchPrefix(queryID)); err != nil {
			return err
		}
		return txn.Delete(queryKey(queryID))
	})
	if err != nil {
		return fmt.Errorf("%w: delete query %d: %v", core.ErrStorage, queryID, err)
	}

	return nil
}

// QueryExists reports whether a query row exists for queryID.
func (s *Store) QueryExists(queryID int) (bool, error) {
	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(queryKey(queryID))
		switch {
		case err == nil:
			found = true
			return nil
		case err == badger.ErrKeyNotFound:
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return false, fmt.Errorf("%w: query exists %d: %v", core.ErrStorage, queryID, err)
	}

	return found, nil
}

// QueryGraphs returns the query and target graph ids for queryID.
func (s *Store) QueryGraphs(queryID int) (int, int, error) {
	var row queryRow
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(queryKey(queryID))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: query %d", query.ErrUnknownQuery, queryID)
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &row)
		})
	})
	if err != nil {
		return 0, 0, err
	}

	return row.QueryGraphID, row.TargetGraphID, nil
}

// Matches returns the candidate match set for queryID.
func (s *Store) Matches(queryID int) ([]core.Match, error) {
	exists, err := s.QueryExists(queryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: query %d", query.ErrUnknownQuery, queryID)
	}

	var matches []core.Match
	err = s.db.View(func(txn *badger.Txn) error {
		prefix := matchPrefix(queryID)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var q, tN int
			key := item.Key()
			if _, err := fmt.Sscanf(string(key[len(prefix):]), "%d:%d", &q, &tN); err != nil {
				return fmt.Errorf("parsing match key %q: %w", key, err)
			}
			var w float64
			if err := item.Value(func(val []byte) error {
				w = decodeWeight(val)
				return nil
			}); err != nil {
				return err
			}
			matches = append(matches, core.Match{QNode: q, TNode: tN, Weight: w})
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: matches %d: %v", core.ErrStorage, queryID, err)
	}

	return matches, nil
}

// deletePrefix removes every key under prefix within txn.
func deletePrefix(txn *badger.Txn, prefix []byte) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)

	var keys [][]byte
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, append([]byte(nil), it.Item().Key()...))
	}
	it.Close()

	for _, k := range keys {
		if err := txn.Delete(k); err != nil {
			return err
		}
	}

	return nil
}
