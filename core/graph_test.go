package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornaxgraph/fornax/core"
)

// memStub is the smallest GraphStore good enough to exercise core.Graph
// without pulling in storage/memstore (kept dependency-free on purpose so
// core's own tests never depend on its collaborators).
type memStub struct {
	nextID int
	nodes  map[int][]int
	edges  map[int][][2]int
}

func newMemStub() *memStub {
	return &memStub{nodes: map[int][]int{}, edges: map[int][][2]int{}}
}

func (s *memStub) CreateGraph(nodes []int, edges [][2]int) (int, error) {
	id := s.nextID
	s.nextID++
	s.nodes[id] = append([]int(nil), nodes...)
	var sym [][2]int
	for _, e := range edges {
		sym = append(sym, [2]int{e[0], e[1]}, [2]int{e[1], e[0]})
	}
	s.edges[id] = sym

	return id, nil
}

func (s *memStub) DeleteGraph(id int) error {
	delete(s.edges, id)
	delete(s.nodes, id)

	return nil
}

func (s *memStub) GraphExists(id int) (bool, error) {
	_, ok := s.nodes[id]

	return ok, nil
}

func (s *memStub) Nodes(id int) ([]int, error) {
	nodes, ok := s.nodes[id]
	if !ok {
		return nil, core.ErrUnknownGraph
	}

	return nodes, nil
}

func (s *memStub) Edges(id int) ([][2]int, error) {
	return s.edges[id], nil
}

func (s *memStub) Neighbors(id, node int) ([]int, error) {
	var out []int
	for _, e := range s.edges[id] {
		if e[0] == node {
			out = append(out, e[1])
		}
	}

	return out, nil
}

func TestCreateGraph_IDMonotonicity(t *testing.T) {
	store := newMemStub()
	var ids []int
	for i := 0; i < 3; i++ {
		g, err := core.CreateGraph(store, []int{0, 1}, [][2]int{{0, 1}})
		require.NoError(t, err)
		ids = append(ids, g.ID())
	}
	assert.Equal(t, []int{0, 1, 2}, ids)
}

func TestOpenGraph_Unknown(t *testing.T) {
	store := newMemStub()
	_, err := core.OpenGraph(store, 0)
	assert.True(t, errors.Is(err, core.ErrUnknownGraph))
}

func TestCreateGraph_CountAndLen(t *testing.T) {
	store := newMemStub()
	g, err := core.CreateGraph(store, []int{0, 1, 2, 3, 4}, nil)
	require.NoError(t, err)
	n, err := g.Len()
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestCreateGraph_SelfLoopRejected(t *testing.T) {
	store := newMemStub()
	_, err := core.CreateGraph(store, []int{0, 1, 2, 3, 4}, [][2]int{{0, 0}})
	assert.True(t, errors.Is(err, core.ErrBadEdge))
}

func TestGraph_EdgeSymmetryAndCanonicalIteration(t *testing.T) {
	store := newMemStub()
	g, err := core.CreateGraph(store, []int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}})
	require.NoError(t, err)

	raw, err := store.Edges(g.ID())
	require.NoError(t, err)
	seen := map[[2]int]bool{}
	for _, e := range raw {
		seen[e] = true
	}
	for _, e := range raw {
		assert.True(t, seen[[2]int{e[1], e[0]}], "missing reverse of %v", e)
	}

	canon, err := g.Edges()
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {2, 3}}, canon)
}

func TestGraph_DeleteThenUnknown(t *testing.T) {
	store := newMemStub()
	g, err := core.CreateGraph(store, []int{0, 1, 2, 3, 4}, [][2]int{{0, 2}, {1, 3}, {2, 4}})
	require.NoError(t, err)
	require.NoError(t, g.Delete())

	_, err = core.OpenGraph(store, g.ID())
	assert.True(t, errors.Is(err, core.ErrUnknownGraph))

	nodes, _ := store.Nodes(g.ID())
	assert.Empty(t, nodes)
	edges, _ := store.Edges(g.ID())
	assert.Empty(t, edges)
}

func TestValidateMatches_WeightBounds(t *testing.T) {
	bad := []core.Match{{QNode: 1, TNode: 1, Weight: 1.1}}
	assert.True(t, errors.Is(core.ValidateMatches(bad), core.ErrBadMatch))

	bad = []core.Match{{QNode: 1, TNode: 1, Weight: 0}}
	assert.True(t, errors.Is(core.ValidateMatches(bad), core.ErrBadMatch))

	good := []core.Match{{QNode: 1, TNode: 1, Weight: 1}}
	assert.NoError(t, core.ValidateMatches(good))
}

func TestValidateMatches_RejectsDuplicates(t *testing.T) {
	dup := []core.Match{
		{QNode: 1, TNode: 2, Weight: 0.5},
		{QNode: 1, TNode: 2, Weight: 0.9},
	}
	assert.True(t, errors.Is(core.ValidateMatches(dup), core.ErrBadMatch))
}
