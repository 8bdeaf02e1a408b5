package memstore_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornaxgraph/fornax/core"
	"github.com/fornaxgraph/fornax/query"
	"github.com/fornaxgraph/fornax/storage/memstore"
)

func TestCreateGraph_IDMonotonicity(t *testing.T) {
	store := memstore.New()
	var ids []int
	for i := 0; i < 3; i++ {
		id, err := store.CreateGraph([]int{0, 1}, [][2]int{{0, 1}})
		require.NoError(t, err)
		ids = append(ids, id)
	}
	assert.Equal(t, []int{0, 1, 2}, ids)
}

func TestCreateGraph_EdgesAreSymmetric(t *testing.T) {
	store := memstore.New()
	id, err := store.CreateGraph([]int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}})
	require.NoError(t, err)

	edges, err := store.Edges(id)
	require.NoError(t, err)
	seen := map[[2]int]bool{}
	for _, e := range edges {
		seen[e] = true
	}
	for _, e := range edges {
		assert.True(t, seen[[2]int{e[1], e[0]}])
	}
}

func TestGraph_UnknownLookups(t *testing.T) {
	store := memstore.New()
	_, err := store.Nodes(42)
	assert.ErrorIs(t, err, core.ErrUnknownGraph)

	exists, err := store.GraphExists(42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleteGraph_RemovesNodesAndEdges(t *testing.T) {
	store := memstore.New()
	id, err := store.CreateGraph([]int{0, 1, 2}, [][2]int{{0, 1}})
	require.NoError(t, err)
	require.NoError(t, store.DeleteGraph(id))

	exists, err := store.GraphExists(id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateQuery_FirstIDIsZeroAndLookup(t *testing.T) {
	store := memstore.New()
	src, err := store.CreateGraph([]int{1, 2}, nil)
	require.NoError(t, err)
	dst, err := store.CreateGraph([]int{1, 2}, nil)
	require.NoError(t, err)

	matches := []core.Match{{QNode: 1, TNode: 1, Weight: 1}}
	id, err := store.CreateQuery(src, dst, matches)
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	qg, tg, err := store.QueryGraphs(id)
	require.NoError(t, err)
	assert.Equal(t, src, qg)
	assert.Equal(t, dst, tg)

	got, err := store.Matches(id)
	require.NoError(t, err)
	assert.Equal(t, matches, got)
}

func TestDeleteQuery_ThenUnknown(t *testing.T) {
	store := memstore.New()
	id, err := store.CreateQuery(0, 1, nil)
	require.NoError(t, err)
	require.NoError(t, store.DeleteQuery(id))

	_, _, err = store.QueryGraphs(id)
	assert.ErrorIs(t, err, query.ErrUnknownQuery)
}

func TestConcurrentReadsDoNotRace(t *testing.T) {
	store := memstore.New()
	id, err := store.CreateGraph([]int{1, 2, 3}, [][2]int{{1, 2}, {2, 3}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Nodes(id)
			_, _ = store.Edges(id)
			_, _ = store.Neighbors(id, 2)
		}()
	}
	wg.Wait()
}
