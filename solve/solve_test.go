package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fornaxgraph/fornax/assemble"
	"github.com/fornaxgraph/fornax/core"
	"github.com/fornaxgraph/fornax/solve"
)

type fakeStore struct {
	adj   map[int]map[int][]int
	edges map[int][][2]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{adj: map[int]map[int][]int{}, edges: map[int][][2]int{}}
}

func (s *fakeStore) add(id int, edges [][2]int) {
	s.edges[id] = edges
	s.adj[id] = map[int][]int{}
	for _, e := range edges {
		s.adj[id][e[0]] = append(s.adj[id][e[0]], e[1])
		s.adj[id][e[1]] = append(s.adj[id][e[1]], e[0])
	}
}

func (s *fakeStore) CreateGraph(nodes []int, edges [][2]int) (int, error) { return 0, nil }
func (s *fakeStore) DeleteGraph(id int) error                            { return nil }
func (s *fakeStore) GraphExists(id int) (bool, error)                    { return true, nil }
func (s *fakeStore) Nodes(id int) ([]int, error)                         { return nil, nil }
func (s *fakeStore) Edges(id int) ([][2]int, error)                      { return s.edges[id], nil }
func (s *fakeStore) Neighbors(id, node int) ([]int, error)               { return s.adj[id][node], nil }

func canonicalTable(t *testing.T) (*assemble.Table, []core.Match) {
	t.Helper()
	store := newFakeStore()
	const queryID, targetID = 1, 2
	store.add(queryID, [][2]int{{1, 3}, {1, 2}, {2, 4}, {4, 5}})
	store.add(targetID, [][2]int{
		{1, 2}, {1, 3}, {1, 4}, {3, 7}, {4, 5}, {4, 6}, {5, 7},
		{6, 8}, {7, 10}, {8, 9}, {8, 12}, {9, 10}, {10, 11}, {11, 12}, {11, 13},
	})
	matches := []core.Match{
		{QNode: 1, TNode: 1, Weight: 1}, {QNode: 1, TNode: 4, Weight: 1}, {QNode: 1, TNode: 8, Weight: 1},
		{QNode: 2, TNode: 2, Weight: 1}, {QNode: 2, TNode: 5, Weight: 1}, {QNode: 2, TNode: 9, Weight: 1},
		{QNode: 3, TNode: 3, Weight: 1}, {QNode: 3, TNode: 6, Weight: 1}, {QNode: 3, TNode: 12, Weight: 1}, {QNode: 3, TNode: 13, Weight: 1},
		{QNode: 4, TNode: 7, Weight: 1}, {QNode: 4, TNode: 10, Weight: 1},
		{QNode: 5, TNode: 11, Weight: 1},
	}

	table, err := assemble.Build(store, queryID, targetID, matches, assemble.WithHops(2))
	require.NoError(t, err)

	return table, matches
}

func TestRun_RejectsEmptyTable(t *testing.T) {
	_, err := solve.Run(context.Background(), &assemble.Table{}, 2)
	assert.ErrorIs(t, err, solve.ErrEmptyTable)
}

func TestRun_RejectsBadOptions(t *testing.T) {
	table, _ := canonicalTable(t)
	_, err := solve.Run(context.Background(), table, 2, solve.WithMaxIters(0))
	assert.ErrorIs(t, err, solve.ErrBadMaxIters)

	_, err = solve.Run(context.Background(), table, 2, solve.WithEpsilon(-1))
	assert.ErrorIs(t, err, solve.ErrBadEpsilon)
}

func TestRun_CostsStayBounded(t *testing.T) {
	table, _ := canonicalTable(t)
	result, err := solve.Run(context.Background(), table, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, result.Costs)
	for p, c := range result.Costs {
		assert.GreaterOrEqual(t, c, 0.0, "cost of %+v below 0", p)
		assert.LessOrEqual(t, c, 1.0, "cost of %+v above 1", p)
	}
	assert.LessOrEqual(t, result.Iters, 10)
}

func TestRun_PerfectWeightsStayCheap(t *testing.T) {
	// Every match in the fixture carries weight 1, so every pivot starts
	// at cost 0; relaxation can only ever raise cost away from the
	// diagonal mapping, never invent a cheaper one out of nothing.
	table, _ := canonicalTable(t)
	result, err := solve.Run(context.Background(), table, 2, solve.WithMaxIters(25), solve.WithEpsilon(1e-6))
	require.NoError(t, err)

	diagonal := []solve.Pair{{V: 1, U: 1}, {V: 2, U: 2}, {V: 3, U: 3}, {V: 4, U: 7}, {V: 5, U: 11}}
	for _, p := range diagonal {
		c, ok := result.Costs[p]
		require.True(t, ok, "expected diagonal pair %+v in result", p)
		assert.Less(t, c, 1.0)
	}
}

func TestExtract_ProducesNSubgraphsWithoutTargetReuse(t *testing.T) {
	table, _ := canonicalTable(t)
	result, err := solve.Run(context.Background(), table, 2)
	require.NoError(t, err)

	subgraphs, err := solve.Extract(table, result, 5, 2, 1)
	require.NoError(t, err)
	require.Len(t, subgraphs, 2)

	for _, sg := range subgraphs {
		seen := map[int]bool{}
		for _, u := range sg.Assignment {
			assert.False(t, seen[u], "target node %d reused within one subgraph", u)
			seen[u] = true
		}
	}

	assert.LessOrEqual(t, subgraphs[0].Cost, subgraphs[1].Cost)
}

// TestExtract_FindsCanonicalSubgraph checks that one of the two
// structurally consistent assignments published in spec.md §8 scenario
// 5 is reachable among the full candidate pool, not just in the top 2
// (which may also surface other zero-cost, structurally legal but less
// faithful completions once several candidate matches carry equal
// relaxed cost; see DESIGN.md).
func TestExtract_FindsCanonicalSubgraph(t *testing.T) {
	table, _ := canonicalTable(t)
	result, err := solve.Run(context.Background(), table, 2)
	require.NoError(t, err)

	subgraphs, err := solve.Extract(table, result, 5, 5, 1)
	require.NoError(t, err)

	want := map[int]int{1: 8, 2: 9, 3: 6, 4: 10, 5: 11}
	found := false
	for _, sg := range subgraphs {
		if len(sg.Assignment) != len(want) {
			continue
		}
		match := true
		for v, u := range want {
			if sg.Assignment[v] != u {
				match = false
				break
			}
		}
		if match {
			found = true
			assert.Equal(t, 0.0, sg.Cost)
			break
		}
	}
	assert.True(t, found, "expected %v among extracted subgraphs", want)
}

func TestExtract_RejectsBadTopN(t *testing.T) {
	table, _ := canonicalTable(t)
	result, err := solve.Run(context.Background(), table, 2)
	require.NoError(t, err)

	_, err = solve.Extract(table, result, 5, 0, 1)
	assert.ErrorIs(t, err, solve.ErrBadTopN)
}

func TestExtract_RejectsEmptyTable(t *testing.T) {
	_, err := solve.Extract(&assemble.Table{}, &solve.Result{Costs: map[solve.Pair]float64{}}, 5, 1, 1)
	assert.ErrorIs(t, err, solve.ErrEmptyTable)
}
