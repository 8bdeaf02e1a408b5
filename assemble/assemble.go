// File: assemble.go
// Role: Build constructs the join table for one (query graph, target
// graph, matches, h) tuple.
package assemble

import (
	"fmt"
	"sort"

	"github.com/fornaxgraph/fornax/core"
)

// Build enumerates, for every match (pivot), the query-side neighbors vv
// within h hops of v and target-side neighbors uu within h hops of u such
// that (vv,uu) is itself a candidate match. Rows are returned sorted by
// (v,u,vv,uu) so that reduction order never affects the result. Build
// fails with ErrUnknownQuery if matches is empty.
func Build(graphs core.GraphStore, queryGraphID, targetGraphID int, matches []core.Match, opts ...Option) (*Table, error) {
	if len(matches) == 0 {
		return nil, ErrUnknownQuery
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.h < 1 {
		return nil, ErrBadHoppingDistance
	}

	matchSet := make(map[[2]int]struct{}, len(matches))
	for _, m := range matches {
		matchSet[[2]int{m.QNode, m.TNode}] = struct{}{}
	}

	queryNeighbors := func(n int) ([]int, error) { return graphs.Neighbors(queryGraphID, n) }
	targetNeighbors := func(n int) ([]int, error) { return graphs.Neighbors(targetGraphID, n) }

	queryDistCache := map[int]map[int]int{}
	targetDistCache := map[int]map[int]int{}

	distancesFrom := func(cache map[int]map[int]int, neighbors func(int) ([]int, error), start int) (map[int]int, error) {
		if d, ok := cache[start]; ok {
			return d, nil
		}
		d, err := boundedDistances(cfg.ctx, start, cfg.h, neighbors)
		if err != nil {
			return nil, err
		}
		cache[start] = d

		return d, nil
	}

	var rows []Row
	targetEdgeSeen := map[[2]int]struct{}{}
	uuObserved := map[int]struct{}{}

	for _, m := range matches {
		qDist, err := distancesFrom(queryDistCache, queryNeighbors, m.QNode)
		if err != nil {
			return nil, fmt.Errorf("assemble: query BFS from %d: %w", m.QNode, err)
		}
		tDist, err := distancesFrom(targetDistCache, targetNeighbors, m.TNode)
		if err != nil {
			return nil, fmt.Errorf("assemble: target BFS from %d: %w", m.TNode, err)
		}

		for vv, dv := range qDist {
			for uu, du := range tDist {
				if _, ok := matchSet[[2]int{vv, uu}]; !ok {
					continue
				}
				rows = append(rows, Row{
					V: m.QNode, U: m.TNode,
					VV: vv, UU: uu,
					DV: dv, DU: du,
					Weight: m.Weight,
				})
				uuObserved[uu] = struct{}{}
			}
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch {
		case a.V != b.V:
			return a.V < b.V
		case a.U != b.U:
			return a.U < b.U
		case a.VV != b.VV:
			return a.VV < b.VV
		default:
			return a.UU < b.UU
		}
	})

	targetEdges, err := graphs.Edges(targetGraphID)
	if err != nil {
		return nil, fmt.Errorf("assemble: target edges: %w", err)
	}
	var incident [][2]int
	for _, e := range targetEdges {
		a, b := e[0], e[1]
		if a > b {
			a, b = b, a
		}
		if _, dup := targetEdgeSeen[[2]int{a, b}]; dup {
			continue
		}
		_, aObserved := uuObserved[a]
		_, bObserved := uuObserved[b]
		if !aObserved && !bObserved {
			continue
		}
		targetEdgeSeen[[2]int{a, b}] = struct{}{}
		incident = append(incident, [2]int{a, b})
	}
	sort.Slice(incident, func(i, j int) bool {
		if incident[i][0] != incident[j][0] {
			return incident[i][0] < incident[j][0]
		}
		return incident[i][1] < incident[j][1]
	})

	return &Table{Rows: rows, TargetEdges: incident}, nil
}
