// File: solve.go
// Role: the iterative relaxation loop over a join table.
package solve

import (
	"context"

	"github.com/fornaxgraph/fornax/assemble"
)

// group is the per-pivot, per-query-neighbor bucket of candidate UU rows
// used to compute one neighbor's best-evidence contribution.
type group struct {
	vv   int
	rows []assemble.Row
}

// Run relaxes the costs of every candidate match present in table until
// convergence or MaxIters is reached.
//
// cost(v,u) starts at 1-weight(v,u): a full-confidence match (weight 1)
// starts at cost 0. On each iteration every pivot's cost is recomputed as
// its own (1-weight) term plus the mean, over its distinct query-side
// neighbors vv (every row with vv==v, the pivot's own query node, is
// excluded), of the
// cheapest candidate UU's cost from the previous iteration, scaled by how
// far that neighbor sits from the pivot ((dv+du)/(2h)). Rows are grouped
// by h implicitly through DV/DU already bounded by the join table.
func Run(ctx context.Context, table *assemble.Table, h int, opts ...Option) (*Result, error) {
	if table == nil || len(table.Rows) == 0 {
		return nil, ErrEmptyTable
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxIters <= 0 {
		return nil, ErrBadMaxIters
	}
	if cfg.Epsilon < 0 {
		return nil, ErrBadEpsilon
	}
	if h < 1 {
		h = 1
	}

	byPivot := map[Pair][]assemble.Row{}
	weight := map[Pair]float64{}
	for _, r := range table.Rows {
		p := Pair{V: r.V, U: r.U}
		byPivot[p] = append(byPivot[p], r)
		weight[p] = r.Weight
	}

	groups := map[Pair][]group{}
	for p, rows := range byPivot {
		byVV := map[int][]assemble.Row{}
		for _, r := range rows {
			if r.VV == p.V {
				continue // pivot's own query node, excluded from neighbor evidence
			}
			byVV[r.VV] = append(byVV[r.VV], r)
		}
		for vv, rr := range byVV {
			groups[p] = append(groups[p], group{vv: vv, rows: rr})
		}
	}

	cost := make(map[Pair]float64, len(byPivot))
	for p, w := range weight {
		cost[p] = clamp01(1 - w)
	}

	iters := 0
	converged := false
	for iters < cfg.MaxIters {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next := make(map[Pair]float64, len(cost))
		maxDelta := 0.0

		for p, w := range weight {
			grps := groups[p]
			base := 1 - w
			if len(grps) == 0 {
				next[p] = clamp01(base)
				continue
			}

			var sum float64
			for _, g := range grps {
				bestCost := 1.0
				var beta float64
				for i, r := range g.rows {
					nb := Pair{V: g.vv, U: r.UU}
					c, ok := cost[nb]
					if !ok {
						c = clamp01(1 - r.Weight)
					}
					if i == 0 || c < bestCost {
						bestCost = c
						beta = float64(r.DV+r.DU) / float64(2*h)
					}
				}
				sum += beta * bestCost
			}
			mean := sum / float64(len(grps))
			next[p] = clamp01(base + mean)
		}

		for p, c := range next {
			d := c - cost[p]
			if d < 0 {
				d = -d
			}
			if d > maxDelta {
				maxDelta = d
			}
		}

		cost = next
		iters++
		if maxDelta <= cfg.Epsilon {
			converged = true
			break
		}
	}

	return &Result{Costs: cost, Iters: iters, Converged: converged}, nil
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
