// Package solve implements the iterative relaxation Solver: given a join
// table from package assemble, it propagates neighbor evidence between
// candidate matches until costs stabilize (or a cap on iterations is hit),
// then greedily extracts up to n distinct subgraphs from the relaxed
// table.
//
// Overview:
//
//   - Run computes, for every (v,u) pair present in the table, an
//     inference cost in [0,1]: low cost means strong evidence that v
//     should map to u.
//   - Each iteration recomputes cost(v,u) from the previous iteration's
//     costs of (v,u)'s neighbor pairs (vv,uu); the recursion bottoms out
//     because the hop-bounded join table is finite.
//   - Extract walks the relaxed table outward from repeated
//     highest-confidence seeds, assembling up to n distinct candidate
//     subgraphs; none reuses a target node within itself, though two
//     subgraphs may share pairs.
//
// Convergence is not guaranteed to reach a global optimum — this is a
// fixed-point relaxation, not an exact solver — so Run stops either when
// no cost changes by more than Epsilon between iterations, or after
// MaxIters iterations, whichever comes first.
package solve
