// Package assemble builds the join table consumed by package solve: the
// per-pivot-match enumeration of query-side and target-side neighbors
// within a hopping distance h that are themselves candidate matches.
//
// Build runs one bounded BFS per distinct matched node on each side
// instead of re-traversing the graph once per solver iteration — the
// solver only ever indexes into the resulting Table.
//
// Determinism
//
//	Row order is (v,u,vv,uu) ascending regardless of the BFS frontier
//	order that produced it, so downstream reductions never depend on
//	map iteration order.
package assemble
