// Package query implements the Query handle: the object a caller creates
// once per (query graph, target graph, candidate matches) tuple and then
// repeatedly executes to retrieve ranked subgraph matches.
//
// Execute orchestrates the three core components in sequence:
//
//	assemble.Build -> solve.Run -> solve.Extract -> rank.Rank
//
// Query itself holds no graph or match data; it is a thin handle over a
// Store, mirroring how core.Graph is a thin handle over a GraphStore.
package query
