// Package memstore is an in-process, mutex-protected GraphStore and
// query.Store backed by plain Go maps. It is the collaborator used by
// the query package's end-to-end tests and is a reasonable production choice
// for a single process that does not need durability across restarts.
//
// memstore splits its locking by region (muGraphs for nodes/edges,
// muQueries for queries/matches) so that concurrent read-only
// executions of different queries never block each other.
package memstore
