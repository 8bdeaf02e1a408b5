// Package core defines the shared graph and match primitives used across
// fornax: integer node/edge identifiers, the Match value type, the
// GraphStore collaborator interface, and the Graph handle built on top of
// it.
//
// A Graph never holds vertices or edges itself; it is a thin, comparable
// handle {store, id} delegating every read to a GraphStore. The "data"
// lives entirely in the collaborator (storage/memstore,
// storage/badgerstore), and core only knows the shape of that data and
// how to validate it.
//
// Edges are always materialized symmetrically by the store (both (a,b)
// and (b,a)); Graph.Edges canonicalizes them back to a<b on the way out.
//
// Errors:
//
//	ErrBadNode      - a node id failed validation.
//	ErrBadEdge      - an edge endpoint failed validation, or start == end.
//	ErrBadMatch     - a match failed validation (bad endpoint or weight).
//	ErrUnknownGraph - a graph handle references a graph id with no nodes.
//	ErrStorage      - the storage collaborator failed; wraps the cause.
package core
