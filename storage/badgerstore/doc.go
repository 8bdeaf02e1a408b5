// Package badgerstore is an embedded, persistent GraphStore and
// query.Store backed by github.com/dgraph-io/badger/v4. It gives the
// persistence collaborator a durable default outside of tests, without
// reaching for a cgo driver.
//
// Keys are namespaced by relation, one prefix per conceptual table:
//
//	n:<graphID>:<nodeID>             - node existence marker
//	e:<graphID>:<start>:<end>        - symmetric edge existence marker
//	q:<queryID>                      - JSON {QueryGraphID, TargetGraphID}
//	m:<queryID>:<qNode>:<tNode>      - match weight, big-endian float64
//
// Graph and query ids are assigned from badger's own Sequence objects
// rather than a max(id)+1 scan, since a persistent store is expected to
// survive concurrent creators.
//
// Every CreateGraph / CreateQuery runs inside one db.Update transaction:
// badger only commits once the callback returns nil, so a failure
// writing edges (or matches) after nodes (or the query row) have already
// been staged rolls the whole transaction back automatically — nothing
// is visible to readers until both phases succeed.
package badgerstore
