package query

import (
	"errors"

	"github.com/fornaxgraph/fornax/core"
)

// Sentinel errors returned by package query.
var (
	// ErrUnknownQuery is returned when a query id does not exist in the
	// Store.
	ErrUnknownQuery = errors.New("query: unknown query")

	// ErrBadTopN is returned when Execute is called with n <= 0.
	ErrBadTopN = errors.New("query: n must be positive")
)

// Store persists query definitions: which query graph is matched against
// which target graph, and the candidate match set between them.
type Store interface {
	// CreateQuery records a new query and returns its id.
	CreateQuery(queryGraphID, targetGraphID int, matches []core.Match) (queryID int, err error)

	// DeleteQuery removes a query and its matches. ErrUnknownQuery if it
	// does not exist.
	DeleteQuery(queryID int) error

	// QueryExists reports whether queryID is known to the Store.
	QueryExists(queryID int) (bool, error)

	// QueryGraphs returns the query and target graph ids for queryID.
	QueryGraphs(queryID int) (queryGraphID, targetGraphID int, err error)

	// Matches returns the candidate match set for queryID.
	Matches(queryID int) ([]core.Match, error)
}
