// Package store holds the collection-scoped persistence contracts. Every
// handler's correctness depends on these narrow read/write surfaces; no
// store exposes an update or delete path.
package store

import "errors"

// ErrNotFound is returned by every lookup that matches no document,
// including lookups with a malformed identifier.
var ErrNotFound = errors.New("store: not found")

// listLimit bounds every listing query.
const listLimit = 100
