package catalog

import "errors"

// ErrCatalog indicates a catalog document that is malformed or
// inconsistent: a missing name or DSL, or a name used twice.
var ErrCatalog = errors.New("catalog: invalid catalog")

// ErrNotFound indicates a lookup of a name the catalog does not hold.
var ErrNotFound = errors.New("catalog: fixture not found")
