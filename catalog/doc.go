// Package catalog holds the pure operations over the ordered project collection: the public
// filter/sort pipeline, the tag facet, and the admin mutations (save, delete, move, reorder).
//
// Every function returns a new slice and leaves its input untouched, so callers can swap the
// result into shared state in one step.
package catalog
