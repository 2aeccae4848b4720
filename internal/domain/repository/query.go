// Package repository defines the interfaces for the persistence layer.
package repository

import "storefront/internal/errors"

// ErrNotFound is returned when a document with the requested ID is absent.
var ErrNotFound = errors.New("document not found")

// Filter is a single equality predicate. The document store supports no
// range or OR queries, so equality is the only filter kind.
type Filter struct {
	Field string
	Value any
}

// ListQuery narrows a collection listing: equality filters, an optional
// single sort field with direction, and an optional result limit. There is
// no pagination cursor, only an offset-less limit.
type ListQuery struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// WithFilter appends an equality filter and returns the query for chaining.
func (q ListQuery) WithFilter(field string, value any) ListQuery {
	q.Filters = append(q.Filters, Filter{Field: field, Value: value})

	return q
}
