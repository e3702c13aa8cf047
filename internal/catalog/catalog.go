// Package catalog holds the data model of the demonstration API:
// items, users, the closed set of ML model names, and the static item
// list used to demonstrate slice-style pagination.
//
// Request types carry `validate` tags enforced through the validation
// package; response types are separate where the outgoing payload must
// be shaped differently from the input.
package catalog

import "github.com/go-playground/validator/v10"

// validate is the shared validator instance for all catalog types.
// validator.Validate caches struct metadata, so one instance is reused.
var validate = validator.New()

// ItemRecord is one entry of the static demonstration list.
type ItemRecord struct {
	ItemName string `json:"item_name"`
}

// fakeItemDB is the fixed ordered list standing in for a database.
// It is never written at runtime.
var fakeItemDB = []ItemRecord{
	{ItemName: "Foo"},
	{ItemName: "Bar"},
	{ItemName: "Baz"},
}

// DB is the read-only item store.
type DB struct {
	items []ItemRecord
}

// NewDB returns a store backed by the static demonstration list.
func NewDB() *DB {
	return &DB{items: fakeItemDB}
}

// Len reports the number of records.
func (d *DB) Len() int {
	return len(d.items)
}

// List returns the sub-slice items[skip : skip+limit], clamped to the
// list bounds. Out-of-range skips yield an empty (non-nil) slice so
// the response serializes as [] rather than null.
func (d *DB) List(skip, limit int) []ItemRecord {
	if skip > len(d.items) {
		skip = len(d.items)
	}
	end := skip + limit
	if end > len(d.items) {
		end = len(d.items)
	}

	out := make([]ItemRecord, end-skip)
	copy(out, d.items[skip:end])
	return out
}
