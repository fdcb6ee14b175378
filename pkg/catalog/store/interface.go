package store

import "github.com/garunski/comic-catalog/pkg/catalog/comic"

// ComicStore defines the catalog operations used by the HTTP layer and CLI.
type ComicStore interface {
	// Load reads the persisted collection, replacing the in-memory one
	Load() error

	// List returns the collection in insertion order
	List() []comic.Record

	// Get retrieves a record by id, returning whether it exists
	Get(id string) (comic.Record, bool)

	// Len returns the number of records
	Len() int

	// Add appends a record and persists the whole collection
	Add(record comic.Record) error

	// Delete removes the record with the given id and persists the collection
	Delete(id string) (comic.Record, error)
}

var _ ComicStore = (*CatalogStore)(nil)
