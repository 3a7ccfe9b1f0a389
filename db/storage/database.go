// Package storage is the key-value layer under the world state. Plain stores
// (memory, leveldb) sit at the bottom, sessions stack revertible overlays on
// top of them and namespaces split one store into record tables.
package storage

import "errors"

// ErrNotFound is returned by Get for keys that don't exist.
var ErrNotFound = errors.New("not found")

// Reader queries single keys and ordered key ranges.
type Reader interface {
	Has(key []byte) (bool, error)

	// Get returns ErrNotFound if the key doesn't exist
	Get(key []byte) ([]byte, error)

	// Iterate calls fn on every pair in [start, limit) in ascending key order
	// until fn returns false. A nil start or limit leaves that side open.
	// fn receives copies and may write to the database.
	Iterate(start, limit []byte, fn func(key, value []byte) bool) error
}

type Writer interface {
	Put(key []byte, value []byte) error

	// deleting a missing key is not an error
	Delete(key []byte) error
}

// Batch packs writes and applies them at once on Write.
type Batch interface {
	Writer
	Write() error
}

type Database interface {
	Reader
	Writer
	NewBatch() Batch
	Close()
}
