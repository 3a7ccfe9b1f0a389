package storage

//
// A Namespace is one record table of the world state. It prefixes its name to
// keys, e.g. the "storage" table reads key k from "storage\x00k".
//

import "github.com/coschain/vmhooks/common"

type Namespace struct {
	db     Database
	name   string
	prefix []byte
	bound  []byte
}

func NewNamespace(db Database, name string) *Namespace {
	return &Namespace{
		db:     db,
		name:   name,
		prefix: append([]byte(name), 0),
		bound:  append([]byte(name), 1),
	}
}

func (ns *Namespace) Close() {

}

func (ns *Namespace) Name() string {
	return ns.name
}

// Key returns the key ns uses in the underlying database.
func (ns *Namespace) Key(key []byte) []byte {
	ck := common.CopyBytes(ns.prefix)
	return append(ck, key...)
}

// GetFrom reads key of this table from another view of the same database,
// e.g. its committed state.
func (ns *Namespace) GetFrom(r Reader, key []byte) ([]byte, error) {
	return r.Get(ns.Key(key))
}

func (ns *Namespace) Has(key []byte) (bool, error) {
	return ns.db.Has(ns.Key(key))
}

func (ns *Namespace) Get(key []byte) ([]byte, error) {
	return ns.db.Get(ns.Key(key))
}

func (ns *Namespace) Put(key []byte, value []byte) error {
	return ns.db.Put(ns.Key(key), value)
}

func (ns *Namespace) Delete(key []byte) error {
	return ns.db.Delete(ns.Key(key))
}

func (ns *Namespace) Iterate(start, limit []byte, fn func(key, value []byte) bool) error {
	bound := ns.bound
	if limit != nil {
		bound = ns.Key(limit)
	}
	return ns.db.Iterate(ns.Key(start), bound, func(key, value []byte) bool {
		return fn(key[len(ns.prefix):], value)
	})
}

func (ns *Namespace) NewBatch() Batch {
	return &nsBatch{ns: ns, b: ns.db.NewBatch()}
}

type nsBatch struct {
	ns *Namespace
	b  Batch
}

func (b *nsBatch) Write() error {
	return b.b.Write()
}

func (b *nsBatch) Put(key []byte, value []byte) error {
	return b.b.Put(b.ns.Key(key), value)
}

func (b *nsBatch) Delete(key []byte) error {
	return b.b.Delete(b.ns.Key(key))
}
