package storage

import (
	"sync"

	"github.com/coschain/vmhooks/common"
)

// MemoryDatabase is a map backed store. Tests run the world state on it.
type MemoryDatabase struct {
	lock sync.RWMutex
	kv   map[string][]byte
}

func NewMemoryDatabase() *MemoryDatabase {
	return &MemoryDatabase{kv: make(map[string][]byte)}
}

func (db *MemoryDatabase) Close() {

}

func (db *MemoryDatabase) Len() int {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return len(db.kv)
}

func (db *MemoryDatabase) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	_, ok := db.kv[string(key)]
	return ok, nil
}

func (db *MemoryDatabase) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if value, ok := db.kv[string(key)]; ok {
		return common.CopyBytes(value), nil
	}
	return nil, ErrNotFound
}

func (db *MemoryDatabase) Put(key []byte, value []byte) error {
	return db.apply([]writeOp{{key: key, value: value}})
}

func (db *MemoryDatabase) Delete(key []byte) error {
	return db.apply([]writeOp{{key: key, del: true}})
}

func (db *MemoryDatabase) apply(ops []writeOp) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	for _, op := range ops {
		if op.del {
			delete(db.kv, string(op.key))
		} else {
			db.kv[string(op.key)] = common.CopyBytes(op.value)
		}
	}
	return nil
}

// Iterate works on a snapshot of the range taken before the first callback.
func (db *MemoryDatabase) Iterate(start, limit []byte, fn func(key, value []byte) bool) error {
	db.lock.RLock()
	snapshot := make(map[string][]byte)
	for k, v := range db.kv {
		if inRange(k, start, limit) {
			snapshot[k] = common.CopyBytes(v)
		}
	}
	db.lock.RUnlock()

	visitSorted(snapshot, fn)
	return nil
}

func (db *MemoryDatabase) NewBatch() Batch {
	return &opBatch{apply: db.apply}
}
