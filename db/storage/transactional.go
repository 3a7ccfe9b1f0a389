package storage

import (
	"sync"

	"github.com/pkg/errors"
)

// TrxDatabase is a Database with stacked transactions. Every call frame of a
// contract call opens one, so a failing frame discards exactly its own writes.
type TrxDatabase interface {
	Database
	BeginTransaction()
	// EndTransaction closes the innermost transaction. A committed one merges
	// into the transaction below it, the outermost into the base database.
	EndTransaction(commit bool) error
	TransactionHeight() uint
	// CleanRead is the base database, ignoring every open transaction.
	CleanRead() Reader
}

type trxDatabase struct {
	lock     sync.RWMutex
	base     Database
	sessions []*session
}

func NewTrxDatabase(base Database) TrxDatabase {
	return &trxDatabase{base: base}
}

// NewTrxMemoryDatabase creates a transactional database in memory.
func NewTrxMemoryDatabase() TrxDatabase {
	return NewTrxDatabase(NewMemoryDatabase())
}

// NewTrxLevelDatabase opens or creates a transactional database on disk.
func NewTrxLevelDatabase(dir string) (TrxDatabase, error) {
	db, err := NewLevelDatabase(dir)
	if err != nil {
		return nil, err
	}
	return NewTrxDatabase(db), nil
}

// top is the innermost session, or base when none is open.
func (db *trxDatabase) top() Database {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return db.innermost()
}

func (db *trxDatabase) innermost() Database {
	if n := len(db.sessions); n > 0 {
		return db.sessions[n-1]
	}
	return db.base
}

func (db *trxDatabase) BeginTransaction() {
	db.lock.Lock()
	defer db.lock.Unlock()
	db.sessions = append(db.sessions, newSession(db.innermost()))
}

func (db *trxDatabase) EndTransaction(commit bool) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	n := len(db.sessions)
	if n == 0 {
		return errors.New("unexpected EndTransaction")
	}
	s := db.sessions[n-1]
	db.sessions = db.sessions[:n-1]
	if commit {
		return errors.Wrap(s.commit(), "commit transaction")
	}
	return nil
}

func (db *trxDatabase) TransactionHeight() uint {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return uint(len(db.sessions))
}

func (db *trxDatabase) CleanRead() Reader {
	return db.base
}

func (db *trxDatabase) Has(key []byte) (bool, error) {
	return db.top().Has(key)
}

func (db *trxDatabase) Get(key []byte) ([]byte, error) {
	return db.top().Get(key)
}

func (db *trxDatabase) Put(key []byte, value []byte) error {
	return db.top().Put(key, value)
}

func (db *trxDatabase) Delete(key []byte) error {
	return db.top().Delete(key)
}

func (db *trxDatabase) Iterate(start, limit []byte, fn func(key, value []byte) bool) error {
	return db.top().Iterate(start, limit, fn)
}

func (db *trxDatabase) NewBatch() Batch {
	return db.top().NewBatch()
}

func (db *trxDatabase) Close() {
	db.base.Close()
}
