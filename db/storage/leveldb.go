package storage

//
// LevelDatabase keeps the world state on disk between runs.
// Call Close() when the database is no longer needed.
//

import (
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/coschain/vmhooks/common"
)

type LevelDatabase struct {
	db *leveldb.DB
}

// NewLevelDatabase opens the database in dir, creating it if needed. A
// corrupted database is recovered.
func NewLevelDatabase(dir string) (*LevelDatabase, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{
		Filter: filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*lerrors.ErrCorrupted); corrupted {
		db, err = leveldb.RecoverFile(dir, nil)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb %s", dir)
	}
	return &LevelDatabase{db: db}, nil
}

func (db *LevelDatabase) Close() {
	_ = db.db.Close()
}

func (db *LevelDatabase) Has(key []byte) (bool, error) {
	return db.db.Has(key, nil)
}

func (db *LevelDatabase) Get(key []byte) ([]byte, error) {
	data, err := db.db.Get(key, nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	return data, err
}

func (db *LevelDatabase) Put(key []byte, value []byte) error {
	return db.db.Put(key, value, nil)
}

func (db *LevelDatabase) Delete(key []byte) error {
	return db.db.Delete(key, nil)
}

// Iterate reads from a leveldb snapshot so fn may write while it runs.
func (db *LevelDatabase) Iterate(start, limit []byte, fn func(key, value []byte) bool) error {
	snap, err := db.db.GetSnapshot()
	if err != nil {
		return errors.Wrap(err, "leveldb snapshot")
	}
	defer snap.Release()

	it := snap.NewIterator(&util.Range{Start: start, Limit: limit}, nil)
	defer it.Release()
	for it.Next() {
		if !fn(common.CopyBytes(it.Key()), common.CopyBytes(it.Value())) {
			break
		}
	}
	return it.Error()
}

func (db *LevelDatabase) NewBatch() Batch {
	return &levelBatch{db: db.db, b: new(leveldb.Batch)}
}

type levelBatch struct {
	db *leveldb.DB
	b  *leveldb.Batch
}

func (b *levelBatch) Write() error {
	err := b.db.Write(b.b, nil)
	b.b.Reset()
	return err
}

func (b *levelBatch) Put(key []byte, value []byte) error {
	b.b.Put(key, value)
	return nil
}

func (b *levelBatch) Delete(key []byte) error {
	b.b.Delete(key)
	return nil
}
