package storage

import (
	"bytes"
	"sync"

	"github.com/coschain/vmhooks/common"
	"github.com/petar/GoLLRB/llrb"
)

type rbdbItem struct {
	key, value []byte
}

var (
	sMinItem, sMaxItem = llrb.Inf(-1), llrb.Inf(1)
)

func (item *rbdbItem) Less(than llrb.Item) bool {
	if than == sMinItem {
		return false
	} else if than == sMaxItem {
		return true
	} else {
		return bytes.Compare(item.key, than.(*rbdbItem).key) < 0
	}
}

// RedblackDatabase keeps its pairs sorted in a left-leaning red-black tree.
// A session holds its pending puts in one, so a range of them comes out in
// key order without sorting.
type RedblackDatabase struct {
	lock sync.RWMutex
	rb   *llrb.LLRB
}

func NewRedblackDatabase() *RedblackDatabase {
	return &RedblackDatabase{rb: llrb.New()}
}

func (db *RedblackDatabase) Close() {

}

func (db *RedblackDatabase) Len() int {
	db.lock.RLock()
	defer db.lock.RUnlock()
	return db.rb.Len()
}

func (db *RedblackDatabase) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	return db.rb.Has(&rbdbItem{key: key}), nil
}

func (db *RedblackDatabase) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if item := db.rb.Get(&rbdbItem{key: key}); item != nil {
		return common.CopyBytes(item.(*rbdbItem).value), nil
	}
	return nil, ErrNotFound
}

func (db *RedblackDatabase) Put(key []byte, value []byte) error {
	return db.apply([]writeOp{{key: key, value: value}})
}

func (db *RedblackDatabase) Delete(key []byte) error {
	return db.apply([]writeOp{{key: key, del: true}})
}

func (db *RedblackDatabase) apply(ops []writeOp) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	for _, op := range ops {
		if op.del {
			db.rb.Delete(&rbdbItem{key: op.key})
		} else {
			db.rb.ReplaceOrInsert(&rbdbItem{key: common.CopyBytes(op.key), value: common.CopyBytes(op.value)})
		}
	}
	return nil
}

func (db *RedblackDatabase) Iterate(start, limit []byte, fn func(key, value []byte) bool) error {
	startItem, limitItem := llrb.Item(sMinItem), llrb.Item(sMaxItem)
	if start != nil {
		startItem = &rbdbItem{key: start}
	}
	if limit != nil {
		limitItem = &rbdbItem{key: limit}
	}
	var items []*rbdbItem
	db.lock.RLock()
	db.rb.AscendRange(startItem, limitItem, func(item llrb.Item) bool {
		items = append(items, item.(*rbdbItem))
		return true
	})
	db.lock.RUnlock()

	// items are never mutated in place, only replaced
	for _, kv := range items {
		if !fn(common.CopyBytes(kv.key), common.CopyBytes(kv.value)) {
			break
		}
	}
	return nil
}

func (db *RedblackDatabase) NewBatch() Batch {
	return &opBatch{apply: db.apply}
}
