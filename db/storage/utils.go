package storage

import (
	"sort"

	"github.com/coschain/vmhooks/common"
)

type writeOp struct {
	key, value []byte
	del        bool
}

// opBatch records writes and hands them to apply in order. It serves every
// in-memory store.
type opBatch struct {
	ops   []writeOp
	apply func(ops []writeOp) error
}

func (b *opBatch) Put(key []byte, value []byte) error {
	b.ops = append(b.ops, writeOp{key: common.CopyBytes(key), value: common.CopyBytes(value)})
	return nil
}

func (b *opBatch) Delete(key []byte) error {
	b.ops = append(b.ops, writeOp{key: common.CopyBytes(key), del: true})
	return nil
}

func (b *opBatch) Write() error {
	err := b.apply(b.ops)
	b.ops = b.ops[:0]
	return err
}

func inRange(key string, start, limit []byte) bool {
	if start != nil && key < string(start) {
		return false
	}
	if limit != nil && key >= string(limit) {
		return false
	}
	return true
}

// visitSorted calls fn on the pairs of kv in key order.
func visitSorted(kv map[string][]byte, fn func(key, value []byte) bool) {
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !fn([]byte(k), kv[k]) {
			return
		}
	}
}

// PrefixLimit returns the smallest key greater than every key starting with prefix.
// nil means there's no such key, i.e. the prefix is all 0xff.
func PrefixLimit(prefix []byte) []byte {
	limit := common.CopyBytes(prefix)
	for i := len(limit) - 1; i >= 0; i-- {
		if limit[i] < 0xff {
			limit[i]++
			return limit[:i+1]
		}
	}
	return nil
}

// DeletePrefix removes every key that starts with prefix and returns the number of removed keys.
func DeletePrefix(db Database, prefix []byte) (int, error) {
	b := db.NewBatch()
	n := 0
	err := db.Iterate(prefix, PrefixLimit(prefix), func(key, _ []byte) bool {
		_ = b.Delete(key)
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, b.Write()
}
