package storage

import (
	"sync"
)

// session is the write overlay of one open transaction. Puts and deletes stay
// here until commit folds them into base in one batch.
type session struct {
	sync.RWMutex
	base Database
	puts *RedblackDatabase
	dels map[string]bool
}

func newSession(base Database) *session {
	return &session{
		base: base,
		puts: NewRedblackDatabase(),
		dels: make(map[string]bool),
	}
}

func (s *session) Close() {

}

func (s *session) commit() error {
	s.RLock()
	defer s.RUnlock()

	b := s.base.NewBatch()
	err := s.puts.Iterate(nil, nil, func(key, value []byte) bool {
		_ = b.Put(key, value)
		return true
	})
	if err != nil {
		return err
	}
	for k := range s.dels {
		_ = b.Delete([]byte(k))
	}
	return b.Write()
}

func (s *session) Has(key []byte) (bool, error) {
	s.RLock()
	defer s.RUnlock()

	if found, _ := s.puts.Has(key); found {
		return true, nil
	}
	if s.dels[string(key)] {
		return false, nil
	}
	return s.base.Has(key)
}

func (s *session) Get(key []byte) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	if data, err := s.puts.Get(key); err == nil {
		return data, nil
	}
	if s.dels[string(key)] {
		return nil, ErrNotFound
	}
	return s.base.Get(key)
}

func (s *session) Put(key []byte, value []byte) error {
	return s.apply([]writeOp{{key: key, value: value}})
}

func (s *session) Delete(key []byte) error {
	return s.apply([]writeOp{{key: key, del: true}})
}

func (s *session) apply(ops []writeOp) error {
	s.Lock()
	defer s.Unlock()

	for _, op := range ops {
		if op.del {
			_ = s.puts.Delete(op.key)
			s.dels[string(op.key)] = true
		} else {
			_ = s.puts.Put(op.key, op.value)
			delete(s.dels, string(op.key))
		}
	}
	return nil
}

// Iterate merges the base range with the session's own puts and deletes.
func (s *session) Iterate(start, limit []byte, fn func(key, value []byte) bool) error {
	merged := make(map[string][]byte)
	s.RLock()
	err := s.base.Iterate(start, limit, func(key, value []byte) bool {
		if !s.dels[string(key)] {
			merged[string(key)] = value
		}
		return true
	})
	if err == nil {
		err = s.puts.Iterate(start, limit, func(key, value []byte) bool {
			merged[string(key)] = value
			return true
		})
	}
	s.RUnlock()
	if err != nil {
		return err
	}
	visitSorted(merged, fn)
	return nil
}

func (s *session) NewBatch() Batch {
	return &opBatch{apply: s.apply}
}
