// Package memory is the only place where guest pointers are dereferenced.
package memory

import (
	"github.com/coschain/vmhooks/vm/vmerr"
)

// Memory is a guest linear memory. Slices passed to callbacks are valid
// only for the duration of the callback.
type Memory interface {
	// current size in bytes
	Size() int
	// WithBytes exposes [ptr, ptr+length) for reading.
	WithBytes(ptr, length int32, fn func(data []byte) error) error
	// WithBytesMut exposes [ptr, ptr+length) for writing.
	WithBytesMut(ptr, length int32, fn func(data []byte) error) error
}

func checkBounds(ptr, length int32, size int) error {
	if ptr < 0 || length < 0 || int64(ptr)+int64(length) > int64(size) {
		return vmerr.MemoryOutOfBounds(ptr, length, size)
	}
	return nil
}

// Load copies [ptr, ptr+length) out of guest memory.
func Load(m Memory, ptr, length int32) (data []byte, err error) {
	err = m.WithBytes(ptr, length, func(b []byte) error {
		data = make([]byte, len(b))
		copy(data, b)
		return nil
	})
	return
}

// Store copies data into guest memory at ptr.
func Store(m Memory, ptr int32, data []byte) error {
	return m.WithBytesMut(ptr, int32(len(data)), func(b []byte) error {
		copy(b, data)
		return nil
	})
}

