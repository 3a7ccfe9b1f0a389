package common

import (
	"encoding/binary"
)

// CopyBytes returns an exact copy of the given bytes, nil stays nil.
func CopyBytes(b []byte) (copied []byte) {
	if b == nil {
		return nil
	}
	copied = make([]byte, len(b))
	copy(copied, b)
	return
}

// Int2Bytes encodes n as 4 big-endian bytes.
func Int2Bytes(n uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, n)
	return b
}

// Uint64ToBytes encodes n as 8 big-endian bytes.
func Uint64ToBytes(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
