package managed

import (
	"encoding/hex"
	"math/big"

	"github.com/coschain/vmhooks/common"
)

// Buffer returns the bytes under h. The slice is shared with the heap, callers
// must not modify it.
func (heap *Heap) Buffer(h int32) ([]byte, error) {
	v, ok := heap.buffers[h]
	if !ok {
		return nil, invalidHandle(tableBuffer, h)
	}
	return v, nil
}

// SetBuffer replaces the content under h with a copy of b.
func (heap *Heap) SetBuffer(h int32, b []byte) {
	c := make([]byte, len(b))
	copy(c, b)
	heap.buffers[h] = c
	heap.written(tableBuffer, h)
}

// NewBuffer stores a copy of b under a fresh handle.
func (heap *Heap) NewBuffer(b []byte) int32 {
	h := heap.allocate(tableBuffer)
	c := make([]byte, len(b))
	copy(c, b)
	heap.buffers[h] = c
	return h
}

func (heap *Heap) HasBuffer(h int32) bool {
	_, ok := heap.buffers[h]
	return ok
}

func (heap *Heap) BufferLen(h int32) (int32, error) {
	b, err := heap.Buffer(h)
	if err != nil {
		return 0, err
	}
	return int32(len(b)), nil
}

// BufferSlice returns a copy of [start, start+length) and false when the range
// doesn't fit the buffer.
func (heap *Heap) BufferSlice(h int32, start, length int32) ([]byte, bool, error) {
	b, err := heap.Buffer(h)
	if err != nil {
		return nil, false, err
	}
	if start < 0 || length < 0 || int64(start)+int64(length) > int64(len(b)) {
		return nil, false, nil
	}
	return common.CopyBytes(b[start : start+length]), true, nil
}

// BufferCopySlice writes the slice of src into dst. It reports false without
// touching dst when the range is out of bounds.
func (heap *Heap) BufferCopySlice(src, start, length, dst int32) (bool, error) {
	slice, ok, err := heap.BufferSlice(src, start, length)
	if err != nil || !ok {
		return false, err
	}
	heap.SetBuffer(dst, slice)
	return true, nil
}

// BufferSetSlice overwrites bytes starting at start. The buffer never grows.
func (heap *Heap) BufferSetSlice(h int32, start int32, data []byte) (bool, error) {
	b, err := heap.Buffer(h)
	if err != nil {
		return false, err
	}
	if start < 0 || int64(start)+int64(len(data)) > int64(len(b)) {
		return false, nil
	}
	updated := common.CopyBytes(b)
	copy(updated[start:], data)
	heap.buffers[h] = updated
	return true, nil
}

func (heap *Heap) BufferAppendBytes(h int32, data []byte) error {
	b, err := heap.Buffer(h)
	if err != nil {
		return err
	}
	updated := make([]byte, 0, len(b)+len(data))
	updated = append(updated, b...)
	heap.buffers[h] = append(updated, data...)
	return nil
}

// BufferAppend appends the content of other to h. h and other may be equal.
func (heap *Heap) BufferAppend(h, other int32) error {
	data, err := heap.Buffer(other)
	if err != nil {
		return err
	}
	return heap.BufferAppendBytes(h, data)
}

func (heap *Heap) BufferEq(a, b int32) (bool, error) {
	x, err := heap.Buffer(a)
	if err != nil {
		return false, err
	}
	y, err := heap.Buffer(b)
	if err != nil {
		return false, err
	}
	return string(x) == string(y), nil
}

// BufferToHex writes the lowercase hex form of src into dst.
func (heap *Heap) BufferToHex(src, dst int32) error {
	b, err := heap.Buffer(src)
	if err != nil {
		return err
	}
	heap.SetBuffer(dst, []byte(hex.EncodeToString(b)))
	return nil
}

func (heap *Heap) BufferToBigIntUnsigned(src, dstBigInt int32) error {
	b, err := heap.Buffer(src)
	if err != nil {
		return err
	}
	heap.SetBigInt(dstBigInt, new(big.Int).SetBytes(b))
	return nil
}

func (heap *Heap) BufferToBigIntSigned(src, dstBigInt int32) error {
	b, err := heap.Buffer(src)
	if err != nil {
		return err
	}
	heap.SetBigInt(dstBigInt, SignedFromBytes(b))
	return nil
}

func (heap *Heap) BufferFromBigIntUnsigned(dst, srcBigInt int32) error {
	x, err := heap.BigInt(srcBigInt)
	if err != nil {
		return err
	}
	heap.SetBuffer(dst, x.Bytes())
	return nil
}

func (heap *Heap) BufferFromBigIntSigned(dst, srcBigInt int32) error {
	x, err := heap.BigInt(srcBigInt)
	if err != nil {
		return err
	}
	heap.SetBuffer(dst, SignedToBytes(x))
	return nil
}
