package managed

import (
	"encoding/binary"
	"math/big"

	"github.com/coschain/vmhooks/vm/vmerr"
)

// SignedFromBytes decodes big-endian two's complement. Empty input is zero.
func SignedFromBytes(b []byte) *big.Int {
	x := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(bigOne, uint(len(b))*8))
	}
	return x
}

// SignedToBytes encodes x as minimal big-endian two's complement. Zero is empty.
func SignedToBytes(x *big.Int) []byte {
	switch x.Sign() {
	case 0:
		return []byte{}
	case 1:
		b := x.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	// -x-1 has the complemented bits of x
	m := new(big.Int).Neg(x)
	m.Sub(m, bigOne)
	b := m.Bytes()
	for i := range b {
		b[i] = ^b[i]
	}
	if len(b) == 0 || b[0]&0x80 == 0 {
		b = append([]byte{0xff}, b...)
	}
	return b
}

// BufferList reads a managed vector of buffers: a buffer of 4-byte big-endian
// handles, each naming an item buffer.
func (heap *Heap) BufferList(h int32) ([][]byte, error) {
	raw, err := heap.Buffer(h)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, vmerr.User("malformed managed vector of buffers")
	}
	items := make([][]byte, 0, len(raw)/4)
	for i := 0; i < len(raw); i += 4 {
		item, err := heap.Buffer(int32(binary.BigEndian.Uint32(raw[i : i+4])))
		if err != nil {
			return nil, err
		}
		c := make([]byte, len(item))
		copy(c, item)
		items = append(items, c)
	}
	return items, nil
}

// SetBufferList stores every item in a fresh buffer and writes their handles to h.
func (heap *Heap) SetBufferList(h int32, items [][]byte) {
	raw := make([]byte, 0, len(items)*4)
	for _, item := range items {
		raw = binary.BigEndian.AppendUint32(raw, uint32(heap.NewBuffer(item)))
	}
	heap.SetBuffer(h, raw)
}
