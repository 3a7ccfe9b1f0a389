// Package managed holds the handle tables a contract manipulates through hooks:
// big integers, big floats, buffers and ordered maps.
package managed

import (
	"math"
	"math/big"

	"github.com/coschain/vmhooks/vm/vmerr"
)

const (
	tableBigInt = iota
	tableBigFloat
	tableBuffer
	tableMap
	tableCount
)

var tableNames = [tableCount]string{"bigInt", "bigFloat", "managed buffer", "managed map"}

// Heap owns every managed value of one contract call. Handles live as long as the heap.
type Heap struct {
	bigInts   map[int32]*big.Int
	bigFloats map[int32]*Decimal
	buffers   map[int32][]byte
	maps      map[int32]*OrderedMap

	// next host-allocated handle per table
	next [tableCount]int64

	floatCtx         *floatContext
	maxConversionExp int64
}

// NewHeap creates an empty heap. precision is the number of significant decimal
// digits of big floats, maxConversionExp bounds float to int conversions.
func NewHeap(precision int, maxConversionExp int64) *Heap {
	return &Heap{
		bigInts:          make(map[int32]*big.Int),
		bigFloats:        make(map[int32]*Decimal),
		buffers:          make(map[int32][]byte),
		maps:             make(map[int32]*OrderedMap),
		floatCtx:         &floatContext{precision: precision, maxExp: MaxFloatExponent},
		maxConversionExp: maxConversionExp,
	}
}

// written records a guest-chosen handle so later allocations skip it.
func (heap *Heap) written(table int, h int32) {
	if int64(h) >= heap.next[table] {
		heap.next[table] = int64(h) + 1
	}
}

// allocate hands out increasing handles. Once the guest has written
// MaxInt32 it falls back to the lowest free non-negative handle.
func (heap *Heap) allocate(table int) int32 {
	if heap.next[table] <= math.MaxInt32 {
		h := int32(heap.next[table])
		heap.next[table]++
		return h
	}
	h := int32(0)
	for heap.used(table, h) {
		h++
	}
	return h
}

func (heap *Heap) used(table int, h int32) bool {
	var ok bool
	switch table {
	case tableBigInt:
		_, ok = heap.bigInts[h]
	case tableBigFloat:
		_, ok = heap.bigFloats[h]
	case tableBuffer:
		_, ok = heap.buffers[h]
	case tableMap:
		_, ok = heap.maps[h]
	}
	return ok
}

func invalidHandle(table int, h int32) error {
	return vmerr.InvalidHandle(tableNames[table], h)
}

// Clear drops every value, used when a call frame is torn down.
func (heap *Heap) Clear() {
	heap.bigInts = make(map[int32]*big.Int)
	heap.bigFloats = make(map[int32]*Decimal)
	heap.buffers = make(map[int32][]byte)
	heap.maps = make(map[int32]*OrderedMap)
	heap.next = [tableCount]int64{}
}
