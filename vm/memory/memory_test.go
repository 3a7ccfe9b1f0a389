package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coschain/vmhooks/vm/vmerr"
)

func TestSliceMemory_bounds(t *testing.T) {
	myassert := assert.New(t)
	m := NewSliceMemory(1)

	myassert.NoError(Store(m, 10, []byte{1, 2, 3}))
	data, err := Load(m, 10, 3)
	myassert.NoError(err)
	myassert.Equal([]byte{1, 2, 3}, data)

	// the last byte is addressable, one past it is not
	myassert.NoError(Store(m, PageSize-1, []byte{9}))
	err = Store(m, PageSize-1, []byte{9, 9})
	myassert.Error(err)
	myassert.True(vmerr.From(err).IsFatal())

	_, err = Load(m, -1, 1)
	myassert.Error(err)
	_, err = Load(m, 0, -1)
	myassert.Error(err)

	// zero-length access at the end is fine
	_, err = Load(m, PageSize, 0)
	myassert.NoError(err)
}

func TestSliceMemory_grow(t *testing.T) {
	myassert := assert.New(t)
	m := NewSliceMemory(1)
	myassert.Equal(1, m.Grow(1))
	myassert.Equal(2*PageSize, m.Size())
	myassert.NoError(Store(m, PageSize+5, []byte{7}))
}

func TestLoadRejectsOversizedRange(t *testing.T) {
	myassert := assert.New(t)
	m := NewSliceMemory(1)

	_, err := Load(m, 4, 1<<31-1)
	myassert.Equal(vmerr.ExecutionFailed, vmerr.CodeOf(err))
	_, err = Load(m, 1<<31-1, 1)
	myassert.Equal(vmerr.ExecutionFailed, vmerr.CodeOf(err))
}
