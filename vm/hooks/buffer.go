package hooks

import (
	"github.com/coschain/vmhooks/vm/vmerr"
)

func (vh *VMHooks) MBufferNew() (int32, error) {
	if err := vh.useGas(vh.gas.MBufferNew); err != nil {
		return 0, err
	}
	return vh.heap.NewBuffer(nil), nil
}

func (vh *VMHooks) MBufferNewFromBytes(ptr int32, length int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferNew); err != nil {
		return 0, err
	}
	data, err := vh.load(ptr, length)
	if err != nil {
		return 0, err
	}
	return vh.heap.NewBuffer(data), nil
}

func (vh *VMHooks) MBufferGetLength(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferGet); err != nil {
		return 0, err
	}
	return vh.heap.BufferLen(h)
}

// MBufferGetBytes copies the whole buffer to resultPtr. The guest sizes the
// destination from mBufferGetLength.
func (vh *VMHooks) MBufferGetBytes(h int32, resultPtr int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferGet); err != nil {
		return 0, err
	}
	b, err := vh.buffer(h)
	if err != nil {
		return 0, err
	}
	return 0, vh.store(resultPtr, b)
}

// MBufferGetByteSlice returns 1 without writing anything when the range
// doesn't fit the buffer.
func (vh *VMHooks) MBufferGetByteSlice(src int32, start int32, length int32, resultPtr int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferGet); err != nil {
		return 0, err
	}
	slice, ok, err := vh.heap.BufferSlice(src, start, length)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return 0, vh.store(resultPtr, slice)
}

func (vh *VMHooks) MBufferCopyByteSlice(src int32, start int32, length int32, dst int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferSet); err != nil {
		return 0, err
	}
	ok, err := vh.heap.BufferCopySlice(src, start, length, dst)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return 0, vh.useGasForBytes(int(length))
}

func (vh *VMHooks) MBufferEq(a, b int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferCompare); err != nil {
		return 0, err
	}
	eq, err := vh.heap.BufferEq(a, b)
	return boolToInt32(eq), err
}

func (vh *VMHooks) MBufferSetBytes(h int32, ptr int32, length int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferSet); err != nil {
		return 0, err
	}
	data, err := vh.load(ptr, length)
	if err != nil {
		return 0, err
	}
	vh.heap.SetBuffer(h, data)
	return 0, nil
}

// MBufferSetByteSlice overwrites in place and returns 1 when the data would
// run past the end of the buffer.
func (vh *VMHooks) MBufferSetByteSlice(h int32, start int32, length int32, ptr int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferSet); err != nil {
		return 0, err
	}
	data, err := vh.load(ptr, length)
	if err != nil {
		return 0, err
	}
	ok, err := vh.heap.BufferSetSlice(h, start, data)
	if err != nil {
		return 0, err
	}
	return boolToInt32(!ok), nil
}

func (vh *VMHooks) MBufferAppend(acc int32, data int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferAppend); err != nil {
		return 0, err
	}
	b, err := vh.buffer(data)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(b)); err != nil {
		return 0, err
	}
	return 0, vh.heap.BufferAppend(acc, data)
}

func (vh *VMHooks) MBufferAppendBytes(acc int32, ptr int32, length int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferAppend); err != nil {
		return 0, err
	}
	data, err := vh.load(ptr, length)
	if err != nil {
		return 0, err
	}
	return 0, vh.heap.BufferAppendBytes(acc, data)
}

func (vh *VMHooks) MBufferToBigIntUnsigned(h int32, bigInt int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferConversion); err != nil {
		return 0, err
	}
	return 0, vh.heap.BufferToBigIntUnsigned(h, bigInt)
}

func (vh *VMHooks) MBufferToBigIntSigned(h int32, bigInt int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferConversion); err != nil {
		return 0, err
	}
	return 0, vh.heap.BufferToBigIntSigned(h, bigInt)
}

func (vh *VMHooks) MBufferFromBigIntUnsigned(h int32, bigInt int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferConversion); err != nil {
		return 0, err
	}
	return 0, vh.heap.BufferFromBigIntUnsigned(h, bigInt)
}

func (vh *VMHooks) MBufferFromBigIntSigned(h int32, bigInt int32) (int32, error) {
	if err := vh.useGas(vh.gas.MBufferConversion); err != nil {
		return 0, err
	}
	return 0, vh.heap.BufferFromBigIntSigned(h, bigInt)
}

func (vh *VMHooks) MBufferGetArgument(id int32, dst int32) (int32, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	arg, err := vh.ctx.Argument(id)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(arg)); err != nil {
		return 0, err
	}
	vh.heap.SetBuffer(dst, arg)
	return 0, nil
}

func (vh *VMHooks) MBufferFinish(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return 0, err
	}
	b, err := vh.buffer(h)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(b)); err != nil {
		return 0, err
	}
	vh.ctx.Finish(b)
	return 0, nil
}

// MBufferSetRandom fills dst with length bytes of the call's random stream.
func (vh *VMHooks) MBufferSetRandom(dst int32, length int32) (int32, error) {
	if length < 0 {
		return 0, vmerr.User("negative random length")
	}
	if err := vh.useGas(vh.gas.MBufferRandom); err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(int(length)); err != nil {
		return 0, err
	}
	vh.heap.SetBuffer(dst, vh.ctx.Random.Next(int(length)))
	return 0, nil
}

func (vh *VMHooks) ManagedBufferToHex(src int32, dst int32) error {
	if err := vh.useGas(vh.gas.MBufferConversion); err != nil {
		return err
	}
	return vh.heap.BufferToHex(src, dst)
}

func (vh *VMHooks) ManagedMapNew() (int32, error) {
	if err := vh.useGas(vh.gas.MapNew); err != nil {
		return 0, err
	}
	return vh.heap.NewMap(), nil
}

func (vh *VMHooks) ManagedMapPut(m, key, value int32) (int32, error) {
	if err := vh.useGas(vh.gas.MapPut); err != nil {
		return 0, err
	}
	return 0, vh.heap.MapPut(m, key, value)
}

func (vh *VMHooks) ManagedMapGet(m, key, out int32) (int32, error) {
	if err := vh.useGas(vh.gas.MapGet); err != nil {
		return 0, err
	}
	return 0, vh.heap.MapGet(m, key, out)
}

func (vh *VMHooks) ManagedMapRemove(m, key, out int32) (int32, error) {
	if err := vh.useGas(vh.gas.MapRemove); err != nil {
		return 0, err
	}
	return 0, vh.heap.MapRemove(m, key, out)
}

func (vh *VMHooks) ManagedMapContains(m, key int32) (int32, error) {
	if err := vh.useGas(vh.gas.MapContains); err != nil {
		return 0, err
	}
	ok, err := vh.heap.MapContains(m, key)
	return boolToInt32(ok), err
}
