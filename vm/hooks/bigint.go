package hooks

import (
	"math/big"

	"github.com/coschain/vmhooks/vm/managed"
	"github.com/coschain/vmhooks/vm/vmerr"
)

func (vh *VMHooks) BigIntNew(smallValue int64) (int32, error) {
	if err := vh.useGas(vh.gas.BigIntNew); err != nil {
		return 0, err
	}
	return vh.heap.NewBigInt(big.NewInt(smallValue)), nil
}

func (vh *VMHooks) BigIntSetInt64(dst int32, value int64) error {
	if err := vh.useGas(vh.gas.BigIntConversion); err != nil {
		return err
	}
	vh.heap.BigIntSetInt64(dst, value)
	return nil
}

func (vh *VMHooks) BigIntIsInt64(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigIntConversion); err != nil {
		return 0, err
	}
	ok, err := vh.heap.BigIntIsInt64(h)
	return boolToInt32(ok), err
}

func (vh *VMHooks) BigIntGetInt64(h int32) (int64, error) {
	if err := vh.useGas(vh.gas.BigIntConversion); err != nil {
		return 0, err
	}
	return vh.heap.BigIntGetInt64(h)
}

func (vh *VMHooks) BigIntSetUnsignedBytes(dst int32, ptr int32, length int32) error {
	if err := vh.useGas(vh.gas.BigIntConversion); err != nil {
		return err
	}
	b, err := vh.load(ptr, length)
	if err != nil {
		return err
	}
	vh.heap.BigIntSetUnsignedBytes(dst, b)
	return nil
}

func (vh *VMHooks) BigIntSetSignedBytes(dst int32, ptr int32, length int32) error {
	if err := vh.useGas(vh.gas.BigIntConversion); err != nil {
		return err
	}
	b, err := vh.load(ptr, length)
	if err != nil {
		return err
	}
	vh.heap.BigIntSetSignedBytes(dst, b)
	return nil
}

func (vh *VMHooks) bigIntOp(cost uint64, op func(dst, a, b int32) error, dst, a, b int32) error {
	if err := vh.useGas(cost); err != nil {
		return err
	}
	return op(dst, a, b)
}

func (vh *VMHooks) BigIntAdd(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntArith, vh.heap.BigIntAdd, dst, a, b)
}

func (vh *VMHooks) BigIntSub(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntArith, vh.heap.BigIntSub, dst, a, b)
}

func (vh *VMHooks) BigIntMul(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntArith, vh.heap.BigIntMul, dst, a, b)
}

func (vh *VMHooks) BigIntTDiv(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntDiv, vh.heap.BigIntTDiv, dst, a, b)
}

func (vh *VMHooks) BigIntTMod(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntDiv, vh.heap.BigIntTMod, dst, a, b)
}

// BigIntEDiv is declared by the ABI, euclidean division is not served.
func (vh *VMHooks) BigIntEDiv(dst, a, b int32) error {
	return vmerr.Unavailable("bigIntEDiv")
}

func (vh *VMHooks) BigIntEMod(dst, a, b int32) error {
	return vmerr.Unavailable("bigIntEMod")
}

// BigIntPow also pays DataCopyPerByte for every byte of the result.
func (vh *VMHooks) BigIntPow(dst, a, b int32) error {
	if err := vh.useGas(vh.gas.BigIntPow); err != nil {
		return err
	}
	bits, err := vh.heap.BigIntPowBits(a, b)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(int((bits + 7) / 8)); err != nil {
		return err
	}
	return vh.heap.BigIntPow(dst, a, b)
}

func (vh *VMHooks) BigIntSqrt(dst, a int32) error {
	if err := vh.useGas(vh.gas.BigIntPow); err != nil {
		return err
	}
	return vh.heap.BigIntSqrt(dst, a)
}

func (vh *VMHooks) BigIntAbs(dst, a int32) error {
	if err := vh.useGas(vh.gas.BigIntArith); err != nil {
		return err
	}
	return vh.heap.BigIntAbs(dst, a)
}

func (vh *VMHooks) BigIntNeg(dst, a int32) error {
	if err := vh.useGas(vh.gas.BigIntArith); err != nil {
		return err
	}
	return vh.heap.BigIntNeg(dst, a)
}

func (vh *VMHooks) BigIntLog2(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigIntArith); err != nil {
		return 0, err
	}
	return vh.heap.BigIntLog2(h)
}

func (vh *VMHooks) BigIntSign(h int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigIntCompare); err != nil {
		return 0, err
	}
	return vh.heap.BigIntSign(h)
}

func (vh *VMHooks) BigIntCmp(a, b int32) (int32, error) {
	if err := vh.useGas(vh.gas.BigIntCompare); err != nil {
		return 0, err
	}
	return vh.heap.BigIntCmp(a, b)
}

func (vh *VMHooks) BigIntAnd(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntBitwise, vh.heap.BigIntAnd, dst, a, b)
}

func (vh *VMHooks) BigIntOr(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntBitwise, vh.heap.BigIntOr, dst, a, b)
}

func (vh *VMHooks) BigIntXor(dst, a, b int32) error {
	return vh.bigIntOp(vh.gas.BigIntBitwise, vh.heap.BigIntXor, dst, a, b)
}

func (vh *VMHooks) BigIntShr(dst, a, bits int32) error {
	return vh.bigIntOp(vh.gas.BigIntBitwise, vh.heap.BigIntShr, dst, a, bits)
}

func (vh *VMHooks) BigIntShl(dst, a, bits int32) error {
	if err := vh.useGas(vh.gas.BigIntBitwise); err != nil {
		return err
	}
	n, err := vh.heap.BigIntShlBits(a, bits)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(int((n + 7) / 8)); err != nil {
		return err
	}
	return vh.heap.BigIntShl(dst, a, bits)
}

func (vh *VMHooks) BigIntFinishUnsigned(h int32) error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	b, err := vh.heap.BigIntUnsignedBytes(h)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(b)); err != nil {
		return err
	}
	vh.ctx.Finish(b)
	return nil
}

func (vh *VMHooks) BigIntFinishSigned(h int32) error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	b, err := vh.heap.BigIntSignedBytes(h)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(b)); err != nil {
		return err
	}
	vh.ctx.Finish(b)
	return nil
}

func (vh *VMHooks) BigIntToString(h int32, dst int32) error {
	if err := vh.useGas(vh.gas.BigIntConversion); err != nil {
		return err
	}
	s, err := vh.heap.BigIntString(h)
	if err != nil {
		return err
	}
	vh.heap.SetBuffer(dst, s)
	return nil
}

func (vh *VMHooks) bigIntArgument(id int32, dst int32, signed bool) error {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return err
	}
	arg, err := vh.ctx.Argument(id)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(arg)); err != nil {
		return err
	}
	if signed {
		vh.heap.SetBigInt(dst, managed.SignedFromBytes(arg))
	} else {
		vh.heap.SetBigInt(dst, new(big.Int).SetBytes(arg))
	}
	return nil
}

func (vh *VMHooks) BigIntGetUnsignedArgument(id int32, dst int32) error {
	return vh.bigIntArgument(id, dst, false)
}

func (vh *VMHooks) BigIntGetSignedArgument(id int32, dst int32) error {
	return vh.bigIntArgument(id, dst, true)
}

func (vh *VMHooks) BigIntGetCallValue(dst int32) error {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return err
	}
	vh.heap.SetBigInt(dst, vh.ctx.Input.EGLDValue)
	return nil
}

func (vh *VMHooks) BigIntGetExternalBalance(addressPtr int32, dst int32) error {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return err
	}
	addr, err := vh.loadAddress(addressPtr)
	if err != nil {
		return err
	}
	balance, err := vh.state.Balance(addr)
	if err != nil {
		return err
	}
	vh.heap.SetBigInt(dst, balance)
	return nil
}

func (vh *VMHooks) BigIntGetESDTExternalBalance(addressPtr int32, tokenPtr int32, tokenLen int32, nonce int64, dst int32) error {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return err
	}
	addr, err := vh.loadAddress(addressPtr)
	if err != nil {
		return err
	}
	tokenID, err := vh.load(tokenPtr, tokenLen)
	if err != nil {
		return err
	}
	balance, err := vh.state.ESDTBalance(addr, tokenID, uint64(nonce))
	if err != nil {
		return err
	}
	vh.heap.SetBigInt(dst, balance)
	return nil
}
