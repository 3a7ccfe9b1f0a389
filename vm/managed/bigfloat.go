package managed

import (
	"math/big"

	"github.com/coschain/vmhooks/vm/vmerr"
)

const (
	piDigits = "3.14159265358979323846264338327950288419716939937510582097494459"
	eDigits  = "2.71828182845904523536028747135266249775724709369995957496696762"
)

// BigFloat returns a copy of the value under h.
func (heap *Heap) BigFloat(h int32) (*Decimal, error) {
	v, ok := heap.bigFloats[h]
	if !ok {
		return nil, invalidHandle(tableBigFloat, h)
	}
	return v.Copy(), nil
}

func (heap *Heap) SetBigFloat(h int32, v *Decimal) {
	heap.bigFloats[h] = v.Copy()
	heap.written(tableBigFloat, h)
}

func (heap *Heap) newBigFloat(v *Decimal) int32 {
	h := heap.allocate(tableBigFloat)
	heap.bigFloats[h] = v
	return h
}

// BigFloatNewFromParts builds integral ± fractional*10^exponent, the sign of
// the fractional contribution following the integral part.
func (heap *Heap) BigFloatNewFromParts(integral, fractional, exponent int32) (int32, error) {
	if exponent > 0 {
		return 0, vmerr.User("exponent is positive")
	}
	c := heap.floatCtx
	value, err := c.fromInt64(int64(integral))
	if err != nil {
		return 0, err
	}
	frac, err := c.round(big.NewInt(int64(fractional)), int64(exponent))
	if err != nil {
		return 0, err
	}
	if integral > 0 {
		value, err = c.add(value, frac)
	} else {
		value, err = c.sub(value, frac)
	}
	if err != nil {
		return 0, err
	}
	return heap.newBigFloat(value), nil
}

func (heap *Heap) BigFloatNewFromFrac(numerator, denominator int64) (int32, error) {
	if denominator == 0 {
		return 0, vmerr.User("division by 0")
	}
	c := heap.floatCtx
	num, err := c.fromInt64(numerator)
	if err != nil {
		return 0, err
	}
	den, err := c.fromInt64(denominator)
	if err != nil {
		return 0, err
	}
	value, err := c.quo(num, den)
	if err != nil {
		return 0, err
	}
	return heap.newBigFloat(value), nil
}

func (heap *Heap) BigFloatNewFromSci(significand, exponent int64) (int32, error) {
	if exponent > 0 {
		return 0, vmerr.User("exponent is positive")
	}
	value, err := heap.floatCtx.round(big.NewInt(significand), exponent)
	if err != nil {
		return 0, err
	}
	return heap.newBigFloat(value), nil
}

func (heap *Heap) bigFloatBinary(dst, a, b int32, op func(x, y *Decimal) (*Decimal, error)) error {
	x, err := heap.BigFloat(a)
	if err != nil {
		return err
	}
	y, err := heap.BigFloat(b)
	if err != nil {
		return err
	}
	z, err := op(x, y)
	if err != nil {
		return err
	}
	heap.SetBigFloat(dst, z)
	return nil
}

func (heap *Heap) bigFloatUnary(dst, a int32, op func(x *Decimal) (*Decimal, error)) error {
	x, err := heap.BigFloat(a)
	if err != nil {
		return err
	}
	z, err := op(x)
	if err != nil {
		return err
	}
	heap.SetBigFloat(dst, z)
	return nil
}

func (heap *Heap) BigFloatAdd(dst, a, b int32) error {
	return heap.bigFloatBinary(dst, a, b, heap.floatCtx.add)
}

func (heap *Heap) BigFloatSub(dst, a, b int32) error {
	return heap.bigFloatBinary(dst, a, b, heap.floatCtx.sub)
}

func (heap *Heap) BigFloatMul(dst, a, b int32) error {
	return heap.bigFloatBinary(dst, a, b, heap.floatCtx.mul)
}

func (heap *Heap) BigFloatDiv(dst, a, b int32) error {
	return heap.bigFloatBinary(dst, a, b, heap.floatCtx.quo)
}

func (heap *Heap) BigFloatNeg(dst, a int32) error {
	return heap.bigFloatUnary(dst, a, func(x *Decimal) (*Decimal, error) {
		return heap.floatCtx.neg(x), nil
	})
}

func (heap *Heap) BigFloatAbs(dst, a int32) error {
	return heap.bigFloatUnary(dst, a, func(x *Decimal) (*Decimal, error) {
		return heap.floatCtx.abs(x), nil
	})
}

func (heap *Heap) BigFloatClone(dst, a int32) error {
	return heap.bigFloatUnary(dst, a, func(x *Decimal) (*Decimal, error) {
		return x, nil
	})
}

func (heap *Heap) BigFloatSqrt(dst, a int32) error {
	return heap.bigFloatUnary(dst, a, heap.floatCtx.sqrt)
}

func (heap *Heap) BigFloatPow(dst, a int32, exponent int32) error {
	return heap.bigFloatUnary(dst, a, func(x *Decimal) (*Decimal, error) {
		return heap.floatCtx.powInt(x, exponent)
	})
}

func (heap *Heap) BigFloatCmp(a, b int32) (int32, error) {
	x, err := heap.BigFloat(a)
	if err != nil {
		return 0, err
	}
	y, err := heap.BigFloat(b)
	if err != nil {
		return 0, err
	}
	return int32(heap.floatCtx.cmp(x, y)), nil
}

func (heap *Heap) BigFloatSign(h int32) (int32, error) {
	x, err := heap.BigFloat(h)
	if err != nil {
		return 0, err
	}
	return int32(x.Sign()), nil
}

func (heap *Heap) BigFloatIsInt(h int32) (bool, error) {
	x, err := heap.BigFloat(h)
	if err != nil {
		return false, err
	}
	return heap.floatCtx.isInt(x), nil
}

func (heap *Heap) BigFloatSetInt64(dst int32, v int64) error {
	d, err := heap.floatCtx.fromInt64(v)
	if err != nil {
		return err
	}
	heap.SetBigFloat(dst, d)
	return nil
}

// BigFloatSetBigInt lifts a big integer, rounding it to the float precision.
func (heap *Heap) BigFloatSetBigInt(dst, bi int32) error {
	x, err := heap.BigInt(bi)
	if err != nil {
		return err
	}
	d, err := heap.floatCtx.fromBigInt(x)
	if err != nil {
		return err
	}
	heap.SetBigFloat(dst, d)
	return nil
}

func (heap *Heap) bigFloatToBigInt(dstBigInt, a int32, mode int) error {
	x, err := heap.BigFloat(a)
	if err != nil {
		return err
	}
	z, err := heap.floatCtx.toBigInt(x, mode, heap.maxConversionExp)
	if err != nil {
		return err
	}
	heap.SetBigInt(dstBigInt, z)
	return nil
}

func (heap *Heap) BigFloatFloor(dstBigInt, a int32) error {
	return heap.bigFloatToBigInt(dstBigInt, a, roundFloor)
}

func (heap *Heap) BigFloatCeil(dstBigInt, a int32) error {
	return heap.bigFloatToBigInt(dstBigInt, a, roundCeil)
}

func (heap *Heap) BigFloatTruncate(dstBigInt, a int32) error {
	return heap.bigFloatToBigInt(dstBigInt, a, roundTrunc)
}

func (heap *Heap) setConst(dst int32, digits string) error {
	d, err := heap.floatCtx.fromString(digits)
	if err != nil {
		return err
	}
	heap.SetBigFloat(dst, d)
	return nil
}

func (heap *Heap) BigFloatGetConstPi(dst int32) error {
	return heap.setConst(dst, piDigits)
}

func (heap *Heap) BigFloatGetConstE(dst int32) error {
	return heap.setConst(dst, eDigits)
}
