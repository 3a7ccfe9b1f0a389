package managed

import (
	"math"
	"math/big"

	"github.com/coschain/vmhooks/vm/vmerr"
)

var (
	minInt64 = big.NewInt(math.MinInt64)
	maxInt64 = big.NewInt(math.MaxInt64)
)

// BigInt returns a copy of the value under h.
func (heap *Heap) BigInt(h int32) (*big.Int, error) {
	v, ok := heap.bigInts[h]
	if !ok {
		return nil, invalidHandle(tableBigInt, h)
	}
	return new(big.Int).Set(v), nil
}

// SetBigInt stores a copy of v under h, creating the handle if needed.
func (heap *Heap) SetBigInt(h int32, v *big.Int) {
	heap.bigInts[h] = new(big.Int).Set(v)
	heap.written(tableBigInt, h)
}

// NewBigInt stores v under a fresh handle.
func (heap *Heap) NewBigInt(v *big.Int) int32 {
	h := heap.allocate(tableBigInt)
	heap.bigInts[h] = new(big.Int).Set(v)
	return h
}

func (heap *Heap) HasBigInt(h int32) bool {
	_, ok := heap.bigInts[h]
	return ok
}

func (heap *Heap) bigInt2(a, b int32) (x, y *big.Int, err error) {
	if x, err = heap.BigInt(a); err != nil {
		return
	}
	y, err = heap.BigInt(b)
	return
}

func (heap *Heap) BigIntSetInt64(dst int32, v int64) {
	heap.SetBigInt(dst, big.NewInt(v))
}

func (heap *Heap) BigIntIsInt64(h int32) (bool, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return false, err
	}
	return x.IsInt64(), nil
}

func (heap *Heap) BigIntGetInt64(h int32) (int64, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return 0, err
	}
	if !x.IsInt64() {
		return 0, vmerr.User("big int cannot be represented as int64")
	}
	return x.Int64(), nil
}

func (heap *Heap) BigIntSetUnsignedBytes(dst int32, b []byte) {
	heap.SetBigInt(dst, new(big.Int).SetBytes(b))
}

func (heap *Heap) BigIntSetSignedBytes(dst int32, b []byte) {
	heap.SetBigInt(dst, SignedFromBytes(b))
}

// BigIntUnsignedBytes returns the big-endian magnitude, empty for zero.
func (heap *Heap) BigIntUnsignedBytes(h int32) ([]byte, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return nil, err
	}
	return x.Bytes(), nil
}

// BigIntSignedBytes returns the minimal two's complement form, empty for zero.
func (heap *Heap) BigIntSignedBytes(h int32) ([]byte, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return nil, err
	}
	return SignedToBytes(x), nil
}

func (heap *Heap) bigIntBinary(dst, a, b int32, op func(x, y *big.Int) (*big.Int, error)) error {
	x, y, err := heap.bigInt2(a, b)
	if err != nil {
		return err
	}
	z, err := op(x, y)
	if err != nil {
		return err
	}
	heap.SetBigInt(dst, z)
	return nil
}

func (heap *Heap) bigIntUnary(dst, a int32, op func(x *big.Int) (*big.Int, error)) error {
	x, err := heap.BigInt(a)
	if err != nil {
		return err
	}
	z, err := op(x)
	if err != nil {
		return err
	}
	heap.SetBigInt(dst, z)
	return nil
}

func (heap *Heap) BigIntAdd(dst, a, b int32) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Add(x, y), nil
	})
}

func (heap *Heap) BigIntSub(dst, a, b int32) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Sub(x, y), nil
	})
}

func (heap *Heap) BigIntMul(dst, a, b int32) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		return new(big.Int).Mul(x, y), nil
	})
}

// BigIntTDiv divides rounding toward zero.
func (heap *Heap) BigIntTDiv(dst, a, b int32) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, vmerr.User("division by 0")
		}
		return new(big.Int).Quo(x, y), nil
	})
}

// BigIntTMod is the remainder of BigIntTDiv, it takes the sign of the dividend.
func (heap *Heap) BigIntTMod(dst, a, b int32) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		if y.Sign() == 0 {
			return nil, vmerr.User("division by 0")
		}
		return new(big.Int).Rem(x, y), nil
	})
}

// MaxBigIntBits bounds the results of pow and left shift.
const MaxBigIntBits = 1 << 23

func errResultTooLarge() error {
	return vmerr.User("big int result too large")
}

func powBits(x, y *big.Int) (uint64, error) {
	if y.Sign() < 0 {
		return 0, vmerr.User("negative exponent")
	}
	if !y.IsInt64() || y.Int64() > math.MaxUint32 {
		return 0, vmerr.User("exponent too large")
	}
	n := uint64(x.BitLen())
	if n <= 1 {
		return n, nil
	}
	bits := n * y.Uint64()
	if bits > MaxBigIntBits {
		return 0, errResultTooLarge()
	}
	return bits, nil
}

// BigIntPowBits is an upper bound on the bit length of a^b.
func (heap *Heap) BigIntPowBits(a, b int32) (uint64, error) {
	x, y, err := heap.bigInt2(a, b)
	if err != nil {
		return 0, err
	}
	return powBits(x, y)
}

func (heap *Heap) BigIntPow(dst, a, b int32) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		if _, err := powBits(x, y); err != nil {
			return nil, err
		}
		return new(big.Int).Exp(x, y, nil), nil
	})
}

func (heap *Heap) BigIntSqrt(dst, a int32) error {
	return heap.bigIntUnary(dst, a, func(x *big.Int) (*big.Int, error) {
		if x.Sign() < 0 {
			return nil, vmerr.User("bad bounds (lower)")
		}
		return new(big.Int).Sqrt(x), nil
	})
}

func (heap *Heap) BigIntAbs(dst, a int32) error {
	return heap.bigIntUnary(dst, a, func(x *big.Int) (*big.Int, error) {
		return new(big.Int).Abs(x), nil
	})
}

func (heap *Heap) BigIntNeg(dst, a int32) error {
	return heap.bigIntUnary(dst, a, func(x *big.Int) (*big.Int, error) {
		return new(big.Int).Neg(x), nil
	})
}

// BigIntLog2 is the index of the highest set bit, -1 for zero.
func (heap *Heap) BigIntLog2(h int32) (int32, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return 0, err
	}
	return int32(x.BitLen()) - 1, nil
}

func (heap *Heap) BigIntSign(h int32) (int32, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return 0, err
	}
	return int32(x.Sign()), nil
}

func (heap *Heap) BigIntCmp(a, b int32) (int32, error) {
	x, y, err := heap.bigInt2(a, b)
	if err != nil {
		return 0, err
	}
	return int32(x.Cmp(y)), nil
}

func errNegativeBitwise() error {
	return vmerr.User("bitwise operations only allowed on positive integers")
}

func (heap *Heap) bigIntBitwise(dst, a, b int32, op func(z, x, y *big.Int) *big.Int) error {
	return heap.bigIntBinary(dst, a, b, func(x, y *big.Int) (*big.Int, error) {
		if x.Sign() < 0 || y.Sign() < 0 {
			return nil, errNegativeBitwise()
		}
		return op(new(big.Int), x, y), nil
	})
}

func (heap *Heap) BigIntAnd(dst, a, b int32) error {
	return heap.bigIntBitwise(dst, a, b, (*big.Int).And)
}

func (heap *Heap) BigIntOr(dst, a, b int32) error {
	return heap.bigIntBitwise(dst, a, b, (*big.Int).Or)
}

func (heap *Heap) BigIntXor(dst, a, b int32) error {
	return heap.bigIntBitwise(dst, a, b, (*big.Int).Xor)
}

func shlBits(x *big.Int, bits int32) (uint64, error) {
	if x.Sign() < 0 || bits < 0 {
		return 0, errNegativeBitwise()
	}
	if x.Sign() == 0 {
		return 0, nil
	}
	n := uint64(x.BitLen()) + uint64(bits)
	if n > MaxBigIntBits {
		return 0, errResultTooLarge()
	}
	return n, nil
}

// BigIntShlBits is the bit length of a << bits.
func (heap *Heap) BigIntShlBits(a int32, bits int32) (uint64, error) {
	x, err := heap.BigInt(a)
	if err != nil {
		return 0, err
	}
	return shlBits(x, bits)
}

func (heap *Heap) bigIntShift(dst, a int32, bits int32, left bool) error {
	return heap.bigIntUnary(dst, a, func(x *big.Int) (*big.Int, error) {
		if x.Sign() < 0 || bits < 0 {
			return nil, errNegativeBitwise()
		}
		if left {
			if _, err := shlBits(x, bits); err != nil {
				return nil, err
			}
			return new(big.Int).Lsh(x, uint(bits)), nil
		}
		return new(big.Int).Rsh(x, uint(bits)), nil
	})
}

func (heap *Heap) BigIntShl(dst, a int32, bits int32) error {
	return heap.bigIntShift(dst, a, bits, true)
}

func (heap *Heap) BigIntShr(dst, a int32, bits int32) error {
	return heap.bigIntShift(dst, a, bits, false)
}

// BigIntString is the decimal representation.
func (heap *Heap) BigIntString(h int32) ([]byte, error) {
	x, err := heap.BigInt(h)
	if err != nil {
		return nil, err
	}
	return []byte(x.String()), nil
}
