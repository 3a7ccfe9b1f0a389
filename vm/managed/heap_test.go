package managed

import (
	"math"
	"math/big"
	"regexp"
	"testing"

	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHeap() *Heap {
	return NewHeap(60, 4096)
}

func TestBigIntTruncatedDivision(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.BigIntSetInt64(1, -7)
	heap.BigIntSetInt64(2, 2)

	myassert.NoError(heap.BigIntTDiv(3, 1, 2))
	myassert.NoError(heap.BigIntTMod(4, 1, 2))
	q, _ := heap.BigIntGetInt64(3)
	r, _ := heap.BigIntGetInt64(4)
	myassert.Equal(int64(-3), q)
	myassert.Equal(int64(-1), r)

	heap.BigIntSetInt64(5, 0)
	err := heap.BigIntTDiv(3, 1, 5)
	myassert.True(vmerr.IsUser(err))
	myassert.Equal("division by 0", string(vmerr.From(err).Message))
	myassert.True(vmerr.IsUser(heap.BigIntTMod(3, 1, 5)))
}

func TestBigIntLaws(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	values := []string{"0", "1", "-1", "7", "-7", "123456789012345678901234567890", "-98765432109876543210"}
	for _, a := range values {
		for _, b := range values {
			x, _ := new(big.Int).SetString(a, 10)
			y, _ := new(big.Int).SetString(b, 10)
			heap.SetBigInt(1, x)
			heap.SetBigInt(2, y)

			require.NoError(t, heap.BigIntAdd(3, 1, 2))
			require.NoError(t, heap.BigIntAdd(4, 2, 1))
			cmp, _ := heap.BigIntCmp(3, 4)
			myassert.Equal(int32(0), cmp)

			if y.Sign() == 0 {
				continue
			}
			require.NoError(t, heap.BigIntTDiv(5, 1, 2))
			require.NoError(t, heap.BigIntTMod(6, 1, 2))
			require.NoError(t, heap.BigIntMul(7, 5, 2))
			require.NoError(t, heap.BigIntAdd(7, 7, 6))
			cmp, _ = heap.BigIntCmp(7, 1)
			myassert.Equal(int32(0), cmp, "%s / %s", a, b)

			sign, _ := heap.BigIntSign(6)
			myassert.True(sign == 0 || sign == int32(x.Sign()))
		}
	}
}

func TestBigIntAliasing(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.BigIntSetInt64(1, 5)
	myassert.NoError(heap.BigIntMul(1, 1, 1))
	v, _ := heap.BigIntGetInt64(1)
	myassert.Equal(int64(25), v)
}

func TestBigIntErrors(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.BigIntSetInt64(1, -4)
	heap.BigIntSetInt64(2, 3)

	myassert.True(vmerr.IsUser(heap.BigIntSqrt(3, 1)))
	myassert.True(vmerr.IsUser(heap.BigIntAnd(3, 1, 2)))
	myassert.True(vmerr.IsUser(heap.BigIntShl(3, 2, -1)))
	myassert.True(vmerr.IsUser(heap.BigIntPow(3, 2, 1)))

	// results past MaxBigIntBits are refused before they are computed
	heap.BigIntSetInt64(5, 1<<32-1)
	myassert.True(vmerr.IsUser(heap.BigIntPow(3, 2, 5)))
	myassert.True(vmerr.IsUser(heap.BigIntShl(3, 2, 1<<31-1)))
	heap.BigIntSetInt64(6, 1)
	myassert.NoError(heap.BigIntPow(3, 6, 5))
	one, _ := heap.BigIntGetInt64(3)
	myassert.Equal(int64(1), one)
	bits, err := heap.BigIntPowBits(2, 2)
	myassert.NoError(err)
	myassert.Equal(uint64(6), bits)

	heap.SetBigInt(4, new(big.Int).Lsh(big.NewInt(1), 70))
	ok, _ := heap.BigIntIsInt64(4)
	myassert.False(ok)
	_, err = heap.BigIntGetInt64(4)
	myassert.True(vmerr.IsUser(err))

	_, err = heap.BigInt(99)
	myassert.Error(err)
	myassert.False(vmerr.IsUser(err))

	log2, _ := heap.BigIntLog2(4)
	myassert.Equal(int32(70), log2)
	heap.BigIntSetInt64(5, 0)
	log2, _ = heap.BigIntLog2(5)
	myassert.Equal(int32(-1), log2)
}

func TestSignedBytesRoundTrip(t *testing.T) {
	myassert := assert.New(t)
	for _, s := range []string{"0", "1", "-1", "127", "128", "-128", "-129", "255", "-256", "65535", "-1000000000000000000000"} {
		x, _ := new(big.Int).SetString(s, 10)
		myassert.Equal(0, SignedFromBytes(SignedToBytes(x)).Cmp(x), s)
	}
	myassert.Equal([]byte{0x00, 0x80}, SignedToBytes(big.NewInt(128)))
	myassert.Equal([]byte{0x80}, SignedToBytes(big.NewInt(-128)))
	myassert.Equal([]byte{0xff, 0x7f}, SignedToBytes(big.NewInt(-129)))
	myassert.Equal([]byte{}, SignedToBytes(big.NewInt(0)))
}

func TestBufferUnsignedRoundTrip(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	x, _ := new(big.Int).SetString("340282366920938463463374607431768211457", 10)
	heap.SetBigInt(1, x)
	myassert.NoError(heap.BufferFromBigIntUnsigned(1, 1))
	myassert.NoError(heap.BufferToBigIntUnsigned(1, 2))
	y, _ := heap.BigInt(2)
	myassert.Equal(0, x.Cmp(y))
}

func TestBufferSlices(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.SetBuffer(1, []byte{0x01, 0x02, 0x03, 0x04})

	slice, ok, err := heap.BufferSlice(1, 1, 2)
	myassert.NoError(err)
	myassert.True(ok)
	myassert.Equal([]byte{0x02, 0x03}, slice)

	_, ok, err = heap.BufferSlice(1, 3, 2)
	myassert.NoError(err)
	myassert.False(ok)

	heap.SetBuffer(2, []byte("keep"))
	ok, _ = heap.BufferCopySlice(1, 3, 2, 2)
	myassert.False(ok)
	b, _ := heap.Buffer(2)
	myassert.Equal([]byte("keep"), b)

	ok, _ = heap.BufferSetSlice(1, 2, []byte{0xaa, 0xbb})
	myassert.True(ok)
	ok, _ = heap.BufferSetSlice(1, 3, []byte{0xaa, 0xbb})
	myassert.False(ok)
	b, _ = heap.Buffer(1)
	myassert.Equal([]byte{0x01, 0x02, 0xaa, 0xbb}, b)

	myassert.NoError(heap.BufferAppend(1, 1))
	n, _ := heap.BufferLen(1)
	myassert.Equal(int32(8), n)
}

func TestBufferHex(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.SetBuffer(1, []byte{0x00, 0xab, 0x7f, 0xff, 0x10})
	myassert.NoError(heap.BufferToHex(1, 2))
	out, _ := heap.Buffer(2)
	myassert.Len(out, 10)
	myassert.Regexp(regexp.MustCompile("^[0-9a-f]+$"), string(out))
	myassert.Equal("00ab7fff10", string(out))
}

func TestHandleIsolation(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.BigIntSetInt64(7, 42)
	heap.SetBuffer(7, []byte("buffer"))
	myassert.NoError(heap.BigFloatSetInt64(7, 3))
	heap.BigIntSetInt64(7, 43)

	b, _ := heap.Buffer(7)
	myassert.Equal([]byte("buffer"), b)
	f, _ := heap.BigFloat(7)
	myassert.Equal("3e0", f.String())
}

func TestNewHandlesSkipWritten(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.SetBuffer(10, []byte("x"))
	h := heap.NewBuffer([]byte("y"))
	myassert.Equal(int32(11), h)
	myassert.Equal(int32(0), heap.NewMap())
}

func TestNewHandlesAfterMaxHandle(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.SetBuffer(0, []byte("a"))
	heap.SetBuffer(math.MaxInt32, []byte("top"))

	h := heap.NewBuffer([]byte("b"))
	myassert.Equal(int32(1), h)
	myassert.Equal(int32(2), heap.NewBuffer(nil))
	top, err := heap.Buffer(math.MaxInt32)
	myassert.NoError(err)
	myassert.Equal([]byte("top"), top)
}

func TestManagedMap(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	m := heap.NewMap()
	put := func(k, v string) {
		heap.SetBuffer(100, []byte(k))
		heap.SetBuffer(101, []byte(v))
		require.NoError(t, heap.MapPut(m, 100, 101))
	}
	put("a", "1")
	put("b", "2")
	put("a", "3")

	heap.SetBuffer(100, []byte("a"))
	ok, _ := heap.MapContains(m, 100)
	myassert.True(ok)
	myassert.NoError(heap.MapGet(m, 100, 102))
	v, _ := heap.Buffer(102)
	myassert.Equal([]byte("3"), v)

	om, _ := heap.Map(m)
	myassert.Equal([][]byte{[]byte("a"), []byte("b")}, om.Keys())

	myassert.NoError(heap.MapRemove(m, 100, 103))
	v, _ = heap.Buffer(103)
	myassert.Equal([]byte("3"), v)
	ok, _ = heap.MapContains(m, 100)
	myassert.False(ok)

	myassert.NoError(heap.MapGet(m, 100, 104))
	v, _ = heap.Buffer(104)
	myassert.Empty(v)
}

func TestBufferList(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	items := [][]byte{[]byte("abc"), []byte("defghi"), {}}
	heap.SetBufferList(1, items)
	got, err := heap.BufferList(1)
	myassert.NoError(err)
	myassert.Equal(items, got)

	heap.SetBuffer(2, []byte{0, 0, 1})
	_, err = heap.BufferList(2)
	myassert.True(vmerr.IsUser(err))
}

func TestBigFloatArithmetic(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()

	third, err := heap.BigFloatNewFromFrac(1, 3)
	myassert.NoError(err)
	three, _ := heap.BigFloatNewFromSci(3, 0)
	myassert.NoError(heap.BigFloatMul(50, third, three))
	f, _ := heap.BigFloat(50)
	myassert.Equal("999999999999999999999999999999999999999999999999999999999999e-60", f.String())

	_, err = heap.BigFloatNewFromFrac(1, 0)
	myassert.True(vmerr.IsUser(err))
	_, err = heap.BigFloatNewFromSci(1, 2)
	myassert.True(vmerr.IsUser(err))
	_, err = heap.BigFloatNewFromParts(1, 5, 1)
	myassert.True(vmerr.IsUser(err))

	h, err := heap.BigFloatNewFromParts(-2, 5, -1)
	myassert.NoError(err)
	f, _ = heap.BigFloat(h)
	myassert.Equal("-25e-1", f.String())

	h0, err := heap.BigFloatNewFromParts(0, 5, -1)
	myassert.NoError(err)
	f, _ = heap.BigFloat(h0)
	myassert.Equal("-5e-1", f.String())

	myassert.NoError(heap.BigFloatFloor(1, h))
	myassert.NoError(heap.BigFloatCeil(2, h))
	myassert.NoError(heap.BigFloatTruncate(3, h))
	floor, _ := heap.BigIntGetInt64(1)
	ceil, _ := heap.BigIntGetInt64(2)
	trunc, _ := heap.BigIntGetInt64(3)
	myassert.Equal(int64(-3), floor)
	myassert.Equal(int64(-2), ceil)
	myassert.Equal(int64(-2), trunc)

	isInt, _ := heap.BigFloatIsInt(h)
	myassert.False(isInt)
	myassert.NoError(heap.BigFloatPow(60, h, 2))
	f, _ = heap.BigFloat(60)
	myassert.Equal("625e-2", f.String())

	myassert.NoError(heap.BigFloatSqrt(61, 60))
	f, _ = heap.BigFloat(61)
	myassert.Equal("25e-1", f.String())
	myassert.True(vmerr.IsUser(heap.BigFloatSqrt(62, h)))

	myassert.NoError(heap.BigFloatGetConstPi(63))
	sign, _ := heap.BigFloatSign(63)
	myassert.Equal(int32(1), sign)
	cmp, _ := heap.BigFloatCmp(63, 60)
	myassert.Equal(int32(-1), cmp)
}

func TestBigFloatConversionBound(t *testing.T) {
	myassert := assert.New(t)
	heap := newTestHeap()
	heap.SetBigInt(1, new(big.Int).Exp(big.NewInt(10), big.NewInt(5000), nil))
	myassert.NoError(heap.BigFloatSetBigInt(2, 1))
	err := heap.BigFloatFloor(3, 2)
	myassert.True(vmerr.IsUser(err))
}
