package vmcontext

import (
	"math/big"
	"testing"

	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestContext(input *CallInput) *Context {
	block := &BlockInfo{Nonce: 10, RandomSeed: []byte("seed")}
	return NewContext(input, block, nil, nil, 0, logrus.New())
}

func TestCheckNotPayable(t *testing.T) {
	myassert := assert.New(t)

	ctx := newTestContext(&CallInput{EGLDValue: big.NewInt(1000)})
	err := ctx.CheckNotPayable()
	myassert.True(vmerr.IsUser(err))
	myassert.Equal("non-payable", string(vmerr.From(err).Message))

	ctx = newTestContext(&CallInput{
		ESDTTransfers: []ESDTTransfer{{TokenID: []byte("TKN-123456"), Amount: big.NewInt(1)}},
	})
	myassert.Error(ctx.CheckNotPayable())

	ctx = newTestContext(&CallInput{EGLDValue: big.NewInt(0)})
	myassert.NoError(ctx.CheckNotPayable())
}

func TestArguments(t *testing.T) {
	myassert := assert.New(t)
	ctx := newTestContext(&CallInput{Arguments: [][]byte{[]byte("a"), []byte("bc")}})
	myassert.Equal(int32(2), ctx.NumArguments())
	arg, err := ctx.Argument(1)
	myassert.NoError(err)
	myassert.Equal([]byte("bc"), arg)
	_, err = ctx.Argument(2)
	myassert.True(vmerr.IsUser(err))
	_, err = ctx.Argument(-1)
	myassert.True(vmerr.IsUser(err))
}

func TestReturnData(t *testing.T) {
	myassert := assert.New(t)
	ctx := newTestContext(&CallInput{})
	payloads := [][]byte{[]byte("one"), {}, []byte("three")}
	for _, p := range payloads {
		ctx.Finish(p)
	}
	myassert.Equal(payloads, ctx.ReturnData())

	ctx.DeleteFromReturnData(1)
	ctx.DeleteFromReturnData(7)
	myassert.Equal([][]byte{[]byte("one"), []byte("three")}, ctx.ReturnData())
	ctx.CleanReturnData()
	myassert.Empty(ctx.ReturnData())
}

func TestPendingActionsKeepOrder(t *testing.T) {
	myassert := assert.New(t)
	ctx := newTestContext(&CallInput{})
	a := &Action{Kind: ActionAsync, Function: "A"}
	d := &Action{Kind: ActionDeploy, Status: ActionCompleted}
	b := &Action{Kind: ActionAsync, Function: "B"}
	ctx.AddAction(a)
	ctx.AddAction(d)
	ctx.AddAction(b)
	myassert.Equal([]*Action{a, b}, ctx.PendingActions())
	myassert.Len(ctx.Actions(), 3)
}

func TestGasMeter(t *testing.T) {
	myassert := assert.New(t)
	g := NewGasMeter(100)
	myassert.NoError(g.Use(60))
	myassert.Equal(uint64(40), g.Left())
	g.Refund(10)
	myassert.Equal(uint64(50), g.Left())
	err := g.Use(51)
	myassert.Equal(vmerr.OutOfGas, vmerr.CodeOf(err))
	myassert.Equal(uint64(0), g.Left())
}

func TestRandomIsDeterministic(t *testing.T) {
	myassert := assert.New(t)
	r1 := NewRandom([]byte("seed"), []byte("tx"))
	r2 := NewRandom([]byte("seed"), []byte("tx"))
	first := r1.Next(70)
	myassert.Len(first, 70)
	myassert.Equal(first, r2.Next(70))
	myassert.NotEqual(first[:16], r1.Next(16))

	r3 := NewRandom([]byte("seed"), []byte("other tx"))
	myassert.NotEqual(first, r3.Next(70))
}

func TestTransferCodec(t *testing.T) {
	myassert := assert.New(t)
	transfers := []ESDTTransfer{
		{TokenID: []byte("TOKEN-12345"), Nonce: 6, Amount: big.NewInt(789)},
		{TokenID: []byte("SFT-abcdef"), Nonce: 0, Amount: big.NewInt(0)},
	}
	encoded := EncodeTransfers(transfers)
	myassert.Equal([]byte{0, 0, 0, 11}, encoded[:4])
	decoded, err := DecodeTransfers(encoded)
	myassert.NoError(err)
	myassert.Len(decoded, 2)
	myassert.Equal([]byte("TOKEN-12345"), decoded[0].TokenID)
	myassert.Equal(uint64(6), decoded[0].Nonce)
	myassert.Equal(int64(789), decoded[0].Amount.Int64())
	myassert.Equal(0, decoded[1].Amount.Sign())

	_, err = DecodeTransfers(encoded[:len(encoded)-1])
	myassert.True(vmerr.IsUser(err))
}
