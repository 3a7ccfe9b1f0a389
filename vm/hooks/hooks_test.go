package hooks

import (
	"math/big"
	"testing"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/config"
	"github.com/coschain/vmhooks/db/storage"
	"github.com/coschain/vmhooks/mylog"
	"github.com/coschain/vmhooks/vm/builtin"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/managed"
	"github.com/coschain/vmhooks/vm/memory"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	calls    []*vmcontext.CallInput
	result   [][]byte
	err      error
	deployed common.Address
}

func (h *fakeHost) ExecuteOnDest(parent *vmcontext.Context, input *vmcontext.CallInput) ([][]byte, error) {
	h.calls = append(h.calls, input)
	return h.result, h.err
}

func (h *fakeHost) Deploy(parent *vmcontext.Context, code, metadata []byte, value *big.Int, args [][]byte, gas uint64) (common.Address, [][]byte, error) {
	return h.deployed, h.result, h.err
}

type testEnv struct {
	vh    *VMHooks
	mem   *memory.SliceMemory
	state *world.State
	host  *fakeHost
}

func testAddress(b byte) common.Address {
	var a common.Address
	a[0] = 0xaa
	a[31] = b
	return a
}

func newTestEnv(input *vmcontext.CallInput) *testEnv {
	cfg := config.DefaultVMConfig()
	if input.Recipient.IsZero() {
		input.Recipient = testAddress(1)
	}
	if input.GasProvided == 0 {
		input.GasProvided = 100000000
	}
	logger := mylog.Discard()
	ctx := vmcontext.NewContext(input, &vmcontext.BlockInfo{RandomSeed: []byte("seed")}, nil, nil, 0, logger)
	state := world.NewState(storage.NewTrxMemoryDatabase(), 1024*1024, logger)
	host := &fakeHost{}
	heap := managed.NewHeap(cfg.BigFloatPrecision, cfg.MaxConversionExponent)
	vh := New(heap, ctx, state, host, builtin.NewRegistry(), &cfg)
	mem := memory.NewSliceMemory(1)
	vh.SetMemory(mem)
	return &testEnv{vh: vh, mem: mem, state: state, host: host}
}

func TestTableMatchesMethods(t *testing.T) {
	myassert := assert.New(t)
	myassert.Len(Table, 262)
	for _, h := range Table {
		if h.Unavailable {
			continue
		}
		m, ok := methods[h.Name]
		if !myassert.True(ok, h.Name) {
			continue
		}
		myassert.NoError(checkSignature(h, m))
	}
}

func TestDivision(t *testing.T) {
	myassert := assert.New(t)
	vh := newTestEnv(&vmcontext.CallInput{}).vh

	a, _ := vh.BigIntNew(-7)
	b, _ := vh.BigIntNew(2)
	q, _ := vh.BigIntNew(0)
	r, _ := vh.BigIntNew(0)
	myassert.NoError(vh.BigIntTDiv(q, a, b))
	myassert.NoError(vh.BigIntTMod(r, a, b))
	v, _ := vh.BigIntGetInt64(q)
	myassert.Equal(int64(-3), v)
	v, _ = vh.BigIntGetInt64(r)
	myassert.Equal(int64(-1), v)

	h, _ := Lookup("bigIntEDiv")
	_, err := vh.Dispatch(h.ID, []uint64{uint64(q), uint64(a), uint64(b)})
	myassert.True(vmerr.IsUnavailable(err))
	_, err = vh.DispatchByName("bigIntEMod", []uint64{uint64(r), uint64(a), uint64(b)})
	myassert.True(vmerr.IsUnavailable(err))

	zero, _ := vh.BigIntNew(0)
	err = vh.BigIntTDiv(q, a, zero)
	myassert.True(vmerr.IsUser(err))
}

func TestDispatchRawArguments(t *testing.T) {
	myassert := assert.New(t)
	vh := newTestEnv(&vmcontext.CallInput{}).vh

	// -5 as an i64 argument, the handle comes back in the low 32 bits
	h, err := vh.DispatchByName("bigIntNew", []uint64{uint64(0xfffffffffffffffb)})
	myassert.NoError(err)
	v, err := vh.DispatchByName("bigIntGetInt64", []uint64{h})
	myassert.NoError(err)
	myassert.Equal(int64(-5), int64(v))

	_, err = vh.DispatchByName("bigIntNew", nil)
	myassert.Equal(vmerr.FunctionWrongSignature, vmerr.CodeOf(err))
	_, err = vh.DispatchByName("noSuchHook", nil)
	myassert.Equal(vmerr.FunctionNotFound, vmerr.CodeOf(err))
}

func TestCheckNoPayment(t *testing.T) {
	myassert := assert.New(t)

	vh := newTestEnv(&vmcontext.CallInput{EGLDValue: big.NewInt(1000)}).vh
	err := vh.CheckNoPayment()
	myassert.True(vmerr.IsUser(err))
	myassert.Equal("non-payable", string(vmerr.From(err).Message))

	vh = newTestEnv(&vmcontext.CallInput{}).vh
	myassert.NoError(vh.CheckNoPayment())
}

func TestByteSlice(t *testing.T) {
	myassert := assert.New(t)
	env := newTestEnv(&vmcontext.CallInput{})
	vh := env.vh

	myassert.NoError(memory.Store(env.mem, 0, []byte("hello world")))
	h, err := vh.MBufferNewFromBytes(0, 11)
	myassert.NoError(err)

	rc, err := vh.MBufferGetByteSlice(h, 6, 5, 100)
	myassert.NoError(err)
	myassert.Equal(int32(0), rc)
	out, _ := memory.Load(env.mem, 100, 5)
	myassert.Equal([]byte("world"), out)

	myassert.NoError(memory.Store(env.mem, 200, []byte("xxxxx")))
	rc, err = vh.MBufferGetByteSlice(h, 8, 5, 200)
	myassert.NoError(err)
	myassert.Equal(int32(1), rc)
	out, _ = memory.Load(env.mem, 200, 5)
	myassert.Equal([]byte("xxxxx"), out)

	_, err = vh.MBufferGetByteSlice(h, 0, 5, int32(env.mem.Size()-2))
	myassert.Error(err)
	myassert.False(vmerr.IsUser(err))
}

func TestManagedMap(t *testing.T) {
	myassert := assert.New(t)
	env := newTestEnv(&vmcontext.CallInput{})
	vh := env.vh

	m, _ := vh.ManagedMapNew()
	heap := vh.Heap()
	k := heap.NewBuffer([]byte("k"))
	v := heap.NewBuffer([]byte("v"))
	out := heap.NewBuffer(nil)

	_, err := vh.ManagedMapPut(m, k, v)
	myassert.NoError(err)
	_, err = vh.ManagedMapGet(m, k, out)
	myassert.NoError(err)
	b, _ := heap.Buffer(out)
	myassert.Equal([]byte("v"), b)

	_, err = vh.ManagedMapRemove(m, k, out)
	myassert.NoError(err)
	has, _ := vh.ManagedMapContains(m, k)
	myassert.Equal(int32(0), has)

	_, err = vh.ManagedMapGet(m, k, out)
	myassert.NoError(err)
	b, _ = heap.Buffer(out)
	myassert.Empty(b)
}

func TestStorage(t *testing.T) {
	myassert := assert.New(t)
	env := newTestEnv(&vmcontext.CallInput{})
	vh := env.vh
	heap := vh.Heap()

	key := heap.NewBuffer([]byte("counter"))
	value := heap.NewBuffer([]byte{7})
	_, err := vh.MBufferStorageStore(key, value)
	myassert.NoError(err)
	dst := heap.NewBuffer(nil)
	_, err = vh.MBufferStorageLoad(key, dst)
	myassert.NoError(err)
	b, _ := heap.Buffer(dst)
	myassert.Equal([]byte{7}, b)

	reserved := heap.NewBuffer([]byte("ELRONDkey"))
	_, err = vh.MBufferStorageStore(reserved, value)
	myassert.True(vmerr.IsUser(err))

	ro := newTestEnv(&vmcontext.CallInput{ReadOnly: true}).vh
	key = ro.Heap().NewBuffer([]byte("k"))
	_, err = ro.MBufferStorageStore(key, key)
	myassert.Error(err)
	myassert.False(vmerr.IsUser(err))
}

func TestHashes(t *testing.T) {
	myassert := assert.New(t)
	vh := newTestEnv(&vmcontext.CallInput{}).vh
	heap := vh.Heap()

	in := heap.NewBuffer([]byte("abc"))
	out := heap.NewBuffer(nil)
	_, err := vh.ManagedSha256(in, out)
	myassert.NoError(err)
	b, _ := heap.Buffer(out)
	myassert.Equal(common.Sha256([]byte("abc")), b)

	_, err = vh.ManagedKeccak256(in, out)
	myassert.NoError(err)
	b, _ = heap.Buffer(out)
	myassert.Equal(common.Keccak256([]byte("abc")), b)
	myassert.Len(b, 32)
}

func TestOutputs(t *testing.T) {
	myassert := assert.New(t)
	env := newTestEnv(&vmcontext.CallInput{Function: "run"})
	vh := env.vh
	heap := vh.Heap()

	myassert.NoError(memory.Store(env.mem, 0, []byte("ok")))
	myassert.NoError(vh.Finish(0, 2))
	myassert.NoError(vh.SmallIntFinishSigned(-1))
	myassert.NoError(vh.SmallIntFinishUnsigned(0))
	myassert.Equal([][]byte{[]byte("ok"), {0xff}, {}}, vh.Context().ReturnData())

	myassert.NoError(vh.DeleteFromReturnData(5))
	myassert.NoError(vh.DeleteFromReturnData(0))
	myassert.Len(vh.Context().ReturnData(), 2)

	topics := heap.NewBuffer(nil)
	heap.SetBufferList(topics, [][]byte{[]byte("transfer"), []byte("to")})
	data := heap.NewBuffer([]byte("payload"))
	myassert.NoError(vh.ManagedWriteLog(topics, data))
	logs := vh.Context().Logs()
	require.Len(t, logs, 1)
	myassert.Equal("run", logs[0].Function)
	myassert.Equal([]byte("payload"), logs[0].Data)
	myassert.Len(logs[0].Topics, 2)

	msg := heap.NewBuffer([]byte("boom"))
	err := vh.ManagedSignalError(msg)
	myassert.True(vmerr.IsUser(err))
	myassert.Equal([]byte("boom"), vmerr.From(err).Message)
}

func TestSmallIntArguments(t *testing.T) {
	myassert := assert.New(t)
	vh := newTestEnv(&vmcontext.CallInput{Arguments: [][]byte{
		{0xff},
		{0x01, 0, 0, 0, 0, 0, 0, 0, 0},
	}}).vh

	u, err := vh.SmallIntGetUnsignedArgument(0)
	myassert.NoError(err)
	myassert.Equal(int64(255), u)
	s, err := vh.SmallIntGetSignedArgument(0)
	myassert.NoError(err)
	myassert.Equal(int64(-1), s)

	_, err = vh.SmallIntGetUnsignedArgument(1)
	myassert.True(vmerr.IsUser(err))
	_, err = vh.SmallIntGetUnsignedArgument(2)
	myassert.True(vmerr.IsUser(err))
}

func TestRandomIsDeterministic(t *testing.T) {
	myassert := assert.New(t)
	draw := func() []byte {
		vh := newTestEnv(&vmcontext.CallInput{TxHash: []byte("tx")}).vh
		h, _ := vh.MBufferNew()
		_, err := vh.MBufferSetRandom(h, 48)
		myassert.NoError(err)
		b, _ := vh.Heap().Buffer(h)
		return b
	}
	first := draw()
	myassert.Len(first, 48)
	myassert.Equal(first, draw())

	vh := newTestEnv(&vmcontext.CallInput{}).vh
	h, _ := vh.MBufferNew()
	_, err := vh.MBufferSetRandom(h, -1)
	myassert.True(vmerr.IsUser(err))
}

func TestAsyncCalls(t *testing.T) {
	myassert := assert.New(t)
	vh := newTestEnv(&vmcontext.CallInput{}).vh
	heap := vh.Heap()

	dest := heap.NewBuffer(testAddress(2).Bytes())
	value := heap.NewBigInt(big.NewInt(5))
	fn := heap.NewBuffer([]byte("ping"))
	args := heap.NewBuffer(nil)
	heap.SetBufferList(args, [][]byte{[]byte("x")})

	myassert.NoError(vh.ManagedAsyncCall(dest, value, fn, args))

	empty := heap.NewBuffer(nil)
	_, err := vh.ManagedCreateAsyncCall(dest, value, empty, args, 0, 0, 0, 0, 1000, 100, empty)
	myassert.Error(err)

	env := vh.Context()
	before := env.Gas.Left()
	myassert.NoError(memory.Store(vh.mem, 0, []byte("onOkonErr")))
	closure := heap.NewBuffer([]byte("c"))
	_, err = vh.ManagedCreateAsyncCall(dest, value, fn, args, 0, 4, 4, 5, 1000, 100, closure)
	myassert.NoError(err)
	myassert.True(before-env.Gas.Left() >= 1100)

	pending := env.PendingActions()
	require.Len(t, pending, 2)
	myassert.Equal("callBack", pending[0].SuccessCallback)
	myassert.Equal("onOk", pending[1].SuccessCallback)
	myassert.Equal("onErr", pending[1].ErrorCallback)
	myassert.Equal([]byte("c"), pending[1].CallbackClosure)
	myassert.Equal(int64(5), pending[1].Value.Int64())
}

func TestExecuteOnDest(t *testing.T) {
	myassert := assert.New(t)
	env := newTestEnv(&vmcontext.CallInput{Caller: testAddress(9)})
	vh := env.vh
	heap := vh.Heap()
	env.host.result = [][]byte{[]byte("r1"), []byte("r2")}

	dest := heap.NewBuffer(testAddress(2).Bytes())
	value := heap.NewBigInt(big.NewInt(0))
	fn := heap.NewBuffer([]byte("get"))
	args := heap.NewBuffer(nil)
	result := heap.NewBuffer(nil)

	rc, err := vh.ManagedExecuteOnDestContext(5000, dest, value, fn, args, result)
	myassert.NoError(err)
	myassert.Equal(int32(0), rc)
	items, _ := heap.BufferList(result)
	myassert.Equal(env.host.result, items)

	require.Len(t, env.host.calls, 1)
	in := env.host.calls[0]
	myassert.Equal(vmcontext.ExecuteOnDestContext, in.CallType)
	myassert.Equal(testAddress(1), in.Caller)
	myassert.Equal(testAddress(9), in.OriginalCaller)
	myassert.Equal(uint64(5000), in.GasProvided)

	_, err = vh.ManagedExecuteReadOnly(-1, dest, fn, args, result)
	myassert.NoError(err)
	myassert.True(env.host.calls[1].ReadOnly)
	myassert.Empty(vh.Context().PendingActions())

	env.host.err = vmerr.User("child failed")
	_, err = vh.ManagedExecuteOnDestContext(5000, dest, value, fn, args, result)
	myassert.True(vmerr.IsUser(err))
}
