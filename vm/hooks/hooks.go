// Package hooks is the flat ABI a contract links against. Every served import
// of the env module is a method of VMHooks named after the import with its
// first letter upper-cased; Table fixes the numbering.
package hooks

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	"github.com/coschain/vmhooks/config"
	"github.com/coschain/vmhooks/vm/builtin"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/managed"
	"github.com/coschain/vmhooks/vm/memory"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/sirupsen/logrus"
)

// Host runs the calls a contract makes synchronously.
type Host interface {
	// ExecuteOnDest runs a child call in a nested frame and folds its outputs
	// into parent on success. It returns the child's return data.
	ExecuteOnDest(parent *vmcontext.Context, input *vmcontext.CallInput) ([][]byte, error)
	// Deploy creates a contract owned by the parent's contract and runs its init.
	Deploy(parent *vmcontext.Context, code, metadata []byte, value *big.Int, args [][]byte, gas uint64) (common.Address, [][]byte, error)
}

// VMHooks serves the hooks of one call frame.
type VMHooks struct {
	heap     *managed.Heap
	ctx      *vmcontext.Context
	state    *world.State
	mem      memory.Memory
	host     Host
	builtins *builtin.Registry

	gas            config.GasSchedule
	reservedPrefix []byte
	log            *logrus.Entry
}

func New(heap *managed.Heap, ctx *vmcontext.Context, state *world.State, host Host, builtins *builtin.Registry, cfg *config.VMConfig) *VMHooks {
	prefix := cfg.ReservedKeyPrefix
	if prefix == "" {
		prefix = constants.ReservedStorageKeyPrefix
	}
	return &VMHooks{
		heap:           heap,
		ctx:            ctx,
		state:          state,
		host:           host,
		builtins:       builtins,
		gas:            cfg.Gas,
		reservedPrefix: []byte(prefix),
		log:            ctx.Logger,
	}
}

// SetMemory binds the guest memory hooks read and write. Executors call it
// once the instance exists.
func (vh *VMHooks) SetMemory(mem memory.Memory) {
	vh.mem = mem
}

func (vh *VMHooks) Heap() *managed.Heap {
	return vh.heap
}

func (vh *VMHooks) Context() *vmcontext.Context {
	return vh.ctx
}

func (vh *VMHooks) useGas(cost uint64) error {
	return vh.ctx.Gas.Use(cost)
}

func (vh *VMHooks) useGasForBytes(n int) error {
	return vh.ctx.Gas.Use(vh.gas.DataCopyPerByte * uint64(n))
}

func (vh *VMHooks) memory() (memory.Memory, error) {
	if vh.mem == nil {
		return nil, vmerr.Fatalf("no guest memory bound")
	}
	return vh.mem, nil
}

// load copies guest bytes, paying for each byte.
func (vh *VMHooks) load(ptr, length int32) ([]byte, error) {
	mem, err := vh.memory()
	if err != nil {
		return nil, err
	}
	if length > 0 {
		if err := vh.useGasForBytes(int(length)); err != nil {
			return nil, err
		}
	}
	return memory.Load(mem, ptr, length)
}

func (vh *VMHooks) store(ptr int32, data []byte) error {
	mem, err := vh.memory()
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(data)); err != nil {
		return err
	}
	return memory.Store(mem, ptr, data)
}

func (vh *VMHooks) loadAddress(ptr int32) (common.Address, error) {
	b, err := vh.load(ptr, constants.AddressLength)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}

func (vh *VMHooks) buffer(h int32) ([]byte, error) {
	return vh.heap.Buffer(h)
}

func (vh *VMHooks) bufferAddress(h int32) (common.Address, error) {
	b, err := vh.heap.Buffer(h)
	if err != nil {
		return common.Address{}, err
	}
	if len(b) != constants.AddressLength {
		return common.Address{}, vmerr.Userf("invalid address length %d", len(b))
	}
	return common.BytesToAddress(b), nil
}

// setBufferList writes items as a managed vector, paying for the copied bytes.
func (vh *VMHooks) setBufferList(h int32, items [][]byte) error {
	n := 0
	for _, item := range items {
		n += len(item)
	}
	if err := vh.useGasForBytes(n); err != nil {
		return err
	}
	vh.heap.SetBufferList(h, items)
	return nil
}

func (vh *VMHooks) bufferList(h int32) ([][]byte, error) {
	items, err := vh.heap.BufferList(h)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, item := range items {
		n += len(item)
	}
	return items, vh.useGasForBytes(n)
}

func boolToInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
