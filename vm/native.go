package vm

import (
	"bytes"
	"sync"

	"github.com/coschain/vmhooks/vm/hooks"
	"github.com/coschain/vmhooks/vm/memory"
	"github.com/coschain/vmhooks/vm/vmerr"
)

// NativeCodePrefix marks code served by a NativeExecutor. The rest of the code
// is the name the contract was registered under.
var NativeCodePrefix = []byte("native:")

// NativeEndpoint is a contract endpoint written in Go. It drives the hooks
// exactly as compiled code would.
type NativeEndpoint func(vh *hooks.VMHooks) error

type NativeContract map[string]NativeEndpoint

// NativeExecutor runs Go contracts over a slice backed linear memory.
type NativeExecutor struct {
	contracts map[string]NativeContract
	pages     int
	lock      sync.RWMutex
}

func NewNativeExecutor() *NativeExecutor {
	return &NativeExecutor{contracts: make(map[string]NativeContract), pages: 1}
}

// Register adds a contract and returns the code to deploy for it.
func (e *NativeExecutor) Register(name string, contract NativeContract) []byte {
	e.lock.Lock()
	defer e.lock.Unlock()
	e.contracts[name] = contract
	return append(append([]byte{}, NativeCodePrefix...), name...)
}

func (e *NativeExecutor) Instantiate(code []byte, vh *hooks.VMHooks) (Instance, error) {
	if !bytes.HasPrefix(code, NativeCodePrefix) {
		return nil, vmerr.Failed(vmerr.ContractInvalid, "not native code")
	}
	e.lock.RLock()
	contract, ok := e.contracts[string(code[len(NativeCodePrefix):])]
	e.lock.RUnlock()
	if !ok {
		return nil, vmerr.Failed(vmerr.ContractInvalid, "unknown native contract "+string(code))
	}
	vh.SetMemory(memory.NewSliceMemory(e.pages))
	return &nativeInstance{contract: contract, vh: vh}, nil
}

type nativeInstance struct {
	contract NativeContract
	vh       *hooks.VMHooks
}

func (i *nativeInstance) HasFunction(name string) bool {
	_, ok := i.contract[name]
	return ok
}

func (i *nativeInstance) Call(name string) error {
	fn, ok := i.contract[name]
	if !ok {
		return vmerr.Failed(vmerr.FunctionNotFound, "function not found: "+name)
	}
	return fn(i.vh)
}

func (i *nativeInstance) Release() {
	i.vh.SetMemory(nil)
}
