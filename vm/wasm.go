package vm

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"

	vmcache "github.com/coschain/vmhooks/vm/cache"
	"github.com/coschain/vmhooks/vm/hooks"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/go-interpreter/wagon/exec"
	"github.com/go-interpreter/wagon/wasm"
	"github.com/sirupsen/logrus"
)

// HostModuleName is the import module every hook lives in.
const HostModuleName = "env"

var (
	procType  = reflect.TypeOf((*exec.Process)(nil))
	int32Type = reflect.TypeOf(int32(0))
	int64Type = reflect.TypeOf(int64(0))
)

// hostError carries a hook failure out of the interpreter as a panic.
type hostError struct {
	err error
}

// hookBinding points the host functions of one compiled module at the hooks
// of the frame currently running it.
type hookBinding struct {
	vh *hooks.VMHooks
}

type compiledModule struct {
	key     string
	module  *wasm.Module
	binding *hookBinding
	exports map[string]uint32
}

// hostModule collects native functions the way wagon resolves imports.
type hostModule struct {
	names []string
	sigs  []wasm.FunctionSig
	funcs []wasm.Function
}

// Register adds a host function. Its first parameter must be *exec.Process.
func (m *hostModule) Register(funcName string, function reflect.Value) error {
	rfunc := function.Type()
	if rfunc.Kind() != reflect.Func {
		return fmt.Errorf("%s is not a function", funcName)
	}
	// func should be func(proc *exec.Process, ... int32|int64)
	if rfunc.NumIn() < 1 || rfunc.In(0) != procType {
		return fmt.Errorf("function signature of %s is wrong", funcName)
	}
	funcSig, err := exactFuncSig(rfunc)
	if err != nil {
		return fmt.Errorf("%s: %v", funcName, err)
	}
	m.names = append(m.names, funcName)
	m.sigs = append(m.sigs, funcSig)
	m.funcs = append(m.funcs, wasm.Function{Sig: &funcSig, Host: function, Body: &wasm.FunctionBody{}})
	return nil
}

func (m *hostModule) module() *wasm.Module {
	mod := wasm.NewModule()
	mod.Types = &wasm.SectionTypes{Entries: m.sigs}
	mod.FunctionIndexSpace = m.funcs
	entries := make(map[string]wasm.ExportEntry)
	for idx, name := range m.names {
		entries[name] = wasm.ExportEntry{
			FieldStr: name,
			Kind:     wasm.ExternalFunction,
			Index:    uint32(idx),
		}
	}
	mod.Export = &wasm.SectionExports{
		Entries: entries,
	}
	return mod
}

func exactFuncSig(p reflect.Type) (wasm.FunctionSig, error) {
	var paramTypes []wasm.ValueType
	var returnTypes []wasm.ValueType
	// step over first params, it is proc
	for i := 1; i < p.NumIn(); i++ {
		switch p.In(i).Kind() {
		case reflect.Int32:
			paramTypes = append(paramTypes, wasm.ValueTypeI32)
		case reflect.Int64:
			paramTypes = append(paramTypes, wasm.ValueTypeI64)
		default:
			return wasm.FunctionSig{}, errors.New("host function arguments should be i32 or i64")
		}
	}
	for i := 0; i < p.NumOut(); i++ {
		switch p.Out(i).Kind() {
		case reflect.Int32:
			returnTypes = append(returnTypes, wasm.ValueTypeI32)
		case reflect.Int64:
			returnTypes = append(returnTypes, wasm.ValueTypeI64)
		default:
			return wasm.FunctionSig{}, errors.New("host function results should be i32 or i64")
		}
	}
	return wasm.FunctionSig{ParamTypes: paramTypes, ReturnTypes: returnTypes}, nil
}

func goType(t hooks.ValueType) reflect.Type {
	if t == hooks.I64 {
		return int64Type
	}
	return int32Type
}

// hostFunc builds the native function serving hook h. Errors leave through a
// hostError panic so the interpreter unwinds.
func (b *hookBinding) hostFunc(h hooks.Hook) reflect.Value {
	in := []reflect.Type{procType}
	for _, p := range h.Params {
		in = append(in, goType(p))
	}
	var out []reflect.Type
	if h.Result != hooks.None {
		out = append(out, goType(h.Result))
	}
	id := h.ID
	return reflect.MakeFunc(reflect.FuncOf(in, out, false), func(args []reflect.Value) []reflect.Value {
		raw := make([]uint64, len(args)-1)
		for i, arg := range args[1:] {
			raw[i] = uint64(arg.Int())
		}
		res, err := b.vh.Dispatch(id, raw)
		if err != nil {
			panic(hostError{err: err})
		}
		if len(out) == 0 {
			return nil
		}
		if out[0] == int32Type {
			return []reflect.Value{reflect.ValueOf(int32(uint32(res)))}
		}
		return []reflect.Value{reflect.ValueOf(int64(res))}
	})
}

// vmMemory exposes the linear memory of a running wagon VM.
type vmMemory struct {
	vm *exec.VM
}

func (m *vmMemory) Size() int {
	return len(m.vm.Memory())
}

func (m *vmMemory) WithBytes(ptr, length int32, fn func(data []byte) error) error {
	mem := m.vm.Memory()
	if ptr < 0 || length < 0 || int64(ptr)+int64(length) > int64(len(mem)) {
		return vmerr.MemoryOutOfBounds(ptr, length, len(mem))
	}
	return fn(mem[ptr : ptr+length : ptr+length])
}

func (m *vmMemory) WithBytesMut(ptr, length int32, fn func(data []byte) error) error {
	return m.WithBytes(ptr, length, fn)
}

// WasmExecutor runs WebAssembly contracts on wagon. Compiled modules are kept
// in a ModuleCache keyed by code hash.
type WasmExecutor struct {
	cache *vmcache.ModuleCache
	log   *logrus.Logger
}

func NewWasmExecutor(cacheSize int, logger *logrus.Logger) (*WasmExecutor, error) {
	cache, err := vmcache.NewModuleCache(cacheSize, logger)
	if err != nil {
		return nil, err
	}
	return &WasmExecutor{cache: cache, log: logger}, nil
}

func (e *WasmExecutor) compile(key string, code []byte) (*compiledModule, error) {
	binding := &hookBinding{}
	host := &hostModule{}
	for _, h := range hooks.Table {
		if err := host.Register(h.Name, binding.hostFunc(h)); err != nil {
			return nil, vmerr.Fatalf("host module: %v", err)
		}
	}
	env := host.module()
	module, err := wasm.ReadModule(bytes.NewReader(code), func(name string) (*wasm.Module, error) {
		if name != HostModuleName {
			return nil, fmt.Errorf("unknown import module %s", name)
		}
		return env, nil
	})
	if err != nil {
		return nil, vmerr.Failed(vmerr.ContractInvalid, err.Error())
	}
	exports := make(map[string]uint32)
	if module.Export != nil {
		for name, entry := range module.Export.Entries {
			if entry.Kind == wasm.ExternalFunction {
				exports[name] = entry.Index
			}
		}
	}
	return &compiledModule{key: key, module: module, binding: binding, exports: exports}, nil
}

func (e *WasmExecutor) Instantiate(code []byte, vh *hooks.VMHooks) (Instance, error) {
	key := vmcache.CodeKey(code)
	cm, _ := e.cache.Fetch(key).(*compiledModule)
	if cm == nil {
		var err error
		if cm, err = e.compile(key, code); err != nil {
			return nil, err
		}
		e.log.Debugf("compiled module %s", key)
	}
	vm, err := exec.NewVM(cm.module)
	if err != nil {
		e.cache.Put(key, cm)
		return nil, vmerr.Failed(vmerr.ContractInvalid, err.Error())
	}
	cm.binding.vh = vh
	vh.SetMemory(&vmMemory{vm: vm})
	return &wasmInstance{executor: e, cm: cm, vm: vm, vh: vh}, nil
}

type wasmInstance struct {
	executor *WasmExecutor
	cm       *compiledModule
	vm       *exec.VM
	vh       *hooks.VMHooks
}

func (i *wasmInstance) HasFunction(name string) bool {
	_, ok := i.cm.exports[name]
	return ok
}

func (i *wasmInstance) Call(name string) (err error) {
	idx, ok := i.cm.exports[name]
	if !ok {
		return vmerr.Failed(vmerr.FunctionNotFound, "function not found: "+name)
	}
	defer func() {
		if r := recover(); r != nil {
			if he, ok := r.(hostError); ok {
				err = he.err
				return
			}
			err = vmerr.Fatalf("wasm trap: %v", r)
		}
	}()
	if _, err = i.vm.ExecCode(int64(idx)); err != nil {
		return vmerr.Fatalf("wasm: %v", err)
	}
	return nil
}

func (i *wasmInstance) Release() {
	i.cm.binding.vh = nil
	i.vh.SetMemory(nil)
	i.executor.cache.Put(i.cm.key, i.cm)
}
