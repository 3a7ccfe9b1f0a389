package hooks

import (
	"reflect"
	"strings"

	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/pkg/errors"
)

var (
	errorType = reflect.TypeOf((*error)(nil)).Elem()
	int32Type = reflect.TypeOf(int32(0))
	int64Type = reflect.TypeOf(int64(0))

	// hook name -> method of *VMHooks serving it
	methods = make(map[string]reflect.Method)
)

func init() {
	t := reflect.TypeOf((*VMHooks)(nil))
	for _, h := range Table {
		if h.Unavailable {
			continue
		}
		if m, ok := t.MethodByName(MethodName(h.Name)); ok {
			methods[h.Name] = m
		}
	}
}

// MethodName is the Go method serving the hook name.
func MethodName(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func valueType(t reflect.Type) (ValueType, bool) {
	switch t {
	case int32Type:
		return I32, true
	case int64Type:
		return I64, true
	}
	return None, false
}

// checkSignature reports whether m, a method expression with the receiver as
// first parameter, has the shape h declares.
func checkSignature(h Hook, m reflect.Method) error {
	ft := m.Type
	if ft.NumIn()-1 != len(h.Params) {
		return errors.Errorf("%s: %d params, want %d", h.Name, ft.NumIn()-1, len(h.Params))
	}
	for i, p := range h.Params {
		vt, ok := valueType(ft.In(i + 1))
		if !ok || vt != p {
			return errors.Errorf("%s: param %d is %s, want %s", h.Name, i, ft.In(i+1), p)
		}
	}
	want := 1
	if h.Result != None {
		want = 2
	}
	if ft.NumOut() != want || ft.Out(ft.NumOut()-1) != errorType {
		return errors.Errorf("%s: bad results", h.Name)
	}
	if h.Result != None {
		if vt, ok := valueType(ft.Out(0)); !ok || vt != h.Result {
			return errors.Errorf("%s: result is %s, want %s", h.Name, ft.Out(0), h.Result)
		}
	}
	return nil
}

// Method returns the bound method serving an available hook. Unavailable
// hooks and hooks without a method have none.
func (vh *VMHooks) Method(name string) (reflect.Value, bool) {
	m, ok := methods[name]
	if !ok {
		return reflect.Value{}, false
	}
	return reflect.ValueOf(vh).Method(m.Index), true
}

// Dispatch invokes hook id with raw wasm arguments and returns its raw result.
// I32 arguments are taken from the low 32 bits.
func (vh *VMHooks) Dispatch(id int, args []uint64) (uint64, error) {
	if id < 0 || id >= len(Table) {
		return 0, vmerr.Failed(vmerr.FunctionNotFound, "no such hook")
	}
	return vh.call(Table[id], args)
}

// DispatchByName is Dispatch keyed by the import name.
func (vh *VMHooks) DispatchByName(name string, args []uint64) (uint64, error) {
	h, ok := Lookup(name)
	if !ok {
		return 0, vmerr.Failed(vmerr.FunctionNotFound, "no such hook: "+name)
	}
	return vh.call(h, args)
}

func (vh *VMHooks) call(h Hook, args []uint64) (uint64, error) {
	fn, ok := vh.Method(h.Name)
	if !ok {
		return 0, vmerr.Unavailable(h.Name)
	}
	if len(args) != len(h.Params) {
		return 0, vmerr.Failed(vmerr.FunctionWrongSignature, h.Name+": wrong argument count")
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if h.Params[i] == I32 {
			in[i] = reflect.ValueOf(int32(uint32(a)))
		} else {
			in[i] = reflect.ValueOf(int64(a))
		}
	}
	out := fn.Call(in)
	if err, _ := out[len(out)-1].Interface().(error); err != nil {
		return 0, err
	}
	if len(out) == 1 {
		return 0, nil
	}
	switch v := out[0].Interface().(type) {
	case int32:
		return uint64(uint32(v)), nil
	case int64:
		return uint64(v), nil
	}
	return 0, nil
}
