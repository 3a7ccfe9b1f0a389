package hooks

import (
	"bytes"

	"github.com/coschain/vmhooks/vm/vmerr"
)

func (vh *VMHooks) storageStore(key, value []byte) error {
	if vh.ctx.Input.ReadOnly {
		return vmerr.Fatal(vmerr.ExecutionFailed, "cannot write to storage in read only mode")
	}
	if bytes.HasPrefix(key, vh.reservedPrefix) {
		return vmerr.User("cannot write to storage under reserved key")
	}
	if err := vh.useGas(vh.gas.StorageStore); err != nil {
		return err
	}
	if err := vh.useGas(vh.gas.StorePerByte * uint64(len(value))); err != nil {
		return err
	}
	return vh.state.SetStorage(vh.ctx.SCAddress(), key, value)
}

func (vh *VMHooks) MBufferStorageStore(keyHandle int32, srcHandle int32) (int32, error) {
	key, err := vh.buffer(keyHandle)
	if err != nil {
		return 0, err
	}
	value, err := vh.buffer(srcHandle)
	if err != nil {
		return 0, err
	}
	return 0, vh.storageStore(key, value)
}

func (vh *VMHooks) MBufferStorageLoad(keyHandle int32, dst int32) (int32, error) {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return 0, err
	}
	key, err := vh.buffer(keyHandle)
	if err != nil {
		return 0, err
	}
	value, err := vh.state.Storage(vh.ctx.SCAddress(), key)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(value)); err != nil {
		return 0, err
	}
	vh.heap.SetBuffer(dst, value)
	return 0, nil
}

// MBufferStorageLoadFromAddress reads another account's storage as committed
// before the transaction. Reading the own address goes through staging.
func (vh *VMHooks) MBufferStorageLoadFromAddress(addressHandle int32, keyHandle int32, dst int32) error {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return err
	}
	addr, err := vh.bufferAddress(addressHandle)
	if err != nil {
		return err
	}
	key, err := vh.buffer(keyHandle)
	if err != nil {
		return err
	}
	var value []byte
	if addr == vh.ctx.SCAddress() {
		value, err = vh.state.Storage(addr, key)
	} else {
		value, err = vh.state.CommittedStorage(addr, key)
	}
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(value)); err != nil {
		return err
	}
	vh.heap.SetBuffer(dst, value)
	return nil
}
