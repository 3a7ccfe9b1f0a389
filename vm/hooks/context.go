package hooks

import (
	"math/big"

	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/managed"
	"github.com/coschain/vmhooks/vm/vmerr"
)

func (vh *VMHooks) GetGasLeft() (int64, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	return int64(vh.ctx.Gas.Left()), nil
}

func (vh *VMHooks) blockField(v uint64) (int64, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	return int64(v), nil
}

func (vh *VMHooks) GetBlockTimestamp() (int64, error) {
	return vh.blockField(vh.ctx.Block.Timestamp)
}

func (vh *VMHooks) GetBlockNonce() (int64, error) {
	return vh.blockField(vh.ctx.Block.Nonce)
}

func (vh *VMHooks) GetBlockRound() (int64, error) {
	return vh.blockField(vh.ctx.Block.Round)
}

func (vh *VMHooks) GetBlockEpoch() (int64, error) {
	return vh.blockField(vh.ctx.Block.Epoch)
}

func (vh *VMHooks) GetPrevBlockTimestamp() (int64, error) {
	return vh.blockField(vh.ctx.PrevBlock.Timestamp)
}

func (vh *VMHooks) GetPrevBlockNonce() (int64, error) {
	return vh.blockField(vh.ctx.PrevBlock.Nonce)
}

func (vh *VMHooks) GetPrevBlockRound() (int64, error) {
	return vh.blockField(vh.ctx.PrevBlock.Round)
}

func (vh *VMHooks) GetPrevBlockEpoch() (int64, error) {
	return vh.blockField(vh.ctx.PrevBlock.Epoch)
}

func (vh *VMHooks) setContextBuffer(dst int32, data []byte) error {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(data)); err != nil {
		return err
	}
	vh.heap.SetBuffer(dst, data)
	return nil
}

func (vh *VMHooks) ManagedGetBlockRandomSeed(dst int32) error {
	return vh.setContextBuffer(dst, vh.ctx.Block.RandomSeed)
}

func (vh *VMHooks) ManagedGetPrevBlockRandomSeed(dst int32) error {
	return vh.setContextBuffer(dst, vh.ctx.PrevBlock.RandomSeed)
}

func (vh *VMHooks) ManagedSCAddress(dst int32) error {
	return vh.setContextBuffer(dst, vh.ctx.SCAddress().Bytes())
}

func (vh *VMHooks) ManagedCaller(dst int32) error {
	return vh.setContextBuffer(dst, vh.ctx.Input.Caller.Bytes())
}

func (vh *VMHooks) ManagedOwnerAddress(dst int32) error {
	owner, err := vh.state.Owner(vh.ctx.SCAddress())
	if err != nil {
		return err
	}
	return vh.setContextBuffer(dst, owner.Bytes())
}

// ManagedGetOriginalTxHash falls back to the current hash outside async chains.
func (vh *VMHooks) ManagedGetOriginalTxHash(dst int32) error {
	hash := vh.ctx.Input.OriginalTxHash
	if len(hash) == 0 {
		hash = vh.ctx.Input.TxHash
	}
	return vh.setContextBuffer(dst, hash)
}

func (vh *VMHooks) ManagedGetCallbackClosure(dst int32) error {
	return vh.setContextBuffer(dst, vh.ctx.Input.CallbackClosure)
}

func (vh *VMHooks) GetNumArguments() (int32, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	return vh.ctx.NumArguments(), nil
}

func (vh *VMHooks) CheckNoPayment() error {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return err
	}
	return vh.ctx.CheckNotPayable()
}

func (vh *VMHooks) GetNumESDTTransfers() (int32, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	return int32(len(vh.ctx.Input.ESDTTransfers)), nil
}

func (vh *VMHooks) ManagedGetMultiESDTCallValue(dst int32) error {
	return vh.setContextBuffer(dst, vmcontext.EncodeTransfers(vh.ctx.Input.ESDTTransfers))
}

func (vh *VMHooks) ManagedGetBackTransfers(esdtDst int32, egldDst int32) error {
	bt := vh.ctx.BackTransfers()
	if err := vh.setContextBuffer(esdtDst, vmcontext.EncodeTransfers(bt.ESDT)); err != nil {
		return err
	}
	egld := bt.EGLD
	if egld == nil {
		egld = new(big.Int)
	}
	vh.heap.SetBigInt(egldDst, egld)
	return nil
}

func (vh *VMHooks) GetShardOfAddress(addressPtr int32) (int32, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	addr, err := vh.loadAddress(addressPtr)
	if err != nil {
		return 0, err
	}
	return int32(addr.ShardOf()), nil
}

func (vh *VMHooks) IsSmartContract(addressPtr int32) (int32, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	addr, err := vh.loadAddress(addressPtr)
	if err != nil {
		return 0, err
	}
	return boolToInt32(addr.IsSmartContract()), nil
}

func (vh *VMHooks) Finish(ptr int32, length int32) error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	data, err := vh.load(ptr, length)
	if err != nil {
		return err
	}
	vh.ctx.Finish(data)
	return nil
}

func (vh *VMHooks) CleanReturnData() error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	vh.ctx.CleanReturnData()
	return nil
}

func (vh *VMHooks) DeleteFromReturnData(index int32) error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	vh.ctx.DeleteFromReturnData(index)
	return nil
}

func (vh *VMHooks) SignalError(ptr int32, length int32) error {
	if err := vh.useGas(vh.gas.SignalError); err != nil {
		return err
	}
	msg, err := vh.load(ptr, length)
	if err != nil {
		return err
	}
	return vmerr.UserBytes(msg)
}

func (vh *VMHooks) ManagedSignalError(h int32) error {
	if err := vh.useGas(vh.gas.SignalError); err != nil {
		return err
	}
	msg, err := vh.buffer(h)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(msg)); err != nil {
		return err
	}
	return vmerr.UserBytes(msg)
}

func (vh *VMHooks) ManagedWriteLog(topicsHandle int32, dataHandle int32) error {
	if err := vh.useGas(vh.gas.Log); err != nil {
		return err
	}
	topics, err := vh.bufferList(topicsHandle)
	if err != nil {
		return err
	}
	data, err := vh.buffer(dataHandle)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(data)); err != nil {
		return err
	}
	vh.ctx.WriteLog(topics, data)
	return nil
}

func (vh *VMHooks) SmallIntGetUnsignedArgument(id int32) (int64, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	arg, err := vh.ctx.Argument(id)
	if err != nil {
		return 0, err
	}
	x := new(big.Int).SetBytes(arg)
	if !x.IsUint64() {
		return 0, vmerr.User("argument out of range")
	}
	return int64(x.Uint64()), nil
}

func (vh *VMHooks) SmallIntGetSignedArgument(id int32) (int64, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	arg, err := vh.ctx.Argument(id)
	if err != nil {
		return 0, err
	}
	x := managed.SignedFromBytes(arg)
	if !x.IsInt64() {
		return 0, vmerr.User("argument out of range")
	}
	return x.Int64(), nil
}

func (vh *VMHooks) SmallIntFinishUnsigned(value int64) error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	vh.ctx.Finish(new(big.Int).SetUint64(uint64(value)).Bytes())
	return nil
}

func (vh *VMHooks) SmallIntFinishSigned(value int64) error {
	if err := vh.useGas(vh.gas.Finish); err != nil {
		return err
	}
	vh.ctx.Finish(managed.SignedToBytes(big.NewInt(value)))
	return nil
}
