package hooks

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
)

// callData is the destination, value, function and arguments every
// cross-contract hook reads from its handles.
type callData struct {
	dest     common.Address
	value    *big.Int
	function string
	args     [][]byte
}

func (vh *VMHooks) readCallData(destHandle, functionHandle, argsHandle int32) (*callData, error) {
	cd := &callData{value: new(big.Int)}
	var err error
	if cd.dest, err = vh.bufferAddress(destHandle); err != nil {
		return nil, err
	}
	name, err := vh.buffer(functionHandle)
	if err != nil {
		return nil, err
	}
	cd.function = string(name)
	if cd.args, err = vh.bufferList(argsHandle); err != nil {
		return nil, err
	}
	return cd, nil
}

func (vh *VMHooks) callValue(valueHandle int32) (*big.Int, error) {
	value, err := vh.heap.BigInt(valueHandle)
	if err != nil {
		return nil, err
	}
	if value.Sign() < 0 {
		return nil, vmerr.User("negative value")
	}
	return new(big.Int).Set(value), nil
}

func (vh *VMHooks) readValueCallData(destHandle, valueHandle, functionHandle, argsHandle int32) (*callData, error) {
	cd, err := vh.readCallData(destHandle, functionHandle, argsHandle)
	if err != nil {
		return nil, err
	}
	if cd.value, err = vh.callValue(valueHandle); err != nil {
		return nil, err
	}
	return cd, nil
}

func (vh *VMHooks) checkWritable(op string) error {
	if vh.ctx.Input.ReadOnly {
		return vmerr.Fatal(vmerr.ExecutionFailed, op+" not allowed in read only mode")
	}
	return nil
}

// childGas is what a synchronous child may spend: the requested amount capped
// by what is left.
func (vh *VMHooks) childGas(requested int64) uint64 {
	left := vh.ctx.Gas.Left()
	if requested < 0 || uint64(requested) > left {
		return left
	}
	return uint64(requested)
}

func (vh *VMHooks) childInput(callType vmcontext.CallType, dest common.Address, function string, args [][]byte, value *big.Int, gas uint64) *vmcontext.CallInput {
	in := vh.ctx.Input
	original := in.OriginalCaller
	if original.IsZero() {
		original = in.Caller
	}
	return &vmcontext.CallInput{
		CallType:       callType,
		Caller:         vh.ctx.SCAddress(),
		OriginalCaller: original,
		Recipient:      dest,
		Function:       function,
		Arguments:      args,
		EGLDValue:      value,
		GasProvided:    gas,
		TxHash:         in.TxHash,
		OriginalTxHash: in.OriginalTxHash,
		ReadOnly:       in.ReadOnly || callType == vmcontext.ExecuteReadOnly,
	}
}

// ManagedAsyncCall enqueues a call whose outcome is delivered to the callBack
// endpoint once the running call has finished successfully.
func (vh *VMHooks) ManagedAsyncCall(destHandle, valueHandle, functionHandle, argsHandle int32) error {
	if err := vh.useGas(vh.gas.AsyncCall); err != nil {
		return err
	}
	if err := vh.checkWritable("async call"); err != nil {
		return err
	}
	cd, err := vh.readValueCallData(destHandle, valueHandle, functionHandle, argsHandle)
	if err != nil {
		return err
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:            vmcontext.ActionAsync,
		Dest:            cd.dest,
		Value:           cd.value,
		Function:        cd.function,
		Args:            cd.args,
		SuccessCallback: constants.CallbackFunctionName,
		ErrorCallback:   constants.CallbackFunctionName,
	})
	vh.log.Debugf("async call to %s::%s enqueued", cd.dest.Hex(), cd.function)
	return nil
}

// ManagedCreateAsyncCall enqueues an async call with explicit callbacks. The
// gas of the call and of its callback is reserved right away.
func (vh *VMHooks) ManagedCreateAsyncCall(destHandle, valueHandle, functionHandle, argsHandle int32,
	successPtr, successLen, errorPtr, errorLen int32, gas, extraGasForCallback int64, closureHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.AsyncCall); err != nil {
		return 0, err
	}
	if err := vh.checkWritable("async call"); err != nil {
		return 0, err
	}
	cd, err := vh.readValueCallData(destHandle, valueHandle, functionHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	if cd.function == "" {
		return 0, vmerr.Failed(vmerr.ExecutionFailed, "async call without function name")
	}
	success, err := vh.load(successPtr, successLen)
	if err != nil {
		return 0, err
	}
	failure, err := vh.load(errorPtr, errorLen)
	if err != nil {
		return 0, err
	}
	closure, err := vh.buffer(closureHandle)
	if err != nil {
		return 0, err
	}
	if gas < 0 || extraGasForCallback < 0 {
		return 0, vmerr.User("negative gas")
	}
	if err := vh.useGas(uint64(gas) + uint64(extraGasForCallback)); err != nil {
		return 0, err
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:            vmcontext.ActionAsync,
		Dest:            cd.dest,
		Value:           cd.value,
		Function:        cd.function,
		Args:            cd.args,
		Gas:             uint64(gas),
		ExtraGas:        uint64(extraGasForCallback),
		SuccessCallback: string(success),
		ErrorCallback:   string(failure),
		CallbackClosure: common.CopyBytes(closure),
	})
	return 0, nil
}

func (vh *VMHooks) ManagedTransferValueExecute(destHandle, valueHandle int32, gasLimit int64, functionHandle, argsHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.TransferValue); err != nil {
		return 0, err
	}
	if err := vh.checkWritable("transfer"); err != nil {
		return 0, err
	}
	cd, err := vh.readValueCallData(destHandle, valueHandle, functionHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:     vmcontext.ActionTransferExecute,
		Dest:     cd.dest,
		Value:    cd.value,
		Function: cd.function,
		Args:     cd.args,
		Gas:      vh.childGas(gasLimit),
	})
	return 0, nil
}

func (vh *VMHooks) ManagedMultiTransferESDTNFTExecute(destHandle, transfersHandle int32, gasLimit int64, functionHandle, argsHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.TransferValue); err != nil {
		return 0, err
	}
	if err := vh.checkWritable("transfer"); err != nil {
		return 0, err
	}
	cd, err := vh.readCallData(destHandle, functionHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	raw, err := vh.buffer(transfersHandle)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(raw)); err != nil {
		return 0, err
	}
	transfers, err := vmcontext.DecodeTransfers(raw)
	if err != nil {
		return 0, err
	}
	if len(transfers) == 0 {
		return 0, vmerr.User("no tokens to transfer")
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:      vmcontext.ActionMultiTransfer,
		Dest:      cd.dest,
		Value:     new(big.Int),
		Transfers: transfers,
		Function:  cd.function,
		Args:      cd.args,
		Gas:       vh.childGas(gasLimit),
	})
	return 0, nil
}

func (vh *VMHooks) executeSync(callType vmcontext.CallType, kind vmcontext.ActionKind, gas int64, cd *callData, resultHandle int32) (int32, error) {
	input := vh.childInput(callType, cd.dest, cd.function, cd.args, cd.value, vh.childGas(gas))
	result, err := vh.host.ExecuteOnDest(vh.ctx, input)
	if err != nil {
		return 0, err
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:     kind,
		Status:   vmcontext.ActionCompleted,
		Dest:     cd.dest,
		Value:    cd.value,
		Function: cd.function,
		Args:     cd.args,
		Gas:      input.GasProvided,
	})
	return 0, vh.setBufferList(resultHandle, result)
}

// ManagedExecuteOnDestContext runs the call now. A failing child fails the
// running call with the child's error.
func (vh *VMHooks) ManagedExecuteOnDestContext(gas int64, addressHandle, valueHandle, functionHandle, argsHandle, resultHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.ExecuteOnDest); err != nil {
		return 0, err
	}
	cd, err := vh.readValueCallData(addressHandle, valueHandle, functionHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	if cd.value.Sign() > 0 {
		if err := vh.checkWritable("transfer"); err != nil {
			return 0, err
		}
	}
	return vh.executeSync(vmcontext.ExecuteOnDestContext, vmcontext.ActionExecuteOnDest, gas, cd, resultHandle)
}

// ManagedExecuteReadOnly runs the call now, any storage write of the child is fatal.
func (vh *VMHooks) ManagedExecuteReadOnly(gas int64, addressHandle, functionHandle, argsHandle, resultHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.ExecuteOnDest); err != nil {
		return 0, err
	}
	cd, err := vh.readCallData(addressHandle, functionHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	return vh.executeSync(vmcontext.ExecuteReadOnly, vmcontext.ActionExecuteReadOnly, gas, cd, resultHandle)
}

func (vh *VMHooks) deploy(kind vmcontext.ActionKind, gas int64, value *big.Int, code, metadata []byte, source common.Address,
	args [][]byte, resultAddressHandle, resultHandle int32) (int32, error) {
	addr, result, err := vh.host.Deploy(vh.ctx, code, metadata, value, args, vh.childGas(gas))
	if err != nil {
		return 0, err
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:         kind,
		Status:       vmcontext.ActionCompleted,
		Dest:         addr,
		Source:       source,
		Value:        value,
		Function:     constants.InitFunctionName,
		Args:         args,
		Code:         code,
		CodeMetadata: common.CopyBytes(metadata),
	})
	vh.heap.SetBuffer(resultAddressHandle, addr.Bytes())
	return 0, vh.setBufferList(resultHandle, result)
}

func (vh *VMHooks) readDeployData(valueHandle, metadataHandle, argsHandle int32) (*big.Int, []byte, [][]byte, error) {
	if err := vh.checkWritable("deploy"); err != nil {
		return nil, nil, nil, err
	}
	value, err := vh.callValue(valueHandle)
	if err != nil {
		return nil, nil, nil, err
	}
	metadata, err := vh.buffer(metadataHandle)
	if err != nil {
		return nil, nil, nil, err
	}
	args, err := vh.bufferList(argsHandle)
	if err != nil {
		return nil, nil, nil, err
	}
	return value, metadata, args, nil
}

func (vh *VMHooks) sourceCode(sourceHandle int32) (common.Address, []byte, error) {
	source, err := vh.bufferAddress(sourceHandle)
	if err != nil {
		return source, nil, err
	}
	code, err := vh.state.Code(source)
	if err != nil {
		return source, nil, err
	}
	if len(code) == 0 {
		return source, nil, vmerr.Failed(vmerr.ContractNotFound, "source contract has no code")
	}
	return source, code, nil
}

func (vh *VMHooks) ManagedCreateContract(gas int64, valueHandle, codeHandle, metadataHandle, argsHandle, resultAddressHandle, resultHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.CreateContract); err != nil {
		return 0, err
	}
	value, metadata, args, err := vh.readDeployData(valueHandle, metadataHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	code, err := vh.buffer(codeHandle)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(code)); err != nil {
		return 0, err
	}
	return vh.deploy(vmcontext.ActionDeploy, gas, value, common.CopyBytes(code), metadata, common.ZeroAddress, args, resultAddressHandle, resultHandle)
}

func (vh *VMHooks) ManagedDeployFromSourceContract(gas int64, valueHandle, sourceHandle, metadataHandle, argsHandle, resultAddressHandle, resultHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.CreateContract); err != nil {
		return 0, err
	}
	value, metadata, args, err := vh.readDeployData(valueHandle, metadataHandle, argsHandle)
	if err != nil {
		return 0, err
	}
	source, code, err := vh.sourceCode(sourceHandle)
	if err != nil {
		return 0, err
	}
	return vh.deploy(vmcontext.ActionDeployFromSource, gas, value, code, metadata, source, args, resultAddressHandle, resultHandle)
}

func (vh *VMHooks) upgrade(kind vmcontext.ActionKind, destHandle int32, gas int64, value *big.Int, code, metadata []byte, source common.Address, args [][]byte) error {
	dest, err := vh.bufferAddress(destHandle)
	if err != nil {
		return err
	}
	vh.ctx.AddAction(&vmcontext.Action{
		Kind:         kind,
		Dest:         dest,
		Source:       source,
		Value:        value,
		Function:     constants.UpgradeFunctionName,
		Args:         args,
		Gas:          vh.childGas(gas),
		Code:         code,
		CodeMetadata: common.CopyBytes(metadata),
	})
	return nil
}

// ManagedUpgradeContract enqueues an upgrade of dest, run after the current
// call succeeds. The result handle is never written.
func (vh *VMHooks) ManagedUpgradeContract(destHandle int32, gas int64, valueHandle, codeHandle, metadataHandle, argsHandle, resultHandle int32) error {
	if err := vh.useGas(vh.gas.CreateContract); err != nil {
		return err
	}
	value, metadata, args, err := vh.readDeployData(valueHandle, metadataHandle, argsHandle)
	if err != nil {
		return err
	}
	code, err := vh.buffer(codeHandle)
	if err != nil {
		return err
	}
	if err := vh.useGasForBytes(len(code)); err != nil {
		return err
	}
	return vh.upgrade(vmcontext.ActionUpgrade, destHandle, gas, value, common.CopyBytes(code), metadata, common.ZeroAddress, args)
}

func (vh *VMHooks) ManagedUpgradeFromSourceContract(destHandle int32, gas int64, valueHandle, sourceHandle, metadataHandle, argsHandle, resultHandle int32) error {
	if err := vh.useGas(vh.gas.CreateContract); err != nil {
		return err
	}
	value, metadata, args, err := vh.readDeployData(valueHandle, metadataHandle, argsHandle)
	if err != nil {
		return err
	}
	source, code, err := vh.sourceCode(sourceHandle)
	if err != nil {
		return err
	}
	return vh.upgrade(vmcontext.ActionUpgradeFromSource, destHandle, gas, value, code, metadata, source, args)
}
