package vm

import (
	"github.com/coschain/vmhooks/common"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
)

// DeployInput creates a contract owned by the caller and runs its init.
type DeployInput struct {
	vmcontext.CallInput
	Code         []byte
	CodeMetadata []byte
}

// ActionOutcome is the result of one pending action drained after the call.
type ActionOutcome struct {
	Kind          vmcontext.ActionKind
	Dest          common.Address
	Function      string
	ReturnCode    vmerr.ReturnCode
	ReturnMessage []byte
	ReturnData    [][]byte
	// callback run for an async call, empty if none ran
	Callback     string
	CallbackCode vmerr.ReturnCode
}

// VMOutput is what a top-level call leaves behind.
type VMOutput struct {
	ReturnCode    vmerr.ReturnCode
	ReturnMessage []byte
	ReturnData    [][]byte
	GasRemaining  uint64
	Logs          []*vmcontext.LogEntry
	// address of the contract created by a deploy
	NewAddress common.Address
	Actions    []*ActionOutcome
}

func (out *VMOutput) Ok() bool {
	return out.ReturnCode == vmerr.Ok
}

func (out *VMOutput) setError(err error) {
	vmErr := vmerr.From(err)
	out.ReturnCode = vmErr.Code
	out.ReturnMessage = common.CopyBytes(vmErr.Message)
	out.ReturnData = nil
	out.Logs = nil
}

// callbackArguments are the arguments a callback receives: a zero status byte
// and the return data on success, the return code and message on failure.
func callbackArguments(data [][]byte, err error) [][]byte {
	if err == nil {
		return append([][]byte{{0}}, data...)
	}
	vmErr := vmerr.From(err)
	return [][]byte{{byte(vmErr.Code)}, common.CopyBytes(vmErr.Message)}
}
