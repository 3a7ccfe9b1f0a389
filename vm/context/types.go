// Package vmcontext holds the per-call execution context: inputs, outputs,
// gas, block metadata and the deterministic random stream.
package vmcontext

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
)

// ESDTTransfer is one token movement. Nonce 0 is fungible.
type ESDTTransfer struct {
	TokenID []byte
	Nonce   uint64
	Amount  *big.Int
}

func (t ESDTTransfer) Copy() ESDTTransfer {
	return ESDTTransfer{
		TokenID: common.CopyBytes(t.TokenID),
		Nonce:   t.Nonce,
		Amount:  new(big.Int).Set(t.Amount),
	}
}

type BlockInfo struct {
	Nonce      uint64
	Round      uint64
	Epoch      uint64
	Timestamp  uint64
	RandomSeed []byte
}

type CallType int

const (
	DirectCall CallType = iota
	ExecuteOnDestContext
	ExecuteReadOnly
	AsyncCall
	AsyncCallback
)

func (ct CallType) String() string {
	switch ct {
	case DirectCall:
		return "direct"
	case ExecuteOnDestContext:
		return "executeOnDest"
	case ExecuteReadOnly:
		return "readOnly"
	case AsyncCall:
		return "async"
	case AsyncCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// CallInput describes one contract invocation.
type CallInput struct {
	CallType       CallType
	Caller         common.Address
	OriginalCaller common.Address
	Recipient      common.Address
	Function       string
	Arguments      [][]byte
	EGLDValue      *big.Int
	ESDTTransfers  []ESDTTransfer
	GasProvided    uint64
	TxHash         []byte
	OriginalTxHash []byte
	// read-only calls reject every storage write
	ReadOnly bool
	// closure set by managedCreateAsyncCall, visible to the callback
	CallbackClosure []byte
}

// HasPayment reports whether any EGLD or ESDT value accompanies the call.
func (in *CallInput) HasPayment() bool {
	return (in.EGLDValue != nil && in.EGLDValue.Sign() > 0) || len(in.ESDTTransfers) > 0
}

// LogEntry is one event emitted by a contract.
type LogEntry struct {
	Address  common.Address
	Function string
	Topics   [][]byte
	Data     []byte
}

type ActionKind int

const (
	ActionAsync ActionKind = iota
	ActionTransferExecute
	ActionMultiTransfer
	ActionDeploy
	ActionDeployFromSource
	ActionUpgrade
	ActionUpgradeFromSource
	ActionExecuteOnDest
	ActionExecuteReadOnly
)

var actionKindNames = [...]string{
	"async", "transferExecute", "multiTransfer", "deploy", "deployFromSource",
	"upgrade", "upgradeFromSource", "executeOnDest", "executeReadOnly",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return "unknown"
}

type ActionStatus int

const (
	ActionPending ActionStatus = iota
	ActionCompleted
)

// Action is a cross-contract effect recorded by the current call.
type Action struct {
	Kind   ActionKind
	Status ActionStatus
	// contract that recorded the action
	Origin common.Address

	Dest      common.Address
	Source    common.Address
	Value     *big.Int
	Transfers []ESDTTransfer
	Function  string
	Args      [][]byte

	Gas      uint64
	ExtraGas uint64

	SuccessCallback string
	ErrorCallback   string
	CallbackClosure []byte

	Code         []byte
	CodeMetadata []byte
}

// IsPending reports whether the action waits for the top-level call to succeed.
func (a *Action) IsPending() bool {
	return a.Status == ActionPending
}

// BackTransfers accumulates value sent back to the caller by sync children.
type BackTransfers struct {
	EGLD *big.Int
	ESDT []ESDTTransfer
}

func (bt *BackTransfers) Add(egld *big.Int, esdt []ESDTTransfer) {
	if bt.EGLD == nil {
		bt.EGLD = new(big.Int)
	}
	if egld != nil {
		bt.EGLD.Add(bt.EGLD, egld)
	}
	for _, t := range esdt {
		bt.ESDT = append(bt.ESDT, t.Copy())
	}
}
