package vm

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	"github.com/coschain/vmhooks/vm/builtin"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/hooks"
	"github.com/coschain/vmhooks/vm/managed"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/sirupsen/logrus"
)

// call is one top-level transaction in flight. It runs every frame the
// transaction opens and serves their synchronous calls and deploys.
type call struct {
	s      *VMService
	input  *vmcontext.CallInput
	random *vmcontext.Random
	log    *logrus.Entry
}

var _ hooks.Host = (*call)(nil)

func (s *VMService) newCall(input *vmcontext.CallInput) *call {
	return &call{
		s:      s,
		input:  input,
		random: vmcontext.NewRandom(s.block.RandomSeed, input.TxHash),
		log: s.log.WithFields(logrus.Fields{
			"caller":   input.Caller.Hex(),
			"contract": input.Recipient.Hex(),
			"function": input.Function,
		}),
	}
}

// actionInput is the call an action of origin turns into.
func (c *call) actionInput(callType vmcontext.CallType, caller, dest common.Address, function string, args [][]byte, gas uint64) *vmcontext.CallInput {
	original := c.input.OriginalCaller
	if original.IsZero() {
		original = c.input.Caller
	}
	return &vmcontext.CallInput{
		CallType:       callType,
		Caller:         caller,
		OriginalCaller: original,
		Recipient:      dest,
		Function:       function,
		Arguments:      args,
		EGLDValue:      new(big.Int),
		GasProvided:    gas,
		TxHash:         c.input.TxHash,
		OriginalTxHash: c.input.OriginalTxHash,
	}
}

// frame opens a call frame with its own staging level. The level is merged
// when body succeeds and dropped otherwise. The returned context is never nil.
func (c *call) frame(input *vmcontext.CallInput, depth int, body func(ctx *vmcontext.Context) error) (ctx *vmcontext.Context, err error) {
	ctx = vmcontext.NewContext(input, c.s.block, c.s.prevBlock, c.random, depth, c.s.log)
	state := c.s.state
	state.BeginTransaction()
	defer func() {
		if endErr := state.EndTransaction(err == nil); endErr != nil && err == nil {
			err = endErr
		}
	}()
	if depth > c.s.cfg.MaxCallDepth {
		return ctx, vmerr.Failed(vmerr.CallStackOverFlow, "call stack overflow")
	}
	return ctx, body(ctx)
}

// run executes the frame's endpoint. Optional endpoints missing from the code
// are skipped.
func (c *call) run(ctx *vmcontext.Context, code []byte, optional bool) error {
	heap := managed.NewHeap(c.s.cfg.BigFloatPrecision, c.s.cfg.MaxConversionExponent)
	vh := hooks.New(heap, ctx, c.s.state, c, c.s.builtins, c.s.cfg)
	inst, err := c.s.executor.Instantiate(code, vh)
	if err != nil {
		return err
	}
	defer inst.Release()
	function := ctx.Input.Function
	if !inst.HasFunction(function) {
		if optional {
			return nil
		}
		return vmerr.Failed(vmerr.FunctionNotFound, "function not found: "+function)
	}
	if err = inst.Call(function); err != nil {
		ctx.Logger.Debugf("endpoint failed: %v", err)
	}
	return err
}

// moveValue pays the call's EGLD and tokens from caller to recipient.
func (c *call) moveValue(input *vmcontext.CallInput) error {
	return c.transfer(input.Caller, input.Recipient, input.EGLDValue, input.ESDTTransfers)
}

func (c *call) transfer(from, to common.Address, value *big.Int, transfers []vmcontext.ESDTTransfer) error {
	state := c.s.state
	if err := state.Transfer(from, to, value); err != nil {
		return err
	}
	for _, t := range transfers {
		if err := state.TransferESDT(from, to, t.TokenID, t.Nonce, t.Amount); err != nil {
			return err
		}
	}
	return nil
}

// execute runs input in a new frame: builtins natively, contract endpoints on
// the executor. An empty function only moves value.
func (c *call) execute(input *vmcontext.CallInput, depth int) (*vmcontext.Context, error) {
	return c.frame(input, depth, func(ctx *vmcontext.Context) error {
		if err := checkReadOnly(input, c.s.builtins.IsBuiltin(input.Function)); err != nil {
			return err
		}
		if c.s.builtins.IsBuiltin(input.Function) {
			return c.runBuiltin(ctx)
		}
		if err := c.moveValue(input); err != nil {
			return err
		}
		if input.Function == "" {
			return nil
		}
		code, err := c.s.state.Code(input.Recipient)
		if err != nil {
			return err
		}
		if len(code) == 0 {
			return vmerr.Failed(vmerr.ContractNotFound, "contract not found: "+input.Recipient.Hex())
		}
		return c.run(ctx, code, input.CallType == vmcontext.AsyncCallback)
	})
}

// checkReadOnly rejects the parts of a read only call that would change
// state outside of a hook: every builtin and any payment.
func checkReadOnly(input *vmcontext.CallInput, builtin bool) error {
	if !input.ReadOnly {
		return nil
	}
	if builtin {
		return vmerr.Fatal(vmerr.ExecutionFailed, "builtin "+input.Function+" not allowed in read only mode")
	}
	if input.HasPayment() {
		return vmerr.Fatal(vmerr.ExecutionFailed, "value transfer not allowed in read only mode")
	}
	return nil
}

func (c *call) runBuiltin(ctx *vmcontext.Context) error {
	input := ctx.Input
	if err := ctx.Gas.Use(c.s.cfg.Gas.TransferValue); err != nil {
		return err
	}
	switch {
	case input.Function == constants.BuiltInUpgradeContract:
		if len(input.Arguments) < 2 {
			return vmerr.Failed(vmerr.UpgradeFailed, "upgradeContract: not enough arguments")
		}
		args := input.Arguments
		child, err := c.upgrade(input.Caller, input.Recipient, args[0], args[1], args[2:], input.EGLDValue, ctx.Gas.Left(), ctx.Depth)
		return c.absorb(ctx, child, err)
	case c.s.builtins.IsRouted(input.Function):
		tc, err := builtin.ParseTransfer(input)
		if err != nil {
			return err
		}
		inner := c.actionInput(input.CallType, input.Caller, tc.Dest, tc.Function, tc.Args, ctx.Gas.Left())
		inner.ESDTTransfers = tc.Transfers
		inner.ReadOnly = input.ReadOnly
		inner.CallbackClosure = input.CallbackClosure
		child, err := c.execute(inner, ctx.Depth)
		return c.absorb(ctx, child, err)
	default:
		data, err := c.s.builtins.Execute(c.s.state, input)
		if err != nil {
			return err
		}
		for _, d := range data {
			ctx.Finish(d)
		}
		return nil
	}
}

// absorb charges a finished child to its parent and folds in its outputs.
func (c *call) absorb(parent, child *vmcontext.Context, err error) error {
	if useErr := parent.Gas.Use(child.Gas.Used()); useErr != nil && err == nil {
		err = useErr
	}
	if err != nil {
		return err
	}
	return c.mergeChild(parent, child)
}

func isBackTransfer(a *vmcontext.Action, parent common.Address) bool {
	if !a.IsPending() || a.Function != "" || a.Dest != parent {
		return false
	}
	return a.Kind == vmcontext.ActionTransferExecute || a.Kind == vmcontext.ActionMultiTransfer
}

// mergeChild pays the value-only transfers a child addressed to its parent
// right away and records them as back transfers. Everything else the child
// did is folded into the parent.
func (c *call) mergeChild(parent, child *vmcontext.Context) error {
	var keep []*vmcontext.Action
	for _, a := range child.Actions() {
		if !isBackTransfer(a, parent.SCAddress()) {
			keep = append(keep, a)
			continue
		}
		if err := c.transfer(a.Origin, a.Dest, a.Value, a.Transfers); err != nil {
			return err
		}
		parent.BackTransfers().Add(a.Value, a.Transfers)
	}
	parent.MergeChild(child, keep)
	return nil
}

// ExecuteOnDest runs a synchronous child call of parent.
func (c *call) ExecuteOnDest(parent *vmcontext.Context, input *vmcontext.CallInput) ([][]byte, error) {
	child, err := c.execute(input, parent.Depth+1)
	if err = c.absorb(parent, child, err); err != nil {
		return nil, err
	}
	return child.ReturnData(), nil
}

// Deploy creates a contract owned by parent's contract.
func (c *call) Deploy(parent *vmcontext.Context, code, metadata []byte, value *big.Int, args [][]byte, gas uint64) (common.Address, [][]byte, error) {
	input := c.actionInput(vmcontext.DirectCall, parent.SCAddress(), common.ZeroAddress, constants.InitFunctionName, args, gas)
	input.EGLDValue = value
	child, err := c.deploy(input, code, metadata, parent.Depth+1)
	if err = c.absorb(parent, child, err); err != nil {
		return common.ZeroAddress, nil, err
	}
	return child.SCAddress(), child.ReturnData(), nil
}

// deploy derives the new contract address from the creator's nonce, installs
// the code and runs init.
func (c *call) deploy(input *vmcontext.CallInput, code, metadata []byte, depth int) (*vmcontext.Context, error) {
	state := c.s.state
	nonce, err := state.IncrementNonce(input.Caller)
	if err != nil {
		return vmcontext.NewContext(input, c.s.block, c.s.prevBlock, c.random, depth, c.s.log), err
	}
	input.Recipient = world.NewContractAddress(input.Caller, nonce)
	return c.frame(input, depth, func(ctx *vmcontext.Context) error {
		existing, err := state.Code(input.Recipient)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return vmerr.Failed(vmerr.AccountCollision, "account already exists: "+input.Recipient.Hex())
		}
		return c.install(ctx, code, metadata, input.Caller)
	})
}

// upgrade replaces the code of dest and runs its upgrade endpoint. Only the
// owner may upgrade.
func (c *call) upgrade(caller, dest common.Address, code, metadata []byte, args [][]byte, value *big.Int, gas uint64, depth int) (*vmcontext.Context, error) {
	input := c.actionInput(vmcontext.DirectCall, caller, dest, constants.UpgradeFunctionName, args, gas)
	if value != nil {
		input.EGLDValue = value
	}
	state := c.s.state
	return c.frame(input, depth, func(ctx *vmcontext.Context) error {
		existing, err := state.Code(dest)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return vmerr.Failed(vmerr.ContractNotFound, "contract not found: "+dest.Hex())
		}
		owner, err := state.Owner(dest)
		if err != nil {
			return err
		}
		if owner != caller {
			return vmerr.Failed(vmerr.UpgradeFailed, "upgrade not allowed: caller is not the owner")
		}
		return c.install(ctx, code, metadata, owner)
	})
}

func (c *call) install(ctx *vmcontext.Context, code, metadata []byte, owner common.Address) error {
	if len(code) == 0 {
		return vmerr.Failed(vmerr.ContractInvalid, "empty code")
	}
	if err := c.s.state.SetCode(ctx.SCAddress(), code, metadata, owner); err != nil {
		return err
	}
	if err := c.moveValue(ctx.Input); err != nil {
		return err
	}
	return c.run(ctx, code, true)
}
