package vm

import (
	"github.com/coschain/vmhooks/common/constants"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
)

// drain runs pending actions in enqueue order. Actions recorded while
// draining are queued behind the ones already waiting. budget is the gas the
// transaction has left for actions that reserved none.
func (c *call) drain(pending []*vmcontext.Action, out *VMOutput, budget *uint64) {
	queue := append([]*vmcontext.Action{}, pending...)
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		outcome, ctxs := c.runAction(a, budget)
		for _, ctx := range ctxs {
			out.Logs = append(out.Logs, ctx.Logs()...)
			queue = append(queue, ctx.PendingActions()...)
		}
		out.Actions = append(out.Actions, outcome)
		c.s.publish(constants.NoticeActionResult, outcome)
	}
}

// gasFor returns the gas an action may spend and whether it was reserved when
// the action was recorded.
func gasFor(requested uint64, reserved bool, budget uint64) uint64 {
	if reserved || (requested > 0 && requested < budget) {
		return requested
	}
	return budget
}

func charge(budget *uint64, limit, used uint64, reserved bool) {
	if reserved {
		*budget += limit - used
		return
	}
	*budget -= used
}

// runAction executes a and, for async calls, the callback. It returns the
// contexts of the frames that succeeded.
func (c *call) runAction(a *vmcontext.Action, budget *uint64) (*ActionOutcome, []*vmcontext.Context) {
	outcome := &ActionOutcome{Kind: a.Kind, Dest: a.Dest, Function: a.Function}
	reserved := a.Kind == vmcontext.ActionAsync && a.Gas > 0
	gas := gasFor(a.Gas, reserved, *budget)

	var ctx *vmcontext.Context
	var err error
	switch a.Kind {
	case vmcontext.ActionUpgrade, vmcontext.ActionUpgradeFromSource:
		ctx, err = c.upgrade(a.Origin, a.Dest, a.Code, a.CodeMetadata, a.Args, a.Value, gas, 0)
	default:
		callType := vmcontext.DirectCall
		if a.Kind == vmcontext.ActionAsync {
			callType = vmcontext.AsyncCall
		}
		input := c.actionInput(callType, a.Origin, a.Dest, a.Function, a.Args, gas)
		if a.Value != nil {
			input.EGLDValue = a.Value
		}
		input.ESDTTransfers = a.Transfers
		ctx, err = c.execute(input, 0)
	}
	charge(budget, gas, ctx.Gas.Used(), reserved)

	var done []*vmcontext.Context
	outcome.ReturnCode = vmerr.CodeOf(err)
	if err != nil {
		outcome.ReturnMessage = vmerr.From(err).Message
		c.log.Infof("%s action to %s failed: %v", a.Kind, a.Dest.Hex(), err)
	} else {
		outcome.ReturnData = ctx.ReturnData()
		done = append(done, ctx)
	}
	if a.Kind != vmcontext.ActionAsync {
		return outcome, done
	}

	callback := a.SuccessCallback
	if err != nil {
		callback = a.ErrorCallback
	}
	if callback == "" {
		return outcome, done
	}
	cbReserved := a.ExtraGas > 0
	cbGas := gasFor(a.ExtraGas, cbReserved, *budget)
	cbInput := c.actionInput(vmcontext.AsyncCallback, a.Dest, a.Origin, callback, callbackArguments(outcome.ReturnData, err), cbGas)
	cbInput.CallbackClosure = a.CallbackClosure
	cbCtx, cbErr := c.execute(cbInput, 0)
	charge(budget, cbGas, cbCtx.Gas.Used(), cbReserved)
	outcome.Callback = callback
	outcome.CallbackCode = vmerr.CodeOf(cbErr)
	if cbErr != nil {
		c.log.Infof("callback %s failed: %v", callback, cbErr)
	} else {
		done = append(done, cbCtx)
	}
	return outcome, done
}
