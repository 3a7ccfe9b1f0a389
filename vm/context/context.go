package vmcontext

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/sirupsen/logrus"
)

// Context is the state of one executing call frame. Outputs are only visible
// to the parent once the frame finishes successfully and is merged.
type Context struct {
	Input     *CallInput
	Block     *BlockInfo
	PrevBlock *BlockInfo
	Gas       *GasMeter
	Random    *Random
	Depth     int
	Logger    *logrus.Entry

	returnData    [][]byte
	logs          []*LogEntry
	actions       []*Action
	backTransfers BackTransfers
}

func NewContext(input *CallInput, block, prevBlock *BlockInfo, random *Random, depth int, logger *logrus.Logger) *Context {
	if input.EGLDValue == nil {
		input.EGLDValue = new(big.Int)
	}
	if block == nil {
		block = &BlockInfo{}
	}
	if prevBlock == nil {
		prevBlock = &BlockInfo{}
	}
	if random == nil {
		random = NewRandom(block.RandomSeed, input.TxHash)
	}
	return &Context{
		Input:     input,
		Block:     block,
		PrevBlock: prevBlock,
		Gas:       NewGasMeter(input.GasProvided),
		Random:    random,
		Depth:     depth,
		Logger: logger.WithFields(logrus.Fields{
			"contract": input.Recipient.Hex(),
			"function": input.Function,
			"depth":    depth,
		}),
		backTransfers: BackTransfers{EGLD: new(big.Int)},
	}
}

func (c *Context) SCAddress() common.Address {
	return c.Input.Recipient
}

func (c *Context) NumArguments() int32 {
	return int32(len(c.Input.Arguments))
}

// Argument returns the id-th call argument.
func (c *Context) Argument(id int32) ([]byte, error) {
	if id < 0 || int(id) >= len(c.Input.Arguments) {
		return nil, vmerr.User("argument index out of range")
	}
	return c.Input.Arguments[id], nil
}

func (c *Context) CheckNotPayable() error {
	if c.Input.HasPayment() {
		return vmerr.User("non-payable")
	}
	return nil
}

func (c *Context) Finish(data []byte) {
	c.returnData = append(c.returnData, common.CopyBytes(data))
}

func (c *Context) ReturnData() [][]byte {
	return c.returnData
}

func (c *Context) CleanReturnData() {
	c.returnData = nil
}

// DeleteFromReturnData drops one item. Out of range indices are ignored.
func (c *Context) DeleteFromReturnData(index int32) {
	if index < 0 || int(index) >= len(c.returnData) {
		return
	}
	c.returnData = append(c.returnData[:index], c.returnData[index+1:]...)
}

func (c *Context) WriteLog(topics [][]byte, data []byte) {
	c.logs = append(c.logs, &LogEntry{
		Address:  c.Input.Recipient,
		Function: c.Input.Function,
		Topics:   topics,
		Data:     common.CopyBytes(data),
	})
}

func (c *Context) Logs() []*LogEntry {
	return c.logs
}

// AddAction records a in enqueue order. Actions without an origin are
// attributed to this frame's contract.
func (c *Context) AddAction(a *Action) {
	if a.Origin.IsZero() {
		a.Origin = c.SCAddress()
	}
	c.actions = append(c.actions, a)
}

// Actions returns every recorded action in enqueue order.
func (c *Context) Actions() []*Action {
	return c.actions
}

// PendingActions returns the actions still waiting to be executed, in order.
func (c *Context) PendingActions() []*Action {
	var pending []*Action
	for _, a := range c.actions {
		if a.IsPending() {
			pending = append(pending, a)
		}
	}
	return pending
}

func (c *Context) BackTransfers() *BackTransfers {
	return &c.backTransfers
}

// MergeChild folds a successful sync child into this frame. Its return data
// and logs are appended, actions is what remains of its actions once back
// transfers have been taken out.
func (c *Context) MergeChild(child *Context, actions []*Action) {
	c.returnData = append(c.returnData, child.returnData...)
	c.logs = append(c.logs, child.logs...)
	c.actions = append(c.actions, actions...)
}
