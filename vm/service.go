package vm

import (
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/coschain/vmhooks/common/constants"
	"github.com/coschain/vmhooks/config"
	"github.com/coschain/vmhooks/vm/builtin"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/sirupsen/logrus"
)

// VMService runs top-level calls against one world state. Calls are
// serialized, a transaction owns the state until it returns.
type VMService struct {
	cfg      *config.VMConfig
	state    *world.State
	builtins *builtin.Registry
	executor Executor
	noticer  EventBus.Bus
	log      *logrus.Logger

	block     *vmcontext.BlockInfo
	prevBlock *vmcontext.BlockInfo
	lock      sync.Mutex
}

func New(cfg *config.VMConfig, state *world.State, executor Executor, logger *logrus.Logger) *VMService {
	return &VMService{
		cfg:       cfg,
		state:     state,
		builtins:  builtin.NewRegistry(),
		executor:  executor,
		log:       logger,
		block:     &vmcontext.BlockInfo{},
		prevBlock: &vmcontext.BlockInfo{},
	}
}

// SetBus makes the service publish call and action results on bus.
func (s *VMService) SetBus(bus EventBus.Bus) {
	s.noticer = bus
}

// SetBlock sets the block the next calls execute in.
func (s *VMService) SetBlock(block, prevBlock *vmcontext.BlockInfo) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if block == nil {
		block = &vmcontext.BlockInfo{}
	}
	if prevBlock == nil {
		prevBlock = &vmcontext.BlockInfo{}
	}
	s.block, s.prevBlock = block, prevBlock
}

func (s *VMService) State() *world.State {
	return s.state
}

func (s *VMService) Builtins() *builtin.Registry {
	return s.builtins
}

func (s *VMService) publish(topic string, args ...interface{}) {
	if s.noticer != nil {
		s.noticer.Publish(topic, args...)
	}
}

// RunCall executes a top-level call, then the actions it left pending.
func (s *VMService) RunCall(input *vmcontext.CallInput) *VMOutput {
	s.lock.Lock()
	defer s.lock.Unlock()
	c := s.newCall(input)
	return s.transaction(c, func() *VMOutput {
		ctx, err := c.execute(input, 0)
		return c.output(ctx, err)
	})
}

// Deploy creates a contract owned by the caller and runs its init endpoint.
func (s *VMService) Deploy(input *DeployInput) *VMOutput {
	s.lock.Lock()
	defer s.lock.Unlock()
	callInput := input.CallInput
	callInput.Function = constants.InitFunctionName
	c := s.newCall(&callInput)
	return s.transaction(c, func() *VMOutput {
		ctx, err := c.deploy(&callInput, input.Code, input.CodeMetadata, 0)
		out := c.output(ctx, err)
		if out.Ok() {
			out.NewAddress = ctx.SCAddress()
		}
		return out
	})
}

func (s *VMService) transaction(c *call, body func() *VMOutput) *VMOutput {
	s.state.BeginTransaction()
	out := body()
	if err := s.state.EndTransaction(true); err != nil {
		c.log.Errorf("commit failed: %v", err)
		out.setError(err)
	}
	s.publish(constants.NoticeCallResult, c.input, out)
	return out
}

// output turns the finished top-level frame into a VMOutput. A successful
// frame has its pending actions drained first.
func (c *call) output(ctx *vmcontext.Context, err error) *VMOutput {
	out := &VMOutput{GasRemaining: ctx.Gas.Left()}
	if err != nil {
		out.setError(err)
		if vmerr.IsUser(err) {
			c.log.Infof("call failed: %v", err)
		} else {
			c.log.Warnf("call failed: %v", err)
		}
		return out
	}
	out.ReturnData = ctx.ReturnData()
	out.Logs = ctx.Logs()
	budget := ctx.Gas.Left()
	c.drain(ctx.PendingActions(), out, &budget)
	out.GasRemaining = budget
	return out
}
