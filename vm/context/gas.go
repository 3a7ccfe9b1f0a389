package vmcontext

import (
	"github.com/coschain/vmhooks/vm/vmerr"
)

// GasMeter tracks the gas of one call frame.
type GasMeter struct {
	limit uint64
	used  uint64
}

func NewGasMeter(limit uint64) *GasMeter {
	return &GasMeter{limit: limit}
}

// Use consumes cost. Exceeding the limit is fatal and burns everything left.
func (g *GasMeter) Use(cost uint64) error {
	if cost > g.limit-g.used {
		g.used = g.limit
		return vmerr.OutOfGasError()
	}
	g.used += cost
	return nil
}

func (g *GasMeter) Left() uint64 {
	return g.limit - g.used
}

func (g *GasMeter) Used() uint64 {
	return g.used
}

func (g *GasMeter) Limit() uint64 {
	return g.limit
}

// Refund gives back gas a child frame didn't consume.
func (g *GasMeter) Refund(amount uint64) {
	if amount > g.used {
		amount = g.used
	}
	g.used -= amount
}
