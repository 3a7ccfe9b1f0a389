package vm

import (
	"github.com/coschain/vmhooks/vm/hooks"
)

// Executor turns contract code into runnable instances bound to a hook set.
type Executor interface {
	Instantiate(code []byte, vh *hooks.VMHooks) (Instance, error)
}

// Instance is contract code loaded for one call frame.
type Instance interface {
	HasFunction(name string) bool
	// Call runs an exported endpoint. Hook failures come back as the hook's error.
	Call(name string) error
	// Release gives the instance's resources back once the frame is done.
	Release()
}
