package vmerr

// ReturnCode is the status of a finished call as seen by the chain.
type ReturnCode int

const (
	Ok ReturnCode = iota
	FunctionNotFound
	FunctionWrongSignature
	ContractNotFound
	UserError
	OutOfGas
	AccountCollision
	OutOfFunds
	CallStackOverFlow
	ContractInvalid
	ExecutionFailed
	UpgradeFailed
	SimulateFailed
)

var returnCodeNames = [...]string{
	"ok",
	"function not found",
	"wrong signature for function",
	"contract not found",
	"user error",
	"out of gas",
	"account collision",
	"out of funds",
	"call stack overflow",
	"contract invalid",
	"execution failed",
	"upgrade failed",
	"simulate failed",
}

func (rc ReturnCode) String() string {
	if rc >= 0 && int(rc) < len(returnCodeNames) {
		return returnCodeNames[rc]
	}
	return "unknown error"
}
