// Package builtin knows the protocol functions a call may name instead of a
// contract endpoint, and executes the token ones natively.
package builtin

import (
	"sort"

	"github.com/coschain/vmhooks/common/constants"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/deckarep/golang-set"
)

// Func runs a builtin on the world state and returns its return data.
type Func func(state *world.State, input *vmcontext.CallInput) ([][]byte, error)

type Registry struct {
	names mapset.Set
	funcs map[string]Func
	// builtins the vm runs itself because they call back into contracts
	routed mapset.Set
}

func NewRegistry() *Registry {
	r := &Registry{
		names:  mapset.NewThreadUnsafeSet(),
		funcs:  make(map[string]Func),
		routed: mapset.NewThreadUnsafeSet(),
	}
	r.route(constants.BuiltInESDTTransfer)
	r.route(constants.BuiltInESDTNFTTransfer)
	r.route(constants.BuiltInMultiESDTNFTTransfer)
	r.route(constants.BuiltInUpgradeContract)

	r.register(constants.BuiltInESDTLocalMint, localMint)
	r.register(constants.BuiltInESDTLocalBurn, localBurn)
	r.register(constants.BuiltInESDTNFTCreate, nftCreate)
	r.register(constants.BuiltInESDTNFTAddQuantity, nftAddQuantity)
	r.register(constants.BuiltInESDTNFTBurn, nftBurn)
	r.register(constants.BuiltInESDTNFTAddURI, nftAddURI)
	r.register(constants.BuiltInESDTNFTUpdateAttributes, nftUpdateAttributes)
	r.register(constants.BuiltInChangeOwnerAddress, changeOwner)

	// known to the protocol, not served by this vm
	r.names.Add(constants.BuiltInClaimDeveloperRewards)
	r.names.Add(constants.BuiltInSetUserName)
	r.names.Add(constants.BuiltInMigrateUserName)
	r.names.Add(constants.BuiltInDeleteUserName)
	return r
}

func (r *Registry) register(name string, fn Func) {
	r.names.Add(name)
	r.funcs[name] = fn
}

func (r *Registry) route(name string) {
	r.names.Add(name)
	r.routed.Add(name)
}

// IsBuiltin reports whether name is a protocol function.
func (r *Registry) IsBuiltin(name string) bool {
	return r.names.Contains(name)
}

// IsRouted reports whether the vm itself must run the builtin.
func (r *Registry) IsRouted(name string) bool {
	return r.routed.Contains(name)
}

// Names lists every builtin, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, r.names.Cardinality())
	for item := range r.names.Iter() {
		names = append(names, item.(string))
	}
	sort.Strings(names)
	return names
}

// Execute runs a natively served builtin.
func (r *Registry) Execute(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	fn, ok := r.funcs[input.Function]
	if !ok {
		return nil, vmerr.Failed(vmerr.FunctionNotFound, "builtin function not served: "+input.Function)
	}
	return fn(state, input)
}
