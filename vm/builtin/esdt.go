package builtin

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
)

func argCount(input *vmcontext.CallInput, min int) error {
	if len(input.Arguments) < min {
		return vmerr.Userf("%s: not enough arguments", input.Function)
	}
	return nil
}

func argUint64(arg []byte) (uint64, error) {
	if len(arg) > 8 {
		return 0, vmerr.User("argument does not fit in u64")
	}
	return new(big.Int).SetBytes(arg).Uint64(), nil
}

func requireRole(state *world.State, addr common.Address, tokenID []byte, role string) error {
	ok, err := state.HasRole(addr, tokenID, constants.RoleFlag(role))
	if err != nil {
		return err
	}
	if !ok {
		return vmerr.User("action is not allowed")
	}
	return nil
}

func localMint(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	if err := argCount(input, 2); err != nil {
		return nil, err
	}
	tokenID := input.Arguments[0]
	if err := requireRole(state, input.Caller, tokenID, constants.RoleLocalMint); err != nil {
		return nil, err
	}
	return nil, state.AddESDT(input.Caller, tokenID, 0, new(big.Int).SetBytes(input.Arguments[1]))
}

func localBurn(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	if err := argCount(input, 2); err != nil {
		return nil, err
	}
	tokenID := input.Arguments[0]
	if err := requireRole(state, input.Caller, tokenID, constants.RoleLocalBurn); err != nil {
		return nil, err
	}
	return nil, state.AddESDT(input.Caller, tokenID, 0, new(big.Int).Neg(new(big.Int).SetBytes(input.Arguments[1])))
}

// nftCreate args: token, quantity, name, royalties, hash, attributes, uris...
// It returns the new nonce.
func nftCreate(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	if err := argCount(input, 6); err != nil {
		return nil, err
	}
	args := input.Arguments
	tokenID := args[0]
	if err := requireRole(state, input.Caller, tokenID, constants.RoleNFTCreate); err != nil {
		return nil, err
	}
	royalties, err := argUint64(args[3])
	if err != nil {
		return nil, err
	}
	nonce, err := state.NextNFTNonce(input.Caller, tokenID)
	if err != nil {
		return nil, err
	}
	data := &world.ESDTData{
		Amount:     new(big.Int).SetBytes(args[1]),
		Name:       common.CopyBytes(args[2]),
		Creator:    input.Caller.Bytes(),
		Royalties:  royalties,
		Hash:       common.CopyBytes(args[4]),
		Attributes: common.CopyBytes(args[5]),
	}
	for _, uri := range args[6:] {
		data.URIs = append(data.URIs, common.CopyBytes(uri))
	}
	if err = state.SetESDT(input.Caller, tokenID, nonce, data); err != nil {
		return nil, err
	}
	return [][]byte{new(big.Int).SetUint64(nonce).Bytes()}, nil
}

func nftUpdate(state *world.State, input *vmcontext.CallInput, minArgs int, role string,
	update func(data *world.ESDTData, args [][]byte) error) ([][]byte, error) {
	if err := argCount(input, minArgs); err != nil {
		return nil, err
	}
	tokenID := input.Arguments[0]
	if err := requireRole(state, input.Caller, tokenID, role); err != nil {
		return nil, err
	}
	nonce, err := argUint64(input.Arguments[1])
	if err != nil {
		return nil, err
	}
	data, err := state.ESDT(input.Caller, tokenID, nonce)
	if err != nil {
		return nil, err
	}
	if data.Amount.Sign() == 0 {
		return nil, vmerr.User("new NFT data on sender")
	}
	if err = update(data, input.Arguments[2:]); err != nil {
		return nil, err
	}
	return nil, state.SetESDT(input.Caller, tokenID, nonce, data)
}

func nftAddQuantity(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	return nftUpdate(state, input, 3, constants.RoleNFTAddQuantity, func(data *world.ESDTData, args [][]byte) error {
		data.Amount = new(big.Int).Add(data.Amount, new(big.Int).SetBytes(args[0]))
		return nil
	})
}

func nftBurn(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	return nftUpdate(state, input, 3, constants.RoleNFTBurn, func(data *world.ESDTData, args [][]byte) error {
		amount := new(big.Int).Sub(data.Amount, new(big.Int).SetBytes(args[0]))
		if amount.Sign() < 0 {
			return vmerr.Failed(vmerr.OutOfFunds, "insufficient quantity")
		}
		data.Amount = amount
		return nil
	})
}

func nftAddURI(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	return nftUpdate(state, input, 3, constants.RoleNFTAddURI, func(data *world.ESDTData, args [][]byte) error {
		for _, uri := range args {
			data.URIs = append(data.URIs, common.CopyBytes(uri))
		}
		return nil
	})
}

func nftUpdateAttributes(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	return nftUpdate(state, input, 3, constants.RoleNFTUpdateAttributes, func(data *world.ESDTData, args [][]byte) error {
		data.Attributes = common.CopyBytes(args[0])
		return nil
	})
}

// changeOwner args: new owner. Only the current owner may call it on its contract.
func changeOwner(state *world.State, input *vmcontext.CallInput) ([][]byte, error) {
	if err := argCount(input, 1); err != nil {
		return nil, err
	}
	if len(input.Arguments[0]) != constants.AddressLength {
		return nil, vmerr.User("invalid address")
	}
	owner, err := state.Owner(input.Recipient)
	if err != nil {
		return nil, err
	}
	if owner != input.Caller {
		return nil, vmerr.User("sender is not owner")
	}
	return nil, state.SetOwner(input.Recipient, common.BytesToAddress(input.Arguments[0]))
}
