package builtin

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
)

// TransferCall is a token transfer builtin unpacked into the call it carries.
type TransferCall struct {
	Dest      common.Address
	Transfers []vmcontext.ESDTTransfer
	Function  string
	Args      [][]byte
}

// ParseTransfer unpacks ESDTTransfer, ESDTNFTTransfer and MultiESDTNFTTransfer.
//
//	ESDTTransfer         token, amount, [function, args...]        sent to the receiver
//	ESDTNFTTransfer      token, nonce, amount, dest, [function, args...]   sent to self
//	MultiESDTNFTTransfer dest, n, (token, nonce, amount)*n, [function, args...]   sent to self
func ParseTransfer(input *vmcontext.CallInput) (*TransferCall, error) {
	args := input.Arguments
	call := &TransferCall{}
	var rest [][]byte
	switch input.Function {
	case constants.BuiltInESDTTransfer:
		if err := argCount(input, 2); err != nil {
			return nil, err
		}
		call.Dest = input.Recipient
		call.Transfers = []vmcontext.ESDTTransfer{{
			TokenID: common.CopyBytes(args[0]),
			Amount:  new(big.Int).SetBytes(args[1]),
		}}
		rest = args[2:]
	case constants.BuiltInESDTNFTTransfer:
		if err := argCount(input, 4); err != nil {
			return nil, err
		}
		nonce, err := argUint64(args[1])
		if err != nil {
			return nil, err
		}
		if len(args[3]) != constants.AddressLength {
			return nil, vmerr.User("invalid receiver address")
		}
		call.Dest = common.BytesToAddress(args[3])
		call.Transfers = []vmcontext.ESDTTransfer{{
			TokenID: common.CopyBytes(args[0]),
			Nonce:   nonce,
			Amount:  new(big.Int).SetBytes(args[2]),
		}}
		rest = args[4:]
	case constants.BuiltInMultiESDTNFTTransfer:
		if err := argCount(input, 2); err != nil {
			return nil, err
		}
		if len(args[0]) != constants.AddressLength {
			return nil, vmerr.User("invalid receiver address")
		}
		call.Dest = common.BytesToAddress(args[0])
		n, err := argUint64(args[1])
		if err != nil {
			return nil, err
		}
		if uint64(len(args)-2) < 3*n {
			return nil, vmerr.Userf("%s: not enough arguments", input.Function)
		}
		for i := uint64(0); i < n; i++ {
			base := 2 + 3*i
			nonce, err := argUint64(args[base+1])
			if err != nil {
				return nil, err
			}
			call.Transfers = append(call.Transfers, vmcontext.ESDTTransfer{
				TokenID: common.CopyBytes(args[base]),
				Nonce:   nonce,
				Amount:  new(big.Int).SetBytes(args[base+2]),
			})
		}
		rest = args[2+3*n:]
	default:
		return nil, vmerr.Failed(vmerr.FunctionNotFound, "not a transfer builtin: "+input.Function)
	}
	if len(rest) > 0 {
		call.Function = string(rest[0])
		call.Args = rest[1:]
	}
	return call, nil
}

// TransferArguments builds the builtin call that moves transfers to dest and
// then calls function, as the sender would submit it.
func TransferArguments(dest common.Address, transfers []vmcontext.ESDTTransfer, function string, args [][]byte) (string, [][]byte) {
	var out [][]byte
	name := constants.BuiltInMultiESDTNFTTransfer
	if len(transfers) == 1 && transfers[0].Nonce == 0 {
		name = constants.BuiltInESDTTransfer
		out = append(out, transfers[0].TokenID, transfers[0].Amount.Bytes())
	} else {
		out = append(out, dest.Bytes(), new(big.Int).SetInt64(int64(len(transfers))).Bytes())
		for _, t := range transfers {
			out = append(out, t.TokenID, new(big.Int).SetUint64(t.Nonce).Bytes(), t.Amount.Bytes())
		}
	}
	if function != "" {
		out = append(out, []byte(function))
		out = append(out, args...)
	}
	return name, out
}
