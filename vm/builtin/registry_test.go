package builtin

import (
	"math/big"
	"testing"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	"github.com/coschain/vmhooks/db/storage"
	vmcontext "github.com/coschain/vmhooks/vm/context"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRegistryNames(t *testing.T) {
	myassert := assert.New(t)
	r := NewRegistry()
	myassert.Len(r.Names(), 16)
	myassert.True(r.IsBuiltin(constants.BuiltInESDTTransfer))
	myassert.True(r.IsRouted(constants.BuiltInESDTTransfer))
	myassert.True(r.IsBuiltin(constants.BuiltInSetUserName))
	myassert.False(r.IsBuiltin("transfer"))

	_, err := r.Execute(nil, &vmcontext.CallInput{Function: constants.BuiltInSetUserName})
	myassert.Equal(vmerr.FunctionNotFound, vmerr.CodeOf(err))
}

func TestLocalMintNeedsRole(t *testing.T) {
	myassert := assert.New(t)
	r := NewRegistry()
	state := world.NewState(storage.NewTrxMemoryDatabase(), 1024*1024, logrus.New())
	var sc common.Address
	sc[31] = 1
	token := []byte("TKN-000001")
	input := &vmcontext.CallInput{
		Caller:    sc,
		Recipient: sc,
		Function:  constants.BuiltInESDTLocalMint,
		Arguments: [][]byte{token, {100}},
	}

	_, err := r.Execute(state, input)
	myassert.True(vmerr.IsUser(err))

	myassert.NoError(state.SetRoles(sc, token, constants.RoleFlag(constants.RoleLocalMint)))
	_, err = r.Execute(state, input)
	myassert.NoError(err)
	balance, _ := state.ESDTBalance(sc, token, 0)
	myassert.Equal(int64(100), balance.Int64())
}

func TestNFTCreate(t *testing.T) {
	myassert := assert.New(t)
	r := NewRegistry()
	state := world.NewState(storage.NewTrxMemoryDatabase(), 1024*1024, logrus.New())
	var sc common.Address
	sc[31] = 2
	token := []byte("NFT-000001")
	myassert.NoError(state.SetRoles(sc, token, constants.RoleFlag(constants.RoleNFTCreate)))

	out, err := r.Execute(state, &vmcontext.CallInput{
		Caller:    sc,
		Recipient: sc,
		Function:  constants.BuiltInESDTNFTCreate,
		Arguments: [][]byte{token, {1}, []byte("name"), {0x03, 0xe8}, []byte("hash"), []byte("attr"), []byte("uri")},
	})
	myassert.NoError(err)
	myassert.Equal([][]byte{{1}}, out)
	data, _ := state.ESDT(sc, token, 1)
	myassert.Equal(uint64(1000), data.Royalties)
	myassert.Equal(sc.Bytes(), data.Creator)
}

func TestParseTransfer(t *testing.T) {
	myassert := assert.New(t)
	var dest common.Address
	dest[31] = 9

	call, err := ParseTransfer(&vmcontext.CallInput{
		Recipient: dest,
		Function:  constants.BuiltInESDTTransfer,
		Arguments: [][]byte{[]byte("TKN-1"), {5}, []byte("deposit"), []byte("x")},
	})
	myassert.NoError(err)
	myassert.Equal(dest, call.Dest)
	myassert.Equal("deposit", call.Function)
	myassert.Equal([][]byte{[]byte("x")}, call.Args)
	myassert.Equal(int64(5), call.Transfers[0].Amount.Int64())

	transfers := []vmcontext.ESDTTransfer{
		{TokenID: []byte("A-1"), Nonce: 0, Amount: big.NewInt(7)},
		{TokenID: []byte("B-1"), Nonce: 3, Amount: big.NewInt(1)},
	}
	name, args := TransferArguments(dest, transfers, "", nil)
	myassert.Equal(constants.BuiltInMultiESDTNFTTransfer, name)
	call, err = ParseTransfer(&vmcontext.CallInput{Function: name, Arguments: args})
	myassert.NoError(err)
	myassert.Equal(dest, call.Dest)
	myassert.Len(call.Transfers, 2)
	myassert.Equal(uint64(3), call.Transfers[1].Nonce)
	myassert.Equal("", call.Function)

	_, err = ParseTransfer(&vmcontext.CallInput{Function: name, Arguments: args[:4]})
	myassert.True(vmerr.IsUser(err))
}
