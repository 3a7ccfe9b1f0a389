package world

import (
	"math/big"
	"testing"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/db/storage"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestState() *State {
	return NewState(storage.NewTrxMemoryDatabase(), 1024*1024, logrus.New())
}

func addr(b byte) common.Address {
	var a common.Address
	a[31] = b
	a[0] = 0xaa
	return a
}

func TestBalances(t *testing.T) {
	myassert := assert.New(t)
	s := newTestState()
	alice, bob := addr(1), addr(2)

	myassert.NoError(s.AddBalance(alice, big.NewInt(100)))
	myassert.NoError(s.Transfer(alice, bob, big.NewInt(30)))
	b, _ := s.Balance(alice)
	myassert.Equal(int64(70), b.Int64())
	b, _ = s.Balance(bob)
	myassert.Equal(int64(30), b.Int64())

	err := s.Transfer(bob, alice, big.NewInt(31))
	myassert.Equal(vmerr.OutOfFunds, vmerr.CodeOf(err))
}

func TestStagingRollback(t *testing.T) {
	myassert := assert.New(t)
	s := newTestState()
	sc := addr(3)

	s.BeginTransaction()
	myassert.NoError(s.SetStorage(sc, []byte("k"), []byte("v1")))
	myassert.NoError(s.EndTransaction(true))

	s.BeginTransaction()
	myassert.NoError(s.SetStorage(sc, []byte("k"), []byte("v2")))
	v, _ := s.Storage(sc, []byte("k"))
	myassert.Equal([]byte("v2"), v)
	myassert.NoError(s.EndTransaction(false))

	v, _ = s.Storage(sc, []byte("k"))
	myassert.Equal([]byte("v1"), v)

	myassert.NoError(s.SetStorage(sc, []byte("k"), nil))
	v, _ = s.Storage(sc, []byte("k"))
	myassert.Empty(v)
}

func TestCommittedStorageIgnoresStaging(t *testing.T) {
	myassert := assert.New(t)
	s := newTestState()
	sc := addr(4)
	myassert.NoError(s.SetStorage(sc, []byte("k"), []byte("committed")))

	s.BeginTransaction()
	myassert.NoError(s.SetStorage(sc, []byte("k"), []byte("staged")))
	v, err := s.CommittedStorage(sc, []byte("k"))
	myassert.NoError(err)
	myassert.Equal([]byte("committed"), v)
	v, _ = s.CommittedStorage(sc, []byte("k"))
	myassert.Equal([]byte("committed"), v)
	myassert.Equal(int64(1), s.ForeignCacheHits())

	v, _ = s.CommittedStorage(sc, []byte("missing"))
	myassert.Empty(v)
	myassert.NoError(s.EndTransaction(true))
}

func TestCodeAndOwner(t *testing.T) {
	myassert := assert.New(t)
	s := newTestState()
	creator := addr(7)
	sc := NewContractAddress(creator, 0)
	myassert.True(sc.IsSmartContract())
	myassert.Equal(creator.ShardOf(), sc.ShardOf())
	myassert.NotEqual(sc, NewContractAddress(creator, 1))

	myassert.NoError(s.SetCode(sc, []byte("code"), []byte{1, 0}, creator))
	code, _ := s.Code(sc)
	myassert.Equal([]byte("code"), code)
	owner, _ := s.Owner(sc)
	myassert.Equal(creator, owner)
	acc, found, _ := s.Account(sc)
	myassert.True(found)
	myassert.Equal(common.Keccak256([]byte("code")), acc.CodeHash)
	myassert.NoError(s.SetStorage(sc, []byte("k"), []byte("v")))

	myassert.NoError(s.DeleteAccount(sc))
	v, _ := s.Storage(sc, []byte("k"))
	myassert.Empty(v)
	code, _ = s.Code(sc)
	myassert.Nil(code)
	exists, _ := s.AccountExists(sc)
	myassert.False(exists)
}

func TestESDT(t *testing.T) {
	myassert := assert.New(t)
	s := newTestState()
	alice, bob := addr(1), addr(2)
	token := []byte("NFT-123456")

	nonce, err := s.NextNFTNonce(alice, token)
	myassert.NoError(err)
	myassert.Equal(uint64(1), nonce)
	myassert.NoError(s.SetESDT(alice, token, nonce, &ESDTData{
		Amount: big.NewInt(1), Name: []byte("first"), Attributes: []byte("attr"), URIs: [][]byte{[]byte("uri")},
	}))

	myassert.NoError(s.TransferESDT(alice, bob, token, nonce, big.NewInt(1)))
	data, _ := s.ESDT(bob, token, nonce)
	myassert.Equal(int64(1), data.Amount.Int64())
	myassert.Equal([]byte("first"), data.Name)
	myassert.Equal([][]byte{[]byte("uri")}, data.URIs)
	balance, _ := s.ESDTBalance(alice, token, nonce)
	myassert.Equal(0, balance.Sign())

	err = s.TransferESDT(alice, bob, token, nonce, big.NewInt(1))
	myassert.Equal(vmerr.OutOfFunds, vmerr.CodeOf(err))

	myassert.NoError(s.SetRoles(alice, token, 1|4))
	ok, _ := s.HasRole(alice, token, 4)
	myassert.True(ok)
	ok, _ = s.HasRole(alice, token, 2)
	myassert.False(ok)
	roles, _ := s.Roles(bob, token)
	myassert.Equal(uint64(0), roles)
}

func TestFrozenESDT(t *testing.T) {
	myassert := assert.New(t)
	s := newTestState()
	alice, bob := addr(1), addr(2)
	token := []byte("FNG-abcdef")

	myassert.NoError(s.AddESDT(alice, token, 0, big.NewInt(10)))
	data, _ := s.ESDT(alice, token, 0)
	data.SetFrozen(true)
	myassert.NoError(s.SetESDT(alice, token, 0, data))

	err := s.TransferESDT(alice, bob, token, 0, big.NewInt(1))
	myassert.True(vmerr.IsUser(err))
	data, _ = s.ESDT(alice, token, 0)
	myassert.True(data.Frozen())
	myassert.Equal(int64(10), data.Amount.Int64())
}
