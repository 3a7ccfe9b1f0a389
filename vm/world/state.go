// Package world is the account state a contract call reads and writes:
// balances, code, contract storage and ESDT tokens, staged in stacked
// transactions over a db/storage database.
package world

import (
	"math/big"

	"github.com/coocood/freecache"
	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/common/constants"
	"github.com/coschain/vmhooks/db/storage"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	nsAccounts = "account"
	nsCode     = "code"
	nsStorage  = "storage"
	nsESDT     = "esdt"
	nsRoles    = "roles"
	nsNFTNonce = "nftnonce"
)

// Account is the persisted record of an address.
type Account struct {
	Nonce        uint64
	Balance      *big.Int
	Owner        []byte
	CodeMetadata []byte
	CodeHash     []byte
}

// State is the world view of one transaction executor. It is not safe for
// concurrent use.
type State struct {
	db       storage.TrxDatabase
	accounts *storage.Namespace
	code     *storage.Namespace
	storage  *storage.Namespace
	esdt     *storage.Namespace
	roles    *storage.Namespace
	nftNonce *storage.Namespace

	// committed foreign storage reads of the running transaction
	foreign *freecache.Cache
	log     *logrus.Logger
}

func NewState(db storage.TrxDatabase, foreignCacheSize int, logger *logrus.Logger) *State {
	return &State{
		db:       db,
		accounts: storage.NewNamespace(db, nsAccounts),
		code:     storage.NewNamespace(db, nsCode),
		storage:  storage.NewNamespace(db, nsStorage),
		esdt:     storage.NewNamespace(db, nsESDT),
		roles:    storage.NewNamespace(db, nsRoles),
		nftNonce: storage.NewNamespace(db, nsNFTNonce),
		foreign:  freecache.NewCache(foreignCacheSize),
		log:      logger,
	}
}

// BeginTransaction opens a staging level. Opening the outermost level starts a
// new transaction and drops cached foreign reads.
func (s *State) BeginTransaction() {
	if s.db.TransactionHeight() == 0 {
		s.foreign.Clear()
	}
	s.db.BeginTransaction()
}

// EndTransaction merges the top staging level into the one below, or drops it.
func (s *State) EndTransaction(commit bool) error {
	return errors.Wrap(s.db.EndTransaction(commit), "world: end transaction")
}

func (s *State) TransactionHeight() uint {
	return s.db.TransactionHeight()
}

func (s *State) getRecord(ns *storage.Namespace, key []byte, record interface{}) (bool, error) {
	data, err := ns.Get(key)
	if err == storage.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "world: read %s", ns.Name())
	}
	if err = rlp.DecodeBytes(data, record); err != nil {
		return false, errors.Wrapf(err, "world: decode %s record", ns.Name())
	}
	return true, nil
}

func (s *State) putRecord(ns *storage.Namespace, key []byte, record interface{}) error {
	data, err := rlp.EncodeToBytes(record)
	if err != nil {
		return errors.Wrapf(err, "world: encode %s record", ns.Name())
	}
	return errors.Wrapf(ns.Put(key, data), "world: write %s", ns.Name())
}

// Account returns the record of addr and whether it exists. Missing accounts
// come back as an empty record.
func (s *State) Account(addr common.Address) (*Account, bool, error) {
	acc := &Account{}
	found, err := s.getRecord(s.accounts, addr.Bytes(), acc)
	if err != nil {
		return nil, false, err
	}
	if acc.Balance == nil {
		acc.Balance = new(big.Int)
	}
	return acc, found, nil
}

func (s *State) SetAccount(addr common.Address, acc *Account) error {
	return s.putRecord(s.accounts, addr.Bytes(), acc)
}

func (s *State) AccountExists(addr common.Address) (bool, error) {
	return s.accounts.Has(addr.Bytes())
}

// DeleteAccount removes the account record, its code and its storage. Tokens
// are left for the protocol to clean up.
func (s *State) DeleteAccount(addr common.Address) error {
	if err := s.accounts.Delete(addr.Bytes()); err != nil {
		return errors.Wrap(err, "world: delete account")
	}
	if err := s.code.Delete(addr.Bytes()); err != nil {
		return errors.Wrap(err, "world: delete code")
	}
	_, err := storage.DeletePrefix(s.storage, addr.Bytes())
	return errors.Wrap(err, "world: delete storage")
}

func (s *State) Balance(addr common.Address) (*big.Int, error) {
	acc, _, err := s.Account(addr)
	if err != nil {
		return nil, err
	}
	return acc.Balance, nil
}

// AddBalance changes the EGLD balance by delta. A negative result fails with OutOfFunds.
func (s *State) AddBalance(addr common.Address, delta *big.Int) error {
	acc, _, err := s.Account(addr)
	if err != nil {
		return err
	}
	balance := new(big.Int).Add(acc.Balance, delta)
	if balance.Sign() < 0 {
		return vmerr.Failed(vmerr.OutOfFunds, "insufficient funds")
	}
	acc.Balance = balance
	return s.SetAccount(addr, acc)
}

// Transfer moves EGLD between two accounts.
func (s *State) Transfer(from, to common.Address, amount *big.Int) error {
	if amount == nil || amount.Sign() == 0 {
		return nil
	}
	if amount.Sign() < 0 {
		return vmerr.User("negative transfer value")
	}
	if err := s.AddBalance(from, new(big.Int).Neg(amount)); err != nil {
		return err
	}
	return s.AddBalance(to, amount)
}

// IncrementNonce bumps the account nonce and returns the value before the bump.
func (s *State) IncrementNonce(addr common.Address) (uint64, error) {
	acc, _, err := s.Account(addr)
	if err != nil {
		return 0, err
	}
	nonce := acc.Nonce
	acc.Nonce++
	return nonce, s.SetAccount(addr, acc)
}

func (s *State) Code(addr common.Address) ([]byte, error) {
	code, err := s.code.Get(addr.Bytes())
	if err == storage.ErrNotFound {
		return nil, nil
	}
	return code, errors.Wrap(err, "world: read code")
}

// SetCode installs code and metadata on addr. The owner is kept when the
// account already has one.
func (s *State) SetCode(addr common.Address, code, metadata []byte, owner common.Address) error {
	acc, _, err := s.Account(addr)
	if err != nil {
		return err
	}
	if len(acc.Owner) == 0 {
		acc.Owner = owner.Bytes()
	}
	acc.CodeMetadata = common.CopyBytes(metadata)
	acc.CodeHash = common.Keccak256(code)
	if err = s.SetAccount(addr, acc); err != nil {
		return err
	}
	return errors.Wrap(s.code.Put(addr.Bytes(), code), "world: write code")
}

func (s *State) Owner(addr common.Address) (common.Address, error) {
	acc, _, err := s.Account(addr)
	if err != nil {
		return common.ZeroAddress, err
	}
	return common.BytesToAddress(acc.Owner), nil
}

func (s *State) SetOwner(addr, owner common.Address) error {
	acc, _, err := s.Account(addr)
	if err != nil {
		return err
	}
	acc.Owner = owner.Bytes()
	return s.SetAccount(addr, acc)
}

// NewContractAddress derives the address of the next contract deployed by
// creator: keccak256(creator || nonce) behind the contract marker and VM type,
// ending with the creator's last byte so both share a shard.
func NewContractAddress(creator common.Address, nonce uint64) common.Address {
	hash := common.Keccak256(creator.Bytes(), common.Uint64ToBytes(nonce))
	var addr common.Address
	copy(addr[:], hash)
	for i := 0; i < constants.SCAddressMarkerLength; i++ {
		addr[i] = 0
	}
	copy(addr[constants.SCAddressMarkerLength:], constants.VMType)
	addr[len(addr)-1] = creator[len(creator)-1]
	return addr
}

func storageKey(addr common.Address, key []byte) []byte {
	k := make([]byte, 0, len(addr)+len(key))
	k = append(k, addr[:]...)
	return append(k, key...)
}

// Storage reads a contract storage slot through the staged view. Missing keys
// read as empty.
func (s *State) Storage(addr common.Address, key []byte) ([]byte, error) {
	value, err := s.storage.Get(storageKey(addr, key))
	if err == storage.ErrNotFound {
		return []byte{}, nil
	}
	return value, errors.Wrap(err, "world: read storage")
}

// SetStorage writes a slot. An empty value deletes it.
func (s *State) SetStorage(addr common.Address, key, value []byte) error {
	k := storageKey(addr, key)
	if len(value) == 0 {
		return errors.Wrap(s.storage.Delete(k), "world: delete storage")
	}
	return errors.Wrap(s.storage.Put(k, value), "world: write storage")
}

// CommittedStorage reads a slot of another account from the state committed
// before the running transaction started.
func (s *State) CommittedStorage(addr common.Address, key []byte) ([]byte, error) {
	k := storageKey(addr, key)
	if cached, err := s.foreign.Get(k); err == nil {
		return cached, nil
	}
	value, err := s.storage.GetFrom(s.db.CleanRead(), k)
	if err == storage.ErrNotFound {
		value, err = []byte{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "world: read committed storage")
	}
	if err := s.foreign.Set(k, value, 0); err != nil {
		s.log.Debugf("world: foreign read of %d bytes not cached: %v", len(value), err)
	}
	return value, nil
}

// ForeignCacheHits reports how many foreign reads were served from the cache.
func (s *State) ForeignCacheHits() int64 {
	return s.foreign.HitCount()
}
