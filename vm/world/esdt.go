package world

import (
	"math/big"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/vm/vmerr"
	"github.com/pkg/errors"
)

// ESDTData is the balance and metadata an account holds for one token nonce.
type ESDTData struct {
	Amount     *big.Int
	Flags      uint64
	Name       []byte
	Creator    []byte
	Royalties  uint64
	Hash       []byte
	Attributes []byte
	URIs       [][]byte
}

const flagFrozen = 1

func (d *ESDTData) Frozen() bool {
	return d.Flags&flagFrozen != 0
}

func (d *ESDTData) SetFrozen(frozen bool) {
	if frozen {
		d.Flags |= flagFrozen
	} else {
		d.Flags &^= flagFrozen
	}
}

func esdtKey(addr common.Address, tokenID []byte, nonce uint64) []byte {
	k := make([]byte, 0, len(addr)+4+len(tokenID)+8)
	k = append(k, addr[:]...)
	k = append(k, common.Int2Bytes(uint32(len(tokenID)))...)
	k = append(k, tokenID...)
	return append(k, common.Uint64ToBytes(nonce)...)
}

func tokenKey(addr common.Address, tokenID []byte) []byte {
	k := make([]byte, 0, len(addr)+len(tokenID))
	k = append(k, addr[:]...)
	return append(k, tokenID...)
}

// ESDT returns the token data of addr, a zero balance record when absent.
func (s *State) ESDT(addr common.Address, tokenID []byte, nonce uint64) (*ESDTData, error) {
	data := &ESDTData{}
	if _, err := s.getRecord(s.esdt, esdtKey(addr, tokenID, nonce), data); err != nil {
		return nil, err
	}
	if data.Amount == nil {
		data.Amount = new(big.Int)
	}
	return data, nil
}

// SetESDT stores token data. A record with zero balance is removed.
func (s *State) SetESDT(addr common.Address, tokenID []byte, nonce uint64, data *ESDTData) error {
	key := esdtKey(addr, tokenID, nonce)
	if data.Amount == nil || data.Amount.Sign() == 0 {
		if data.Flags == 0 {
			return errors.Wrap(s.esdt.Delete(key), "world: delete esdt")
		}
	}
	return s.putRecord(s.esdt, key, data)
}

func (s *State) ESDTBalance(addr common.Address, tokenID []byte, nonce uint64) (*big.Int, error) {
	data, err := s.ESDT(addr, tokenID, nonce)
	if err != nil {
		return nil, err
	}
	return data.Amount, nil
}

// AddESDT changes a token balance by delta. Going below zero fails with OutOfFunds.
func (s *State) AddESDT(addr common.Address, tokenID []byte, nonce uint64, delta *big.Int) error {
	data, err := s.ESDT(addr, tokenID, nonce)
	if err != nil {
		return err
	}
	amount := new(big.Int).Add(data.Amount, delta)
	if amount.Sign() < 0 {
		return vmerr.Failed(vmerr.OutOfFunds, "insufficient funds")
	}
	data.Amount = amount
	return s.SetESDT(addr, tokenID, nonce, data)
}

// TransferESDT moves amount of one token nonce, carrying the NFT metadata to
// the receiver. Frozen balances can't leave the sender.
func (s *State) TransferESDT(from, to common.Address, tokenID []byte, nonce uint64, amount *big.Int) error {
	if amount.Sign() < 0 {
		return vmerr.User("negative value")
	}
	src, err := s.ESDT(from, tokenID, nonce)
	if err != nil {
		return err
	}
	if src.Frozen() {
		return vmerr.User("ESDT is frozen for account")
	}
	if src.Amount.Cmp(amount) < 0 {
		return vmerr.Failed(vmerr.OutOfFunds, "insufficient funds")
	}
	if from == to {
		return nil
	}
	src.Amount = new(big.Int).Sub(src.Amount, amount)
	dst, err := s.ESDT(to, tokenID, nonce)
	if err != nil {
		return err
	}
	if nonce != 0 && dst.Amount.Sign() == 0 {
		flags := dst.Flags
		*dst = *src
		dst.Flags = flags
		dst.Amount = new(big.Int)
	}
	dst.Amount = new(big.Int).Add(dst.Amount, amount)
	if err = s.SetESDT(from, tokenID, nonce, src); err != nil {
		return err
	}
	return s.SetESDT(to, tokenID, nonce, dst)
}

// Roles returns the local role flags of addr for tokenID.
func (s *State) Roles(addr common.Address, tokenID []byte) (uint64, error) {
	var roles uint64
	_, err := s.getRecord(s.roles, tokenKey(addr, tokenID), &roles)
	return roles, err
}

func (s *State) SetRoles(addr common.Address, tokenID []byte, roles uint64) error {
	return s.putRecord(s.roles, tokenKey(addr, tokenID), roles)
}

// HasRole reports whether every bit of flag is granted.
func (s *State) HasRole(addr common.Address, tokenID []byte, flag uint64) (bool, error) {
	roles, err := s.Roles(addr, tokenID)
	if err != nil {
		return false, err
	}
	return flag != 0 && roles&flag == flag, nil
}

// LastNFTNonce is the nonce of the latest NFT addr created for tokenID.
func (s *State) LastNFTNonce(addr common.Address, tokenID []byte) (uint64, error) {
	var nonce uint64
	_, err := s.getRecord(s.nftNonce, tokenKey(addr, tokenID), &nonce)
	return nonce, err
}

// NextNFTNonce reserves the next NFT nonce.
func (s *State) NextNFTNonce(addr common.Address, tokenID []byte) (uint64, error) {
	nonce, err := s.LastNFTNonce(addr, tokenID)
	if err != nil {
		return 0, err
	}
	nonce++
	return nonce, s.putRecord(s.nftNonce, tokenKey(addr, tokenID), nonce)
}
