package common

import (
	"encoding/hex"

	"github.com/coschain/vmhooks/common/constants"
)

// Address is the 32-byte account identifier used on the hook boundary.
type Address [constants.AddressLength]byte

var ZeroAddress Address

// BytesToAddress copies b into an Address. Longer inputs keep the last 32 bytes,
// shorter inputs are left-padded with zeros.
func BytesToAddress(b []byte) (a Address) {
	if len(b) > len(a) {
		b = b[len(b)-len(a):]
	}
	copy(a[len(a)-len(b):], b)
	return
}

func (a Address) Bytes() []byte {
	return a[:]
}

func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

func (a Address) String() string {
	return a.Hex()
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// IsSmartContract tells contract addresses apart from user addresses: contracts
// start with an 8-byte zero marker.
func (a Address) IsSmartContract() bool {
	for i := 0; i < constants.SCAddressMarkerLength; i++ {
		if a[i] != 0 {
			return false
		}
	}
	return true
}

// ShardOf maps an address to its shard by the last byte.
func (a Address) ShardOf() uint32 {
	return uint32(a[len(a)-1]) % constants.NumShards
}
