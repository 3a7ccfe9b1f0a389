package vmcontext

import (
	"encoding/binary"
	"math/big"

	"github.com/coschain/vmhooks/vm/vmerr"
)

// EncodeTransfers serializes transfers as
// (len u32)(token id)(nonce u64)(len u32)(amount, unsigned big-endian) per item.
func EncodeTransfers(transfers []ESDTTransfer) []byte {
	var out []byte
	for _, t := range transfers {
		out = binary.BigEndian.AppendUint32(out, uint32(len(t.TokenID)))
		out = append(out, t.TokenID...)
		out = binary.BigEndian.AppendUint64(out, t.Nonce)
		amount := t.Amount.Bytes()
		out = binary.BigEndian.AppendUint32(out, uint32(len(amount)))
		out = append(out, amount...)
	}
	return out
}

func DecodeTransfers(data []byte) ([]ESDTTransfer, error) {
	var transfers []ESDTTransfer
	errMalformed := vmerr.User("malformed token transfer list")
	next := func(n int) ([]byte, bool) {
		if n < 0 || len(data) < n {
			return nil, false
		}
		chunk := data[:n]
		data = data[n:]
		return chunk, true
	}
	for len(data) > 0 {
		lenBytes, ok := next(4)
		if !ok {
			return nil, errMalformed
		}
		tokenID, ok := next(int(binary.BigEndian.Uint32(lenBytes)))
		if !ok {
			return nil, errMalformed
		}
		nonce, ok := next(8)
		if !ok {
			return nil, errMalformed
		}
		if lenBytes, ok = next(4); !ok {
			return nil, errMalformed
		}
		amount, ok := next(int(binary.BigEndian.Uint32(lenBytes)))
		if !ok {
			return nil, errMalformed
		}
		transfers = append(transfers, ESDTTransfer{
			TokenID: append([]byte{}, tokenID...),
			Nonce:   binary.BigEndian.Uint64(nonce),
			Amount:  new(big.Int).SetBytes(amount),
		})
	}
	return transfers, nil
}
