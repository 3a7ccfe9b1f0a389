package vmcontext

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Random is a deterministic byte stream keyed by the block random seed and the
// transaction hash. Every Next call starts a new sub-stream numbered by the
// invocation count, so the output depends only on those three inputs.
type Random struct {
	key         [blake2b.Size256]byte
	invocations uint64
}

func NewRandom(randomSeed, txHash []byte) *Random {
	h, _ := blake2b.New256(nil)
	h.Write(randomSeed)
	h.Write(txHash)
	r := &Random{}
	copy(r.key[:], h.Sum(nil))
	return r
}

// Next returns n pseudo random bytes.
func (r *Random) Next(n int) []byte {
	out := make([]byte, 0, n+blake2b.Size256)
	var block [12]byte
	binary.BigEndian.PutUint64(block[:8], r.invocations)
	r.invocations++
	for counter := uint32(0); len(out) < n; counter++ {
		binary.BigEndian.PutUint32(block[8:], counter)
		mac, _ := blake2b.New256(r.key[:])
		mac.Write(block[:])
		out = mac.Sum(out)
	}
	return out[:n]
}
