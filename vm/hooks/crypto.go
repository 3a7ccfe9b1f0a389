package hooks

import (
	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/vm/vmerr"
	"golang.org/x/crypto/ed25519"
)

func (vh *VMHooks) hashInto(cost uint64, in, out int32, hash func([]byte) []byte) (int32, error) {
	if err := vh.useGas(cost); err != nil {
		return 0, err
	}
	data, err := vh.buffer(in)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(data)); err != nil {
		return 0, err
	}
	vh.heap.SetBuffer(out, hash(data))
	return 0, nil
}

func (vh *VMHooks) ManagedSha256(in int32, out int32) (int32, error) {
	return vh.hashInto(vh.gas.Sha256, in, out, common.Sha256)
}

func (vh *VMHooks) ManagedKeccak256(in int32, out int32) (int32, error) {
	return vh.hashInto(vh.gas.Keccak256, in, out, func(data []byte) []byte {
		return common.Keccak256(data)
	})
}

// ManagedVerifyEd25519 returns 0 for a valid signature and signals a user
// error otherwise.
func (vh *VMHooks) ManagedVerifyEd25519(keyHandle, msgHandle, sigHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.VerifyEd25519); err != nil {
		return 0, err
	}
	key, err := vh.buffer(keyHandle)
	if err != nil {
		return 0, err
	}
	msg, err := vh.buffer(msgHandle)
	if err != nil {
		return 0, err
	}
	sig, err := vh.buffer(sigHandle)
	if err != nil {
		return 0, err
	}
	if err := vh.useGasForBytes(len(msg)); err != nil {
		return 0, err
	}
	if len(key) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return 0, vmerr.User("invalid signature")
	}
	if !ed25519.Verify(ed25519.PublicKey(key), msg, sig) {
		return 0, vmerr.User("invalid signature")
	}
	return 0, nil
}
