package hooks

import (
	"encoding/hex"

	"github.com/coschain/vmhooks/common"
	"github.com/coschain/vmhooks/vm/vmerr"
)

// GetESDTLocalRoles returns the role flags the running contract holds for the token.
func (vh *VMHooks) GetESDTLocalRoles(tokenHandle int32) (int64, error) {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return 0, err
	}
	tokenID, err := vh.buffer(tokenHandle)
	if err != nil {
		return 0, err
	}
	roles, err := vh.state.Roles(vh.ctx.SCAddress(), tokenID)
	return int64(roles), err
}

func (vh *VMHooks) GetCurrentESDTNFTNonce(addressPtr int32, tokenPtr int32, tokenLen int32) (int64, error) {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return 0, err
	}
	addr, err := vh.loadAddress(addressPtr)
	if err != nil {
		return 0, err
	}
	tokenID, err := vh.load(tokenPtr, tokenLen)
	if err != nil {
		return 0, err
	}
	nonce, err := vh.state.LastNFTNonce(addr, tokenID)
	return int64(nonce), err
}

// ManagedGetESDTTokenData fills the output handles from the token record.
// Nothing is written when the account holds no such token.
func (vh *VMHooks) ManagedGetESDTTokenData(addressHandle, tokenHandle int32, nonce int64,
	valueHandle, propertiesHandle, hashHandle, nameHandle, attributesHandle, creatorHandle, royaltiesHandle, urisHandle int32) error {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return err
	}
	addr, err := vh.bufferAddress(addressHandle)
	if err != nil {
		return err
	}
	tokenID, err := vh.buffer(tokenHandle)
	if err != nil {
		return err
	}
	data, err := vh.state.ESDT(addr, tokenID, uint64(nonce))
	if err != nil {
		return err
	}
	if data.Amount.Sign() == 0 && data.Flags == 0 {
		return nil
	}
	vh.heap.SetBigInt(valueHandle, data.Amount)
	properties := []byte{0, 0}
	if data.Frozen() {
		properties[0] = 1
	}
	vh.heap.SetBuffer(propertiesHandle, properties)
	vh.heap.SetBuffer(hashHandle, data.Hash)
	vh.heap.SetBuffer(nameHandle, data.Name)
	vh.heap.SetBuffer(attributesHandle, data.Attributes)
	creator := data.Creator
	if len(creator) == 0 {
		creator = common.ZeroAddress.Bytes()
	}
	vh.heap.SetBuffer(creatorHandle, creator)
	vh.heap.BigIntSetInt64(royaltiesHandle, int64(data.Royalties))
	return vh.setBufferList(urisHandle, data.URIs)
}

func (vh *VMHooks) ManagedIsESDTFrozen(addressHandle, tokenHandle int32, nonce int64) (int32, error) {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return 0, err
	}
	addr, err := vh.bufferAddress(addressHandle)
	if err != nil {
		return 0, err
	}
	tokenID, err := vh.buffer(tokenHandle)
	if err != nil {
		return 0, err
	}
	data, err := vh.state.ESDT(addr, tokenID, uint64(nonce))
	if err != nil {
		return 0, err
	}
	return boolToInt32(data.Frozen()), nil
}

// ManagedIsESDTLimitedTransfer is always false, token properties are not tracked.
func (vh *VMHooks) ManagedIsESDTLimitedTransfer(tokenHandle int32) (int32, error) {
	return 0, vh.useGas(vh.gas.ContextGet)
}

// ManagedIsESDTPaused is always false, token properties are not tracked.
func (vh *VMHooks) ManagedIsESDTPaused(tokenHandle int32) (int32, error) {
	return 0, vh.useGas(vh.gas.ContextGet)
}

func (vh *VMHooks) ManagedGetCodeMetadata(addressHandle int32, dst int32) error {
	if err := vh.useGas(vh.gas.StorageLoad); err != nil {
		return err
	}
	addr, err := vh.bufferAddress(addressHandle)
	if err != nil {
		return err
	}
	acc, found, err := vh.state.Account(addr)
	if err != nil {
		return err
	}
	if !found {
		return vmerr.Fatal(vmerr.ExecutionFailed, "account not found: "+hex.EncodeToString(addr.Bytes()))
	}
	vh.heap.SetBuffer(dst, acc.CodeMetadata)
	return nil
}

func (vh *VMHooks) ManagedIsBuiltinFunction(nameHandle int32) (int32, error) {
	if err := vh.useGas(vh.gas.ContextGet); err != nil {
		return 0, err
	}
	name, err := vh.buffer(nameHandle)
	if err != nil {
		return 0, err
	}
	return boolToInt32(vh.builtins.IsBuiltin(string(name))), nil
}
