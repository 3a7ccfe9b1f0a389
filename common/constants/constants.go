package constants

const (
	AddressLength         = 32
	SCAddressMarkerLength = 8
	NumShards             = 3

	HashLength = 32

	// storage keys starting with this prefix belong to the protocol
	ReservedStorageKeyPrefix = "ELROND"

	InitFunctionName     = "init"
	UpgradeFunctionName  = "upgrade"
	CallbackFunctionName = "callBack"

	CodeMetadataLength = 2
	VMTypeLength       = 2

	MaxCallDepth = 20

	// zero nonce is a fungible token
	FungibleNonce = 0
)

// VMType tags contract addresses created by this VM, right after the marker.
var VMType = []byte{5, 0}

// builtin function names
const (
	BuiltInESDTLocalMint           = "ESDTLocalMint"
	BuiltInESDTLocalBurn           = "ESDTLocalBurn"
	BuiltInMultiESDTNFTTransfer    = "MultiESDTNFTTransfer"
	BuiltInESDTNFTTransfer         = "ESDTNFTTransfer"
	BuiltInESDTNFTCreate           = "ESDTNFTCreate"
	BuiltInESDTNFTAddQuantity      = "ESDTNFTAddQuantity"
	BuiltInESDTNFTAddURI           = "ESDTNFTAddURI"
	BuiltInESDTNFTUpdateAttributes = "ESDTNFTUpdateAttributes"
	BuiltInESDTNFTBurn             = "ESDTNFTBurn"
	BuiltInESDTTransfer            = "ESDTTransfer"
	BuiltInChangeOwnerAddress      = "ChangeOwnerAddress"
	BuiltInClaimDeveloperRewards   = "ClaimDeveloperRewards"
	BuiltInSetUserName             = "SetUserName"
	BuiltInMigrateUserName         = "migrateUserName"
	BuiltInDeleteUserName          = "DeleteUserName"
	BuiltInUpgradeContract         = "upgradeContract"
)

// ESDT local role names, in flag bit order
const (
	RoleLocalMint           = "ESDTRoleLocalMint"
	RoleLocalBurn           = "ESDTRoleLocalBurn"
	RoleNFTCreate           = "ESDTRoleNFTCreate"
	RoleNFTAddQuantity      = "ESDTRoleNFTAddQuantity"
	RoleNFTBurn             = "ESDTRoleNFTBurn"
	RoleNFTAddURI           = "ESDTRoleNFTAddURI"
	RoleNFTUpdateAttributes = "ESDTRoleNFTUpdateAttributes"
	RoleTransfer            = "ESDTTransferRole"
	RoleSetNewURI           = "ESDTSetNewURI"
	RoleModifyRoyalties     = "ESDTRoleModifyRoyalties"
	RoleModifyCreator       = "ESDTRoleModifyCreator"
	RoleNFTRecreate         = "ESDTRoleNFTRecreate"
)

var RoleNames = []string{
	RoleLocalMint,
	RoleLocalBurn,
	RoleNFTCreate,
	RoleNFTAddQuantity,
	RoleNFTBurn,
	RoleNFTAddURI,
	RoleNFTUpdateAttributes,
	RoleTransfer,
	RoleSetNewURI,
	RoleModifyRoyalties,
	RoleModifyCreator,
	RoleNFTRecreate,
}

// RoleFlag returns the bit of the given role name, 0 for unknown roles.
func RoleFlag(role string) uint64 {
	for i, name := range RoleNames {
		if name == role {
			return 1 << uint(i)
		}
	}
	return 0
}

// event bus topics published by the vm service
const (
	NoticeCallResult   = "vm_call_result"
	NoticeActionResult = "vm_action_result"
)
