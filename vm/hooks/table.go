package hooks

// ValueType is a wasm value type on the hook boundary. Pointers and lengths
// are I32.
type ValueType byte

const (
	None ValueType = iota
	I32
	I64
)

func (t ValueType) String() string {
	switch t {
	case I32:
		return "i32"
	case I64:
		return "i64"
	default:
		return "()"
	}
}

// Hook describes one import of the env module. Its ID is its index in Table.
type Hook struct {
	ID          int
	Name        string
	Params      []ValueType
	Result      ValueType
	Unavailable bool
}

// Table lists every hook in ABI order. The order is part of the ABI: never
// reorder or remove entries.
var Table = []Hook{
	{Name: "getGasLeft", Result: I64},
	{Name: "getSCAddress", Params: []ValueType{I32}, Unavailable: true},
	{Name: "getOwnerAddress", Params: []ValueType{I32}, Unavailable: true},
	{Name: "getShardOfAddress", Params: []ValueType{I32}, Result: I32},
	{Name: "isSmartContract", Params: []ValueType{I32}, Result: I32},
	{Name: "signalError", Params: []ValueType{I32, I32}},
	{Name: "getExternalBalance", Params: []ValueType{I32, I32}, Unavailable: true},
	{Name: "getBlockHash", Params: []ValueType{I64, I32}, Result: I32, Unavailable: true},
	{Name: "getESDTBalance", Params: []ValueType{I32, I32, I32, I64, I32}, Result: I32, Unavailable: true},
	{Name: "getESDTNFTNameLength", Params: []ValueType{I32, I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "getESDTNFTAttributeLength", Params: []ValueType{I32, I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "getESDTNFTURILength", Params: []ValueType{I32, I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "getESDTTokenData", Params: []ValueType{I32, I32, I32, I64, I32, I32, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "getESDTLocalRoles", Params: []ValueType{I32}, Result: I64},
	{Name: "validateTokenIdentifier", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "transferValue", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "transferValueExecute", Params: []ValueType{I32, I32, I64, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "transferESDTExecute", Params: []ValueType{I32, I32, I32, I32, I64, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "transferESDTNFTExecute", Params: []ValueType{I32, I32, I32, I32, I64, I64, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "multiTransferESDTNFTExecute", Params: []ValueType{I32, I32, I32, I32, I64, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "createAsyncCall", Params: []ValueType{I32, I32, I32, I32, I32, I32, I32, I32, I64, I64}, Result: I32, Unavailable: true},
	{Name: "setAsyncContextCallback", Params: []ValueType{I32, I32, I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "upgradeContract", Params: []ValueType{I32, I64, I32, I32, I32, I32, I32, I32, I32}, Unavailable: true},
	{Name: "upgradeFromSourceContract", Params: []ValueType{I32, I64, I32, I32, I32, I32, I32, I32}, Unavailable: true},
	{Name: "deleteContract", Params: []ValueType{I32, I64, I32, I32, I32}, Unavailable: true},
	{Name: "asyncCall", Params: []ValueType{I32, I32, I32, I32}, Unavailable: true},
	{Name: "getArgumentLength", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getArgument", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "getFunction", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getNumArguments", Result: I32},
	{Name: "storageStore", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "storageLoadLength", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "storageLoadFromAddress", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "storageLoad", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "setStorageLock", Params: []ValueType{I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "getStorageLock", Params: []ValueType{I32, I32}, Result: I64, Unavailable: true},
	{Name: "isStorageLocked", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "clearStorageLock", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "getCaller", Params: []ValueType{I32}, Unavailable: true},
	{Name: "checkNoPayment"},
	{Name: "getCallValue", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getESDTValue", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getESDTValueByIndex", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "getESDTTokenName", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getESDTTokenNameByIndex", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "getESDTTokenNonce", Result: I64, Unavailable: true},
	{Name: "getESDTTokenNonceByIndex", Params: []ValueType{I32}, Result: I64, Unavailable: true},
	{Name: "getCurrentESDTNFTNonce", Params: []ValueType{I32, I32, I32}, Result: I64},
	{Name: "getESDTTokenType", Result: I32, Unavailable: true},
	{Name: "getESDTTokenTypeByIndex", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getNumESDTTransfers", Result: I32},
	{Name: "getCallValueTokenName", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "getCallValueTokenNameByIndex", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "writeLog", Params: []ValueType{I32, I32, I32, I32}, Unavailable: true},
	{Name: "writeEventLog", Params: []ValueType{I32, I32, I32, I32, I32}, Unavailable: true},
	{Name: "getBlockTimestamp", Result: I64},
	{Name: "getBlockNonce", Result: I64},
	{Name: "getBlockRound", Result: I64},
	{Name: "getBlockEpoch", Result: I64},
	{Name: "getBlockRandomSeed", Params: []ValueType{I32}, Unavailable: true},
	{Name: "getStateRootHash", Params: []ValueType{I32}, Unavailable: true},
	{Name: "getPrevBlockTimestamp", Result: I64},
	{Name: "getPrevBlockNonce", Result: I64},
	{Name: "getPrevBlockRound", Result: I64},
	{Name: "getPrevBlockEpoch", Result: I64},
	{Name: "getPrevBlockRandomSeed", Params: []ValueType{I32}, Unavailable: true},
	{Name: "finish", Params: []ValueType{I32, I32}},
	{Name: "executeOnSameContext", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "executeOnDestContext", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "executeReadOnly", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "createContract", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "deployFromSourceContract", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "getNumReturnData", Result: I32, Unavailable: true},
	{Name: "getReturnDataSize", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getReturnData", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "cleanReturnData"},
	{Name: "deleteFromReturnData", Params: []ValueType{I32}},
	{Name: "getOriginalTxHash", Params: []ValueType{I32}, Unavailable: true},
	{Name: "getCurrentTxHash", Params: []ValueType{I32}, Unavailable: true},
	{Name: "getPrevTxHash", Params: []ValueType{I32}, Unavailable: true},
	{Name: "managedSCAddress", Params: []ValueType{I32}},
	{Name: "managedOwnerAddress", Params: []ValueType{I32}},
	{Name: "managedCaller", Params: []ValueType{I32}},
	{Name: "managedSignalError", Params: []ValueType{I32}},
	{Name: "managedWriteLog", Params: []ValueType{I32, I32}},
	{Name: "managedGetOriginalTxHash", Params: []ValueType{I32}},
	{Name: "managedGetStateRootHash", Params: []ValueType{I32}, Unavailable: true},
	{Name: "managedGetBlockRandomSeed", Params: []ValueType{I32}},
	{Name: "managedGetPrevBlockRandomSeed", Params: []ValueType{I32}},
	{Name: "managedGetReturnData", Params: []ValueType{I32, I32}, Unavailable: true},
	{Name: "managedGetMultiESDTCallValue", Params: []ValueType{I32}},
	{Name: "managedGetESDTBalance", Params: []ValueType{I32, I32, I64, I32}, Unavailable: true},
	{Name: "managedGetESDTTokenData", Params: []ValueType{I32, I32, I64, I32, I32, I32, I32, I32, I32, I32, I32}},
	{Name: "managedGetBackTransfers", Params: []ValueType{I32, I32}},
	{Name: "managedAsyncCall", Params: []ValueType{I32, I32, I32, I32}},
	{Name: "managedCreateAsyncCall", Params: []ValueType{I32, I32, I32, I32, I32, I32, I32, I32, I64, I64, I32}, Result: I32},
	{Name: "managedGetCallbackClosure", Params: []ValueType{I32}},
	{Name: "managedUpgradeFromSourceContract", Params: []ValueType{I32, I64, I32, I32, I32, I32, I32}},
	{Name: "managedUpgradeContract", Params: []ValueType{I32, I64, I32, I32, I32, I32, I32}},
	{Name: "managedDeleteContract", Params: []ValueType{I32, I64, I32}, Unavailable: true},
	{Name: "managedDeployFromSourceContract", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32}, Result: I32},
	{Name: "managedCreateContract", Params: []ValueType{I64, I32, I32, I32, I32, I32, I32}, Result: I32},
	{Name: "managedExecuteReadOnly", Params: []ValueType{I64, I32, I32, I32, I32}, Result: I32},
	{Name: "managedExecuteOnSameContext", Params: []ValueType{I64, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedExecuteOnDestContext", Params: []ValueType{I64, I32, I32, I32, I32, I32}, Result: I32},
	{Name: "managedMultiTransferESDTNFTExecute", Params: []ValueType{I32, I32, I64, I32, I32}, Result: I32},
	{Name: "managedTransferValueExecute", Params: []ValueType{I32, I32, I64, I32, I32}, Result: I32},
	{Name: "managedIsESDTFrozen", Params: []ValueType{I32, I32, I64}, Result: I32},
	{Name: "managedIsESDTLimitedTransfer", Params: []ValueType{I32}, Result: I32},
	{Name: "managedIsESDTPaused", Params: []ValueType{I32}, Result: I32},
	{Name: "managedBufferToHex", Params: []ValueType{I32, I32}},
	{Name: "managedGetCodeMetadata", Params: []ValueType{I32, I32}},
	{Name: "managedIsBuiltinFunction", Params: []ValueType{I32}, Result: I32},
	{Name: "bigFloatNewFromParts", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "bigFloatNewFromFrac", Params: []ValueType{I64, I64}, Result: I32},
	{Name: "bigFloatNewFromSci", Params: []ValueType{I64, I64}, Result: I32},
	{Name: "bigFloatAdd", Params: []ValueType{I32, I32, I32}},
	{Name: "bigFloatSub", Params: []ValueType{I32, I32, I32}},
	{Name: "bigFloatMul", Params: []ValueType{I32, I32, I32}},
	{Name: "bigFloatDiv", Params: []ValueType{I32, I32, I32}},
	{Name: "bigFloatNeg", Params: []ValueType{I32, I32}},
	{Name: "bigFloatClone", Params: []ValueType{I32, I32}},
	{Name: "bigFloatCmp", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "bigFloatAbs", Params: []ValueType{I32, I32}},
	{Name: "bigFloatSign", Params: []ValueType{I32}, Result: I32},
	{Name: "bigFloatSqrt", Params: []ValueType{I32, I32}},
	{Name: "bigFloatPow", Params: []ValueType{I32, I32, I32}},
	{Name: "bigFloatFloor", Params: []ValueType{I32, I32}},
	{Name: "bigFloatCeil", Params: []ValueType{I32, I32}},
	{Name: "bigFloatTruncate", Params: []ValueType{I32, I32}},
	{Name: "bigFloatSetInt64", Params: []ValueType{I32, I64}},
	{Name: "bigFloatIsInt", Params: []ValueType{I32}, Result: I32},
	{Name: "bigFloatSetBigInt", Params: []ValueType{I32, I32}},
	{Name: "bigFloatGetConstPi", Params: []ValueType{I32}},
	{Name: "bigFloatGetConstE", Params: []ValueType{I32}},
	{Name: "bigIntGetUnsignedArgument", Params: []ValueType{I32, I32}},
	{Name: "bigIntGetSignedArgument", Params: []ValueType{I32, I32}},
	{Name: "bigIntStorageStoreUnsigned", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "bigIntStorageLoadUnsigned", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "bigIntGetCallValue", Params: []ValueType{I32}},
	{Name: "bigIntGetESDTCallValue", Params: []ValueType{I32}, Unavailable: true},
	{Name: "bigIntGetESDTCallValueByIndex", Params: []ValueType{I32, I32}, Unavailable: true},
	{Name: "bigIntGetExternalBalance", Params: []ValueType{I32, I32}},
	{Name: "bigIntGetESDTExternalBalance", Params: []ValueType{I32, I32, I32, I64, I32}},
	{Name: "bigIntNew", Params: []ValueType{I64}, Result: I32},
	{Name: "bigIntUnsignedByteLength", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "bigIntSignedByteLength", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "bigIntGetUnsignedBytes", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "bigIntGetSignedBytes", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "bigIntSetUnsignedBytes", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntSetSignedBytes", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntIsInt64", Params: []ValueType{I32}, Result: I32},
	{Name: "bigIntGetInt64", Params: []ValueType{I32}, Result: I64},
	{Name: "bigIntSetInt64", Params: []ValueType{I32, I64}},
	{Name: "bigIntAdd", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntSub", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntMul", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntTDiv", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntTMod", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntEDiv", Params: []ValueType{I32, I32, I32}, Unavailable: true},
	{Name: "bigIntEMod", Params: []ValueType{I32, I32, I32}, Unavailable: true},
	{Name: "bigIntSqrt", Params: []ValueType{I32, I32}},
	{Name: "bigIntPow", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntLog2", Params: []ValueType{I32}, Result: I32},
	{Name: "bigIntAbs", Params: []ValueType{I32, I32}},
	{Name: "bigIntNeg", Params: []ValueType{I32, I32}},
	{Name: "bigIntSign", Params: []ValueType{I32}, Result: I32},
	{Name: "bigIntCmp", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "bigIntNot", Params: []ValueType{I32, I32}, Unavailable: true},
	{Name: "bigIntAnd", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntOr", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntXor", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntShr", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntShl", Params: []ValueType{I32, I32, I32}},
	{Name: "bigIntFinishUnsigned", Params: []ValueType{I32}},
	{Name: "bigIntFinishSigned", Params: []ValueType{I32}},
	{Name: "bigIntToString", Params: []ValueType{I32, I32}},
	{Name: "mBufferNew", Result: I32},
	{Name: "mBufferNewFromBytes", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferGetLength", Params: []ValueType{I32}, Result: I32},
	{Name: "mBufferGetBytes", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferGetByteSlice", Params: []ValueType{I32, I32, I32, I32}, Result: I32},
	{Name: "mBufferCopyByteSlice", Params: []ValueType{I32, I32, I32, I32}, Result: I32},
	{Name: "mBufferEq", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferSetBytes", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "mBufferSetByteSlice", Params: []ValueType{I32, I32, I32, I32}, Result: I32},
	{Name: "mBufferAppend", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferAppendBytes", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "mBufferToBigIntUnsigned", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferToBigIntSigned", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferFromBigIntUnsigned", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferFromBigIntSigned", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferToBigFloat", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "mBufferFromBigFloat", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "mBufferStorageStore", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferStorageLoad", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferStorageLoadFromAddress", Params: []ValueType{I32, I32, I32}},
	{Name: "mBufferGetArgument", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "mBufferFinish", Params: []ValueType{I32}, Result: I32},
	{Name: "mBufferSetRandom", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "managedMapNew", Result: I32},
	{Name: "managedMapPut", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "managedMapGet", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "managedMapRemove", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "managedMapContains", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "smallIntGetUnsignedArgument", Params: []ValueType{I32}, Result: I64},
	{Name: "smallIntGetSignedArgument", Params: []ValueType{I32}, Result: I64},
	{Name: "smallIntFinishUnsigned", Params: []ValueType{I64}},
	{Name: "smallIntFinishSigned", Params: []ValueType{I64}},
	{Name: "smallIntStorageStoreUnsigned", Params: []ValueType{I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "smallIntStorageStoreSigned", Params: []ValueType{I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "smallIntStorageLoadUnsigned", Params: []ValueType{I32, I32}, Result: I64, Unavailable: true},
	{Name: "smallIntStorageLoadSigned", Params: []ValueType{I32, I32}, Result: I64, Unavailable: true},
	{Name: "int64getArgument", Params: []ValueType{I32}, Result: I64, Unavailable: true},
	{Name: "int64finish", Params: []ValueType{I64}, Unavailable: true},
	{Name: "int64storageStore", Params: []ValueType{I32, I32, I64}, Result: I32, Unavailable: true},
	{Name: "int64storageLoad", Params: []ValueType{I32, I32}, Result: I64, Unavailable: true},
	{Name: "sha256", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedSha256", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "keccak256", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedKeccak256", Params: []ValueType{I32, I32}, Result: I32},
	{Name: "ripemd160", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedRipemd160", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "verifyBLS", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifyBLS", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "verifyEd25519", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifyEd25519", Params: []ValueType{I32, I32, I32}, Result: I32},
	{Name: "verifyCustomSecp256k1", Params: []ValueType{I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifyCustomSecp256k1", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "verifySecp256k1", Params: []ValueType{I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifySecp256k1", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "encodeSecp256k1DerSignature", Params: []ValueType{I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedEncodeSecp256k1DerSignature", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "addEC", Params: []ValueType{I32, I32, I32, I32, I32, I32, I32}, Unavailable: true},
	{Name: "doubleEC", Params: []ValueType{I32, I32, I32, I32, I32}, Unavailable: true},
	{Name: "isOnCurveEC", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "scalarBaseMultEC", Params: []ValueType{I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedScalarBaseMultEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "scalarMultEC", Params: []ValueType{I32, I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedScalarMultEC", Params: []ValueType{I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "marshalEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedMarshalEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "marshalCompressedEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedMarshalCompressedEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "unmarshalEC", Params: []ValueType{I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedUnmarshalEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "unmarshalCompressedEC", Params: []ValueType{I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedUnmarshalCompressedEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "generateKeyEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedGenerateKeyEC", Params: []ValueType{I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "createEC", Params: []ValueType{I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedCreateEC", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getCurveLengthEC", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "getPrivKeyByteLengthEC", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "ellipticCurveGetValues", Params: []ValueType{I32, I32, I32, I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "isReservedFunctionName", Params: []ValueType{I32}, Result: I32, Unavailable: true},
	{Name: "managedGetOriginalCallerAddr", Params: []ValueType{I32}, Unavailable: true},
	{Name: "managedGetRelayerAddr", Params: []ValueType{I32}, Unavailable: true},
	{Name: "managedMultiTransferESDTNFTExecuteByUser", Params: []ValueType{I32, I32, I32, I64, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifySecp256r1", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifyBLSSignatureShare", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
	{Name: "managedVerifyBLSAggregatedSignature", Params: []ValueType{I32, I32, I32}, Result: I32, Unavailable: true},
}

var hookIndex = make(map[string]int, len(Table))

func init() {
	for i := range Table {
		Table[i].ID = i
		hookIndex[Table[i].Name] = i
	}
}

// Lookup finds a hook by its import name.
func Lookup(name string) (Hook, bool) {
	i, ok := hookIndex[name]
	if !ok {
		return Hook{}, false
	}
	return Table[i], true
}
