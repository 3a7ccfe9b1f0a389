package config

import (
	"reflect"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// GasSchedule holds the base cost of each hook group. Hooks moving data
// additionally pay DataCopyPerByte for every byte crossing the memory bridge.
type GasSchedule struct {
	ContextGet     uint64 `toml:"ContextGet"`
	Finish         uint64 `toml:"Finish"`
	SignalError    uint64 `toml:"SignalError"`
	Log            uint64 `toml:"Log"`
	StorageLoad    uint64 `toml:"StorageLoad"`
	StorageStore   uint64 `toml:"StorageStore"`
	TransferValue  uint64 `toml:"TransferValue"`
	AsyncCall      uint64 `toml:"AsyncCall"`
	ExecuteOnDest  uint64 `toml:"ExecuteOnDest"`
	CreateContract uint64 `toml:"CreateContract"`

	Sha256        uint64 `toml:"Sha256"`
	Keccak256     uint64 `toml:"Keccak256"`
	VerifyEd25519 uint64 `toml:"VerifyEd25519"`

	BigIntNew        uint64 `toml:"BigIntNew"`
	BigIntArith      uint64 `toml:"BigIntArith"`
	BigIntDiv        uint64 `toml:"BigIntDiv"`
	BigIntPow        uint64 `toml:"BigIntPow"`
	BigIntBitwise    uint64 `toml:"BigIntBitwise"`
	BigIntCompare    uint64 `toml:"BigIntCompare"`
	BigIntConversion uint64 `toml:"BigIntConversion"`

	BigFloatNew        uint64 `toml:"BigFloatNew"`
	BigFloatArith      uint64 `toml:"BigFloatArith"`
	BigFloatDiv        uint64 `toml:"BigFloatDiv"`
	BigFloatSqrt       uint64 `toml:"BigFloatSqrt"`
	BigFloatPow        uint64 `toml:"BigFloatPow"`
	BigFloatCompare    uint64 `toml:"BigFloatCompare"`
	BigFloatConversion uint64 `toml:"BigFloatConversion"`
	BigFloatConst      uint64 `toml:"BigFloatConst"`

	MBufferNew        uint64 `toml:"MBufferNew"`
	MBufferGet        uint64 `toml:"MBufferGet"`
	MBufferSet        uint64 `toml:"MBufferSet"`
	MBufferAppend     uint64 `toml:"MBufferAppend"`
	MBufferCompare    uint64 `toml:"MBufferCompare"`
	MBufferConversion uint64 `toml:"MBufferConversion"`
	MBufferRandom     uint64 `toml:"MBufferRandom"`

	MapNew      uint64 `toml:"MapNew"`
	MapPut      uint64 `toml:"MapPut"`
	MapGet      uint64 `toml:"MapGet"`
	MapRemove   uint64 `toml:"MapRemove"`
	MapContains uint64 `toml:"MapContains"`

	DataCopyPerByte uint64 `toml:"DataCopyPerByte"`
	StorePerByte    uint64 `toml:"StorePerByte"`
}

func DefaultGasSchedule() GasSchedule {
	return GasSchedule{
		ContextGet:     100,
		Finish:         100,
		SignalError:    100,
		Log:            3750,
		StorageLoad:    10000,
		StorageStore:   75000,
		TransferValue:  100000,
		AsyncCall:      100000,
		ExecuteOnDest:  100000,
		CreateContract: 300000,

		Sha256:        1000000,
		Keccak256:     1000000,
		VerifyEd25519: 2000000,

		BigIntNew:        2000,
		BigIntArith:      2000,
		BigIntDiv:        4000,
		BigIntPow:        6000,
		BigIntBitwise:    2000,
		BigIntCompare:    1000,
		BigIntConversion: 1000,

		BigFloatNew:        2000,
		BigFloatArith:      2000,
		BigFloatDiv:        4000,
		BigFloatSqrt:       10000,
		BigFloatPow:        10000,
		BigFloatCompare:    1000,
		BigFloatConversion: 2000,
		BigFloatConst:      1000,

		MBufferNew:        2000,
		MBufferGet:        1000,
		MBufferSet:        2000,
		MBufferAppend:     2000,
		MBufferCompare:    1000,
		MBufferConversion: 2000,
		MBufferRandom:     6000,

		MapNew:      2000,
		MapPut:      2000,
		MapGet:      1000,
		MapRemove:   2000,
		MapContains: 1000,

		DataCopyPerByte: 50,
		StorePerByte:    10000,
	}
}

// DecodeGasSchedule reads a flat TOML table of costs on top of the defaults.
// Keys not naming a cost and negative costs are rejected.
func DecodeGasSchedule(data []byte) (GasSchedule, error) {
	gas := DefaultGasSchedule()
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return gas, errors.Wrap(err, "parse gas schedule")
	}
	fields := gasFields(&gas)
	for _, key := range tree.Keys() {
		field, ok := fields[key]
		if !ok {
			return gas, errors.Errorf("unknown gas cost %q", key)
		}
		v, ok := tree.Get(key).(int64)
		if !ok || v < 0 {
			return gas, errors.Errorf("gas cost %q must be a non-negative integer", key)
		}
		field.SetUint(uint64(v))
	}
	return gas, nil
}

func gasFields(gas *GasSchedule) map[string]reflect.Value {
	v := reflect.ValueOf(gas).Elem()
	t := v.Type()
	fields := make(map[string]reflect.Value, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		fields[t.Field(i).Tag.Get("toml")] = v.Field(i)
	}
	return fields
}
