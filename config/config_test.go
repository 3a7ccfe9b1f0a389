package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVMConfig(t *testing.T) {
	myassert := assert.New(t)
	cfg := DefaultVMConfig()
	myassert.Equal(DefaultBigFloatPrecision, cfg.BigFloatPrecision)
	myassert.Equal("ELROND", cfg.ReservedKeyPrefix)
	myassert.Equal(20, cfg.MaxCallDepth)
	myassert.NotZero(cfg.Gas.BigIntArith)
}

func TestLoadVMConfigMissingFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "vmconfig")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg, err := LoadVMConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, DefaultGasSchedule(), cfg.Gas)
}

func TestWriteAndLoadVMConfig(t *testing.T) {
	myassert := assert.New(t)
	dir, err := ioutil.TempDir("", "vmconfig")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfg := DefaultVMConfig()
	cfg.DataDir = dir
	cfg.LogLevel = "debug"
	cfg.MaxCallDepth = 7
	cfg.Gas.Keccak256 = 42
	require.NoError(t, WriteVMConfig(dir, DefaultConfigName, cfg, 0600))

	_, err = os.Stat(filepath.Join(dir, DefaultConfigName))
	require.NoError(t, err)

	loaded, err := LoadVMConfig(dir)
	require.NoError(t, err)
	myassert.Equal("debug", loaded.LogLevel)
	myassert.Equal(7, loaded.MaxCallDepth)
	myassert.Equal(uint64(42), loaded.Gas.Keccak256)
	myassert.Equal(cfg.Gas.StorageStore, loaded.Gas.StorageStore)
	myassert.Equal(cfg.MaxConversionExponent, loaded.MaxConversionExponent)
}

func TestDecodeGasSchedule(t *testing.T) {
	myassert := assert.New(t)

	gas, err := DecodeGasSchedule([]byte("BigIntArith = 7\nSha256 = 9\n"))
	myassert.NoError(err)
	myassert.Equal(uint64(7), gas.BigIntArith)
	myassert.Equal(uint64(9), gas.Sha256)
	myassert.Equal(DefaultGasSchedule().MapPut, gas.MapPut)

	_, err = DecodeGasSchedule([]byte("NoSuchCost = 1\n"))
	myassert.Error(err)
	_, err = DecodeGasSchedule([]byte("MapPut = -1\n"))
	myassert.Error(err)
	_, err = DecodeGasSchedule([]byte("MapPut = \"x\"\n"))
	myassert.Error(err)
}
