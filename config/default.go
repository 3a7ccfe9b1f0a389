package config

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/coschain/vmhooks/common/constants"
)

const (
	DefaultLogLevel              = "info"
	DefaultLogAge                = 7 * 24
	DefaultModuleCacheSize       = 256
	DefaultForeignReadCacheSize  = 16 * 1024 * 1024
	DefaultBigFloatPrecision     = 60
	DefaultMaxConversionExponent = 4096
)

// VMConfig configures one VMService.
type VMConfig struct {
	DataDir  string
	LogLevel string
	// empty disables file logging
	LogPath string
	// hours rotated log files are kept
	LogAge uint32

	MaxCallDepth    int
	ModuleCacheSize int
	// bytes of the cache holding committed storage of foreign accounts
	ForeignReadCacheSize int

	BigFloatPrecision     int
	MaxConversionExponent int64
	ReservedKeyPrefix     string

	Gas GasSchedule
}

// DefaultVMConfig contains reasonable default settings.
func DefaultVMConfig() VMConfig {
	return VMConfig{
		DataDir:               DefaultDataDir(),
		LogLevel:              DefaultLogLevel,
		LogAge:                DefaultLogAge,
		MaxCallDepth:          constants.MaxCallDepth,
		ModuleCacheSize:       DefaultModuleCacheSize,
		ForeignReadCacheSize:  DefaultForeignReadCacheSize,
		BigFloatPrecision:     DefaultBigFloatPrecision,
		MaxConversionExponent: DefaultMaxConversionExponent,
		ReservedKeyPrefix:     constants.ReservedStorageKeyPrefix,
		Gas:                   DefaultGasSchedule(),
	}
}

func DefaultDataDir() string {
	home := homeDir()
	if home != "" {
		return filepath.Join(home, ".vmhooks")
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
