package vm

import (
	"os"
	"path/filepath"

	"github.com/coschain/vmhooks/config"
	"github.com/coschain/vmhooks/db/storage"
	"github.com/coschain/vmhooks/mylog"
	"github.com/coschain/vmhooks/vm/world"
	"github.com/pkg/errors"
)

const stateDirName = "state"

// Open builds a service running WebAssembly contracts over the LevelDB state
// kept under cfg.DataDir. The returned close function releases the database.
func Open(cfg *config.VMConfig) (*VMService, func(), error) {
	logger := mylog.Init(cfg.LogPath, cfg.LogLevel, cfg.LogAge)
	if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
		return nil, nil, errors.Wrap(err, "vm: create data dir")
	}
	db, err := storage.NewTrxLevelDatabase(filepath.Join(cfg.DataDir, stateDirName))
	if err != nil {
		return nil, nil, errors.Wrap(err, "vm: open state")
	}
	executor, err := NewWasmExecutor(cfg.ModuleCacheSize, logger)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	state := world.NewState(db, cfg.ForeignReadCacheSize, logger)
	logger.Infof("vm state opened at %s", cfg.DataDir)
	return New(cfg, state, executor, logger), db.Close, nil
}
