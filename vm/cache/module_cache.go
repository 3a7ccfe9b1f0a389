package vmcache

import (
	"encoding/hex"
	"sync"

	"github.com/coschain/vmhooks/common"
	"github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"
)

const DefaultLruSize = 256

// ModuleCache keeps compiled contract modules by code hash. A module is held
// by at most one running instance: Fetch takes it out of the cache and the
// caller puts it back once the instance is done. The same code may therefore
// be cached more than once, e.g. during reentrant calls.
type ModuleCache struct {
	cache   *lru.Cache
	counter int64
	byHash  map[string]map[int64]bool
	byIndex map[int64]string
	lock    sync.RWMutex
	log     *logrus.Logger
}

func NewModuleCache(size int, logger *logrus.Logger) (*ModuleCache, error) {
	if size <= 0 {
		size = DefaultLruSize
	}
	mc := &ModuleCache{
		byHash:  make(map[string]map[int64]bool),
		byIndex: make(map[int64]string),
		log:     logger,
	}
	cache, err := lru.NewWithEvict(size, mc.onCacheEvict)
	if err != nil {
		return nil, err
	}
	mc.cache = cache
	return mc, nil
}

// CodeKey is the cache key of code.
func CodeKey(code []byte) string {
	return hex.EncodeToString(common.Keccak256(code))
}

// onCacheEvict will be called by lru.Cache for each removed item.
func (mc *ModuleCache) onCacheEvict(key interface{}, value interface{}) {
	idx := key.(int64)
	hash := mc.byIndex[idx]
	if len(hash) > 0 {
		modules := mc.byHash[hash]
		delete(modules, idx)
		if len(modules) == 0 {
			delete(mc.byHash, hash)
		}
		delete(mc.byIndex, idx)
	}
}

func (mc *ModuleCache) Put(key string, module interface{}) {
	mc.lock.Lock()
	defer mc.lock.Unlock()
	mc.counter++
	k := mc.counter
	modules := mc.byHash[key]
	if modules == nil {
		modules = make(map[int64]bool)
		mc.byHash[key] = modules
	}
	modules[k] = true
	mc.byIndex[k] = key
	mc.cache.Add(k, module)
}

// Fetch removes and returns a cached module of key, nil if there is none.
func (mc *ModuleCache) Fetch(key string) (module interface{}) {
	mc.lock.Lock()
	defer mc.lock.Unlock()
	if modules := mc.byHash[key]; len(modules) > 0 {
		var idx int64
		for k := range modules {
			idx = k
			break
		}
		if val, ok := mc.cache.Peek(idx); ok {
			module = val
			mc.cache.Remove(idx)
		}
	}
	if module == nil && mc.log != nil {
		mc.log.Debugf("module cache miss: %s", key)
	}
	return
}

func (mc *ModuleCache) Contains(key string) int {
	mc.lock.RLock()
	defer mc.lock.RUnlock()
	return len(mc.byHash[key])
}

// Remove drops every cached module of key, e.g. after an upgrade.
func (mc *ModuleCache) Remove(key string) {
	mc.lock.Lock()
	defer mc.lock.Unlock()
	modules := mc.byHash[key]
	keys := make([]int64, 0, len(modules))
	for k := range modules {
		keys = append(keys, k)
	}
	for _, k := range keys {
		mc.cache.Remove(k)
	}
}

func (mc *ModuleCache) Len() int {
	mc.lock.RLock()
	defer mc.lock.RUnlock()
	return mc.cache.Len()
}
