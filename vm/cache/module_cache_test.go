package vmcache

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestModuleCacheFetchTakesOut(t *testing.T) {
	myassert := assert.New(t)
	mc, err := NewModuleCache(4, logrus.New())
	myassert.NoError(err)

	key := CodeKey([]byte("code"))
	mc.Put(key, "m1")
	mc.Put(key, "m2")
	myassert.Equal(2, mc.Contains(key))

	first := mc.Fetch(key)
	myassert.NotNil(first)
	myassert.Equal(1, mc.Contains(key))
	second := mc.Fetch(key)
	myassert.NotNil(second)
	myassert.NotEqual(first, second)
	myassert.Nil(mc.Fetch(key))
	myassert.Equal(0, mc.Contains(key))
}

func TestModuleCacheEviction(t *testing.T) {
	myassert := assert.New(t)
	mc, _ := NewModuleCache(2, nil)

	a, b, c := CodeKey([]byte("a")), CodeKey([]byte("b")), CodeKey([]byte("c"))
	mc.Put(a, 1)
	mc.Put(b, 2)
	mc.Put(c, 3)
	myassert.Equal(2, mc.Len())
	myassert.Equal(0, mc.Contains(a))
	myassert.Nil(mc.Fetch(a))

	mc.Remove(b)
	myassert.Equal(0, mc.Contains(b))
	myassert.Equal(3, mc.Fetch(c))
}
