package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpCache_PutAndGet(t *testing.T) {
	cache := newOpCache()

	cache.put("entry_statistics", 42)

	value, ok := cache.get("entry_statistics")
	assert.True(t, ok)
	assert.Equal(t, 42, value)

	_, ok = cache.get("absent")
	assert.False(t, ok)
}

func TestOpCache_KeyIncludesArguments(t *testing.T) {
	cache := newOpCache()

	assert.Equal(t, "get_entry", cache.key("get_entry"))
	assert.NotEqual(t, cache.key("get_entry", int64(1)), cache.key("get_entry", int64(2)))
}

func TestOpCache_EvictsOldestAtCapacity(t *testing.T) {
	cache := newOpCache()

	for i := 0; i < cacheCapacity; i++ {
		cache.put(fmt.Sprintf("op_%d", i), i)
	}
	assert.Equal(t, cacheCapacity, cache.len())

	cache.put("one_more", "value")

	assert.Equal(t, cacheCapacity, cache.len())
	_, ok := cache.get("op_0")
	assert.False(t, ok)
	_, ok = cache.get("one_more")
	assert.True(t, ok)
}

func TestOpCache_OverwriteDoesNotGrow(t *testing.T) {
	cache := newOpCache()

	cache.put("op", 1)
	cache.put("op", 2)

	assert.Equal(t, 1, cache.len())
	value, _ := cache.get("op")
	assert.Equal(t, 2, value)
}

func TestOpCache_Clear(t *testing.T) {
	cache := newOpCache()

	cache.put("op", 1)
	cache.clear()

	assert.Zero(t, cache.len())
	_, ok := cache.get("op")
	assert.False(t, ok)
}
