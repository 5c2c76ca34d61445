// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutCacheEvictsOldest(t *testing.T) {
	c := new(layoutCache)
	key := func(i int) layoutKey { return layoutKey{str: strconv.Itoa(i)} }
	for i := 0; i < defaultCapacity; i++ {
		_, evicted := c.Put(key(i), Layout{})
		require.False(t, evicted, "put %d", i)
	}
	// Touch the oldest entry so the second oldest goes first.
	_, ok := c.Get(key(0))
	require.True(t, ok)

	_, evicted := c.Put(key(defaultCapacity), Layout{})
	assert.True(t, evicted)
	_, ok = c.Get(key(1))
	assert.False(t, ok, "key 1 was not evicted")
	_, ok = c.Get(key(0))
	assert.True(t, ok, "key 0 was evicted")

	// Replacing an entry does not grow the cache.
	c.Put(key(5), Layout{Ascent: 1})
	assert.Equal(t, defaultCapacity, c.Len())
	l, _ := c.Get(key(5))
	assert.Equal(t, float32(1), l.Ascent)
}

func TestCacheCapacity(t *testing.T) {
	c := &lru[int, string]{capacity: 2}
	c.Put(1, "one")
	c.Put(2, "two")
	old, evicted := c.Put(3, "three")
	require.True(t, evicted)
	assert.Equal(t, "one", old)
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get(1)
	assert.False(t, ok)
	v, ok := c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, "three", v)
}
