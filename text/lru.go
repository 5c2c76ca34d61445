// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	xfont "golang.org/x/image/font"

	"latticeui.org/font"
)

// lru is a fixed capacity cache evicting the least recently used
// entry. The zero value holds up to defaultCapacity entries.
type lru[K comparable, V any] struct {
	capacity   int
	m          map[K]*entry[K, V]
	head, tail *entry[K, V]
}

type entry[K comparable, V any] struct {
	next, prev *entry[K, V]
	key        K
	val        V
}

type layoutKey struct {
	font     font.Font
	size     float32
	maxWidth float32
	str      string
}

type sizedKey struct {
	font font.Font
	size float32
}

type (
	layoutCache = lru[layoutKey, Layout]
	faceCache   = lru[sizedKey, xfont.Face]
)

const defaultCapacity = 1000

func (c *lru[K, V]) Get(k K) (V, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.val, true
	}
	var zero V
	return zero, false
}

// Put stores v under k and returns the evicted value, if any.
func (c *lru[K, V]) Put(k K, v V) (evicted V, ok bool) {
	if c.m == nil {
		c.m = make(map[K]*entry[K, V])
		c.head = new(entry[K, V])
		c.tail = new(entry[K, V])
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if old, exists := c.m[k]; exists {
		c.remove(old)
	}
	e := &entry[K, V]{key: k, val: v}
	c.m[k] = e
	c.insert(e)
	limit := c.capacity
	if limit <= 0 {
		limit = defaultCapacity
	}
	if len(c.m) > limit {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
		return oldest.val, true
	}
	return evicted, false
}

func (c *lru[K, V]) Len() int {
	return len(c.m)
}

func (c *lru[K, V]) remove(e *entry[K, V]) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

// insert makes e the most recently used entry.
func (c *lru[K, V]) insert(e *entry[K, V]) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
