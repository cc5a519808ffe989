package rules

import (
	"container/list"
	"regexp"
	"sync"
)

// compiled is a cache slot. A failed compilation is cached as well so a bad
// pattern is reported once per residency instead of on every match.
type compiled struct {
	pattern string
	re      *regexp.Regexp
	err     error
}

// regexpCache is a thread-safe LRU of compiled patterns keyed by source.
type regexpCache struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	compile  func(string) (*regexp.Regexp, error)
}

func newRegexpCache(capacity int, compile func(string) (*regexp.Regexp, error)) *regexpCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &regexpCache{
		capacity: capacity,
		items:    make(map[string]*list.Element, capacity),
		eviction: list.New(),
		compile:  compile,
	}
}

// get returns the compiled pattern, compiling it on a miss. fresh is true
// when this call performed the compilation.
func (c *regexpCache) get(pattern string) (re *regexp.Regexp, fresh bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[pattern]; ok {
		c.eviction.MoveToFront(elem)
		slot := elem.Value.(*compiled)
		return slot.re, false, slot.err
	}

	re, err = c.compile(pattern)
	slot := &compiled{pattern: pattern, re: re, err: err}
	c.items[pattern] = c.eviction.PushFront(slot)

	if c.eviction.Len() > c.capacity {
		// evict the least recently used pattern
		oldest := c.eviction.Back()
		c.eviction.Remove(oldest)
		delete(c.items, oldest.Value.(*compiled).pattern)
	}

	return re, true, err
}

func (c *regexpCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}
