package linkscan

import (
	"sync"
	"time"
)

// Cache memoizes scan reports per target so the web server does not
// re-scan the same page on every request.
type Cache struct {
	mu   sync.Mutex
	data map[string]cacheItem
	ttl  time.Duration
}

type cacheItem struct {
	report  *Report
	expires time.Time
}

func NewCache() *Cache {
	return &Cache{
		data: map[string]cacheItem{},
		ttl:  300 * time.Second,
	}
}

func (c *Cache) Get(key string) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if item.expires.Sub(time.Now().UTC()) <= 0 {
		delete(c.data, key)
		return nil, false
	}
	return item.report, true
}

func (c *Cache) Store(key string, report *Report) {
	c.mu.Lock()
	c.data[key] = cacheItem{report: report, expires: time.Now().UTC().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Cache) SetTTL(n int) {
	c.mu.Lock()
	c.ttl = time.Duration(n) * time.Second
	c.mu.Unlock()
}
