package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// FetchFunc 缓存未命中时的回源函数
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	data      interface{}
	fetchedAt time.Time
	gen       uint64
}

// Cache 显式的键值缓存，按(接口,参数)键保存数据和拉取时间，
// 读取时计算新鲜度。同键并发回源只发一次请求；失效后在途的
// 旧请求结果按代次丢弃，不会覆盖新数据
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry
	gens    map[string]uint64
	group   singleflight.Group

	now func() time.Time // 测试时可替换
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		gens:    make(map[string]uint64),
		now:     time.Now,
	}
}

// GetOrFetch 读取指定键的数据，在staleness窗口内直接返回缓存，
// 否则回源并写回。返回值第二项表示是否命中缓存
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch FetchFunc) (interface{}, bool, error) {
	if data, ok := c.fresh(key, ttl); ok {
		return data, true, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// 拿到执行权后再查一次，排队期间可能已有人写回
		if data, ok := c.fresh(key, ttl); ok {
			return data, nil
		}

		// 回源前登记代次，首次回源的键也能被前缀失效盯上
		c.mu.Lock()
		gen := c.gens[key]
		c.gens[key] = gen
		c.mu.Unlock()

		data, err := fetch(ctx)
		if err != nil {
			// 回源失败时保留旧缓存不动
			return nil, err
		}
		c.store(key, gen, data)
		return data, nil
	})
	if err != nil {
		return nil, false, err
	}
	return result, false, nil
}

// Peek 只读缓存，不回源
func (c *Cache) Peek(key string, ttl time.Duration) (interface{}, bool) {
	return c.fresh(key, ttl)
}

// Invalidate 失效指定键，代次+1，之后到达的旧响应会被丢弃
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
		c.gens[key]++
	}
}

// InvalidatePrefix 失效所有以prefix开头的键，列表类数据按前缀整体失效
// 遍历gens而不是entries：在途回源的键已登记代次但还没有数据
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.gens {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(c.entries, key)
			c.gens[key]++
		}
	}
}

func (c *Cache) fresh(key string, ttl time.Duration) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= ttl {
		return nil, false
	}
	return e.data, true
}

func (c *Cache) store(key string, gen uint64, data interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// 发起回源之后键被失效过，丢弃这次结果
	if c.gens[key] != gen {
		return
	}
	c.entries[key] = &entry{
		data:      data,
		fetchedAt: c.now(),
		gen:       gen,
	}
}
