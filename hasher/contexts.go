package hasher

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spacemeshos/go-xofhash/engine"
)

// DefaultContextCacheSize is the size of the cache used when none is set.
const DefaultContextCacheSize = 256

var defaultCache = mustContextCache(DefaultContextCacheSize)

type contextKey struct {
	engine  string
	context string
}

// ContextCache keeps derived primitives that have absorbed nothing yet, so
// that hashing a context string happens once per (engine, context) pair.
// Cached prototypes are only ever cloned.
type ContextCache struct {
	cache *lru.Cache[contextKey, engine.Primitive]
}

// NewContextCache creates a cache holding up to size contexts.
func NewContextCache(size int) (*ContextCache, error) {
	cache, err := lru.New[contextKey, engine.Primitive](size)
	if err != nil {
		return nil, fmt.Errorf("create context cache: %w", err)
	}
	return &ContextCache{cache: cache}, nil
}

func mustContextCache(size int) *ContextCache {
	cache, err := NewContextCache(size)
	if err != nil {
		panic(err)
	}
	return cache
}

// Len returns the number of cached contexts.
func (c *ContextCache) Len() int {
	return c.cache.Len()
}

func (c *ContextCache) derive(e engine.Engine, context string) (engine.Primitive, error) {
	key := contextKey{engine: e.Name(), context: context}
	if proto, ok := c.cache.Get(key); ok {
		return proto.Clone(), nil
	}
	proto, err := e.NewDerived(context)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, proto)
	return proto.Clone(), nil
}
