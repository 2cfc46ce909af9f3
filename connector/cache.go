package connector

import (
	lru "github.com/hashicorp/golang-lru"

	apperrors "lineage-engine/errors"
)

// Cache memoizes connector ID encodes. The rendering layer asks for
// the same handful of triples on every pointer move, so encodes are
// served from an LRU instead of being rebuilt per frame.
type Cache struct {
	entries *lru.Cache
}

// NewCache creates a connector ID cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New(size)
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to create connector cache")
	}
	return &Cache{entries: entries}, nil
}

// ID returns the encoded ID for the triple, from cache when possible.
// The result is identical to calling Connector.ID directly.
func (c *Cache) ID(side Side, model, column string) string {
	key := Connector{Side: side, Model: model, Column: column}
	if cached, ok := c.entries.Get(key); ok {
		return cached.(string)
	}
	id := key.ID()
	c.entries.Add(key, id)
	return id
}

// Len reports how many encodes are currently cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}
