// Package sigcache memoizes signature parsing in an in-memory LRU cache.
package sigcache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/interviewkickstart/funcsig/funcsig/go/signature"
	"github.com/interviewkickstart/funcsig/funcsig/go/types"
	"github.com/interviewkickstart/funcsig/go/metrics2"
	"github.com/interviewkickstart/funcsig/go/skerr"
)

// DefaultSize is the number of entries used when a non-positive size is
// passed to New.
const DefaultSize = 1024

// entry is a cached parse result. Exactly one of sig and err is set.
type entry struct {
	sig *signature.Signature
	err error
}

// Cache remembers the outcome of ParseWithOptions, failures included. It is
// safe for concurrent use.
type Cache struct {
	cache *lru.Cache

	hits   metrics2.Counter
	misses metrics2.Counter
}

// New returns a new Cache holding at most size results. The name is used to
// tag the hit and miss metrics.
func New(name string, size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, skerr.Wrapf(err, "failed to create signature cache of size: %d", size)
	}
	tags := map[string]string{"cache": name}
	return &Cache{
		cache:  c,
		hits:   metrics2.GetCounter("funcsig_cache_hits", tags),
		misses: metrics2.GetCounter("funcsig_cache_misses", tags),
	}, nil
}

func key(text string, opts signature.Options) string {
	depth := opts.MaxTypeDepth
	if depth <= 0 {
		depth = types.MaxNestingDepth
	}
	return fmt.Sprintf("%t:%d:%s", opts.AllowUppercaseNames, depth, text)
}

// Parse is signature.ParseWithOptions backed by the cache.
func (c *Cache) Parse(text string, opts signature.Options) (*signature.Signature, error) {
	k := key(text, opts)
	if v, ok := c.cache.Get(k); ok {
		c.hits.Inc(1)
		e := v.(entry)
		return e.sig, e.err
	}
	c.misses.Inc(1)
	sig, err := signature.ParseWithOptions(text, opts)
	c.cache.Add(k, entry{sig: sig, err: err})
	return sig, err
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.cache.Len()
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	c.cache.Purge()
}
