package heuristic

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// CacheStats counts cache traffic since construction.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Clears uint64
}

type cacheEntry struct {
	city    int
	visited *bitset.BitSet
	value   float64
}

// Cache memoises heuristic values by (current city, visited set).
//
// Keys are hashed with xxhash over the city and the visited words; colliding
// keys share a bucket and are told apart by exact comparison, so a hit always
// refers to the same (city, visited) pair.
//
// The cache keeps a reference to each visited set it stores. Callers must not
// mutate a set after handing it to Put.
type Cache struct {
	buckets map[uint64][]cacheEntry
	size    int
	buf     []byte
	stats   CacheStats
}

// NewCache returns an empty cache sized for about capacity entries.
func NewCache(capacity int) *Cache {
	if capacity < 0 {
		capacity = 0
	}

	return &Cache{buckets: make(map[uint64][]cacheEntry, capacity)}
}

func (c *Cache) hash(city int, visited *bitset.BitSet) uint64 {
	c.buf = binary.LittleEndian.AppendUint64(c.buf[:0], uint64(city))
	for _, w := range visited.Words() {
		c.buf = binary.LittleEndian.AppendUint64(c.buf, w)
	}

	return xxhash.Sum64(c.buf)
}

// Get returns the value stored for (city, visited).
//
// Complexity: O(n/64) for hashing plus the bucket scan.
func (c *Cache) Get(city int, visited *bitset.BitSet) (float64, bool) {
	for _, e := range c.buckets[c.hash(city, visited)] {
		if e.city == city && e.visited.Equal(visited) {
			c.stats.Hits++
			return e.value, true
		}
	}
	c.stats.Misses++

	return 0, false
}

// Put stores v for (city, visited), replacing an existing value for the same key.
func (c *Cache) Put(city int, visited *bitset.BitSet, v float64) {
	h := c.hash(city, visited)
	bucket := c.buckets[h]
	for i := range bucket {
		if bucket[i].city == city && bucket[i].visited.Equal(visited) {
			bucket[i].value = v
			return
		}
	}
	c.buckets[h] = append(bucket, cacheEntry{city: city, visited: visited, value: v})
	c.size++
}

// Clear drops every entry and releases the map. Statistics survive; Clears is
// incremented.
func (c *Cache) Clear() {
	c.buckets = make(map[uint64][]cacheEntry)
	c.size = 0
	c.stats.Clears++
}

// Len returns the number of stored entries.
func (c *Cache) Len() int { return c.size }

// Stats returns a snapshot of the counters.
func (c *Cache) Stats() CacheStats { return c.stats }
