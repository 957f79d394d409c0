// Package cache provides a generic, thread-safe LRU cache.
//
// The cache holds at most a fixed number of entries. Reads and writes mark an
// entry as recently used, and a write past capacity evicts the least recently
// used entry:
//
//	c := cache.NewLRUCache[uint64, *entry](1024)
//	c.Put(key, e)
//	if e, ok := c.Get(key); ok {
//	    // use e
//	}
//
// An eviction callback registered with SetEvictCallback observes every entry
// leaving the cache, whether evicted, removed or cleared.
package cache
