package useragent

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/dmitrymomot/devicedetector/pkg/cache"
	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
)

type cacheEntry struct {
	ua        string
	hints     string
	detection Detection
}

// resultCache is an LRU of detections keyed by the hash of the full input.
// Colliding inputs are told apart by comparing the stored input. Stored and
// returned detections are private clones.
type resultCache struct {
	lru  *cache.LRUCache[uint64, *cacheEntry]
	hash func(ua, hints string) uint64
}

func newResultCache(capacity int) *resultCache {
	return &resultCache{
		lru:  cache.NewLRUCache[uint64, *cacheEntry](capacity),
		hash: cacheHash,
	}
}

func (c *resultCache) get(ua, hints string) (Detection, bool) {
	entry, ok := c.lru.Get(c.hash(ua, hints))
	if !ok || entry.ua != ua || entry.hints != hints {
		return nil, false
	}
	return entry.detection.clone(), true
}

// put stores a clone of d. A colliding input replaces the previous owner of
// the slot.
func (c *resultCache) put(ua, hints string, d Detection) {
	c.lru.Put(c.hash(ua, hints), &cacheEntry{ua: ua, hints: hints, detection: d.clone()})
}

func (c *resultCache) len() int {
	return c.lru.Len()
}

func cacheHash(ua, hints string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(ua)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(hints)
	return d.Sum64()
}

// hintsKey renders the fields of s that influence a detection in a fixed
// order.
func hintsKey(s *clienthints.Set) string {
	if s.IsEmpty() {
		return ""
	}

	var b strings.Builder
	field := func(v string) {
		b.WriteString(v)
		b.WriteByte('\x1f')
	}
	field(s.Architecture)
	field(s.Bitness)
	if s.Mobile {
		field("?1")
	} else {
		field("?0")
	}
	field(s.Model)
	field(s.Platform)
	field(s.PlatformVersion)
	field(s.UAFullVersion)
	for _, br := range s.Brands {
		field(br.Name + "\x1e" + br.Version)
	}
	field("")
	for _, ff := range s.FormFactors {
		field(ff)
	}
	field("")
	field(s.App)
	return b.String()
}
