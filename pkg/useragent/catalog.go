package useragent

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

type catalogEntry struct {
	short string
	name  string
}

// CatalogBrowser is a browser known to the static catalog.
type CatalogBrowser struct {
	Short      string
	Name       string
	Family     string
	MobileOnly bool
}

// Catalog resolves browser names to canonical entries. It is immutable and
// safe for concurrent use.
type Catalog struct {
	byShort map[string]CatalogBrowser
	byName  map[string]CatalogBrowser
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	return newCatalog(catalogBrowsers, catalogFamilies, catalogMobileOnly)
})

// DefaultCatalog returns the built-in browser catalog.
func DefaultCatalog() *Catalog { return defaultCatalog() }

func newCatalog(entries []catalogEntry, families map[string][]string, mobileOnly []string) *Catalog {
	familyOf := make(map[string]string)
	for family, shorts := range families {
		for _, short := range shorts {
			familyOf[short] = family
		}
	}
	mobile := make(map[string]struct{}, len(mobileOnly))
	for _, short := range mobileOnly {
		mobile[short] = struct{}{}
	}

	browsers := make([]CatalogBrowser, 0, len(entries))
	for _, e := range entries {
		_, isMobile := mobile[e.short]
		browsers = append(browsers, CatalogBrowser{
			Short:      e.short,
			Name:       e.name,
			Family:     familyOf[e.short],
			MobileOnly: isMobile,
		})
	}
	return NewCatalog(browsers...)
}

// NewCatalog builds a catalog from explicit entries. When several entries
// share a short code or a name, the first one wins.
func NewCatalog(browsers ...CatalogBrowser) *Catalog {
	c := &Catalog{
		byShort: make(map[string]CatalogBrowser, len(browsers)),
		byName:  make(map[string]CatalogBrowser, len(browsers)),
	}
	for _, b := range browsers {
		if _, dup := c.byShort[b.Short]; dup {
			continue
		}
		c.byShort[b.Short] = b

		key := catalogKey(b.Name)
		if _, dup := c.byName[key]; !dup {
			c.byName[key] = b
		}
	}
	return c
}

// ByShort returns the browser registered under a two-character short code.
func (c *Catalog) ByShort(short string) (CatalogBrowser, bool) {
	b, ok := c.byShort[short]
	return b, ok
}

// SearchByName finds a browser by name ignoring case and spaces. When the
// exact name is unknown it retries with a "browser" suffix, then with any
// trailing "browser" removed.
func (c *Catalog) SearchByName(name string) (CatalogBrowser, bool) {
	key := catalogKey(name)
	if key == "" {
		return CatalogBrowser{}, false
	}
	if b, ok := c.byName[key]; ok {
		return b, true
	}
	if b, ok := c.byName[key+"browser"]; ok {
		return b, true
	}

	trimmed := key
	for strings.HasSuffix(trimmed, "browser") {
		trimmed = strings.TrimSuffix(trimmed, "browser")
	}
	if trimmed == key || trimmed == "" {
		return CatalogBrowser{}, false
	}
	b, ok := c.byName[trimmed]
	return b, ok
}

// Len reports the number of distinct short codes.
func (c *Catalog) Len() int { return len(c.byShort) }

func catalogKey(name string) string {
	// cases.Caser is stateful, one per call
	return strings.ReplaceAll(cases.Fold().String(name), " ", "")
}
