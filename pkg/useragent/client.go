package useragent

import (
	"strings"
	"unicode"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/pattern"
)

// Client hint brand names that differ from catalog names.
var hintBrandAliases = map[string]string{
	"google chrome":           "Chrome",
	"android webview":         "Chrome Webview",
	"duckduckgo":              "DuckDuckGo Privacy Browser",
	"microsoft edge webview2": "Edge WebView",
	"edge":                    "Microsoft Edge",
}

// Probes extracting an engine version, keyed by engine name.
var engineVersionPatterns = map[string]string{
	"Blink":    `(?:Chr[o0]me|Chromium)/(\d+[\.\d]*)`,
	"WebKit":   `(?:Apple)?WebKit/(\d+[\.\d]*)`,
	"Gecko":    `rv:(\d+[\.\d]*).*Gecko/`,
	"Trident":  `Trident/(\d+[\.\d]*)`,
	"Edge":     `Edge/(\d+[\.\d]*)`,
	"Presto":   `Presto/(\d+[\.\d]*)`,
	"Goanna":   `Goanna/(\d+[\.\d]*)`,
	"NetFront": `NetFront/(\d+[\.\d]*)`,
}

// lookupClient resolves the client. Families are tried in order and the
// first one that yields a client wins. Application hints are applied last.
func (d *Detector) lookupClient(ua string, hints *clienthints.Set) (*Client, error) {
	var client *Client
	for _, family := range d.corpus.clients {
		var err error
		if family.typ == ClientTypeBrowser {
			client, err = d.lookupBrowser(ua, family.rules, hints)
		} else {
			client, err = matchClient(ua, family)
		}
		if err != nil {
			return nil, err
		}
		if client != nil {
			break
		}
	}

	return d.applyAppHints(client, hints), nil
}

func matchClient(ua string, family clientFamily) (*Client, error) {
	for _, r := range family.rules {
		caps, ok, err := r.re.Match(ua)
		if err != nil {
			return nil, err
		}
		if ok {
			return &Client{
				Type:    family.typ,
				Name:    caps.Expand(r.name),
				Version: pattern.Version(r.version, caps),
			}, nil
		}
	}
	return nil, nil
}

// lookupBrowser matches the browser rules and merges the result with the
// brand list of the client hints.
func (d *Detector) lookupBrowser(ua string, rules []clientRule, hints *clienthints.Set) (*Client, error) {
	var (
		client *Client
		rule   clientRule
	)
	for _, r := range rules {
		caps, ok, err := r.re.Match(ua)
		if err != nil {
			return nil, err
		}
		if ok {
			rule = r
			client = &Client{
				Type:    ClientTypeBrowser,
				Name:    caps.Expand(r.name),
				Version: pattern.Version(r.version, caps),
			}
			break
		}
	}

	if client != nil {
		d.normalizeBrowser(client)
		if err := d.resolveEngine(ua, client, rule.engine); err != nil {
			return nil, err
		}
	}

	hinted, version := d.browserFromHints(hints)
	if hinted.Name == "" {
		return client, nil
	}

	switch {
	case client == nil:
		client = &Client{Type: ClientTypeBrowser, Name: hinted.Name, Version: version}
		d.normalizeBrowser(client)
		if err := d.resolveEngine(ua, client, nil); err != nil {
			return nil, err
		}
	case hinted.Name == "Chromium" && client.Name != "Chromium":
		// a specific UA browser beats the generic engine brand
	case client.Name == hinted.Name+" Mobile":
		if version != "" {
			client.Version = version
		}
	default:
		client.Name = hinted.Name
		if version != "" {
			client.Version = version
		}
		d.normalizeBrowser(client)
	}
	return client, nil
}

// browserFromHints picks the first recognised non-GREASE brand. Chromium is
// only used when no other brand is known.
func (d *Detector) browserFromHints(hints *clienthints.Set) (CatalogBrowser, string) {
	if hints == nil {
		return CatalogBrowser{}, ""
	}

	var (
		found   CatalogBrowser
		version string
	)
	for _, brand := range hints.Brands {
		if isGreaseBrand(brand.Name) {
			continue
		}
		name := brand.Name
		if alias, ok := hintBrandAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			name = alias
		}
		b, ok := d.catalog.SearchByName(name)
		if !ok {
			continue
		}
		found, version = b, brand.Version
		if b.Name != "Chromium" {
			break
		}
	}
	if found.Name == "" {
		return found, ""
	}

	if hints.UAFullVersion != "" {
		version = hints.UAFullVersion
	}
	return found, pattern.TrimVersion(strings.Trim(version, " ."))
}

// isGreaseBrand reports brands like "Not;A=Brand" or "Not A(Brand" that
// browsers add to defeat naive parsing.
func isGreaseBrand(name string) bool {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String() == "notabrand"
}

// applyAppHints applies the X-Requested-With application identity.
func (d *Detector) applyAppHints(client *Client, hints *clienthints.Set) *Client {
	if hints == nil || hints.App == "" {
		return client
	}

	if name, ok := d.corpus.browserHints[hints.App]; ok {
		switch {
		case client == nil:
			client = &Client{Type: ClientTypeBrowser, Name: name}
			d.normalizeBrowser(client)
		case client.Type == ClientTypeBrowser && client.Name != name:
			client.Name, client.Version = name, ""
			d.normalizeBrowser(client)
		}
		return client
	}

	if name, ok := d.corpus.appHints[hints.App]; ok {
		switch {
		case client == nil:
			client = &Client{Type: ClientTypeMobileApp, Name: name}
		case client.Type == ClientTypeMobileApp && client.Name != name:
			client.Name, client.Version = name, ""
		}
	}
	return client
}

// normalizeBrowser replaces the matched name with its catalog spelling and
// fills the family and mobile-only flag.
func (d *Detector) normalizeBrowser(c *Client) {
	b, ok := d.catalog.SearchByName(c.Name)
	if !ok {
		c.Family, c.mobileOnly = "", false
		return
	}
	c.Name, c.Family, c.mobileOnly = b.Name, b.Family, b.MobileOnly
}

// resolveEngine sets the rendering engine from the rule declaration or, when
// the rule names none, from the engine corpus.
func (d *Detector) resolveEngine(ua string, c *Client, spec *engineSpec) error {
	var name string
	if spec != nil {
		name = spec.forVersion(c.Version)
	}
	if name == "" {
		for _, r := range d.corpus.engines {
			ok, err := r.re.MatchString(ua)
			if err != nil {
				return err
			}
			if ok {
				name = r.name
				break
			}
		}
	}
	if name == "" {
		return nil
	}

	c.Engine = name
	probe, ok := d.corpus.builtin.engineVersions[name]
	if !ok {
		return nil
	}
	caps, matched, err := probe.Match(ua)
	if err != nil {
		return err
	}
	if matched {
		c.EngineVersion = strings.Trim(caps.Group(1), ".")
	}
	return nil
}
