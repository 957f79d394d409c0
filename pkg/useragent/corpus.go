package useragent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/devicedetector/pkg/pattern"
)

const (
	fileBots         = "bots.yml"
	fileOSS          = "oss.yml"
	fileEngines      = "client/browser_engine.yml"
	fileAppHints     = "client/hints/apps.yml"
	fileBrowserHints = "client/hints/browsers.yml"
)

// Client rule files in evaluation order.
var clientFiles = []struct {
	path string
	typ  ClientType
}{
	{"client/feed_readers.yml", ClientTypeFeedReader},
	{"client/mobile_apps.yml", ClientTypeMobileApp},
	{"client/mediaplayers.yml", ClientTypeMediaPlayer},
	{"client/pim.yml", ClientTypePim},
	{"client/browsers.yml", ClientTypeBrowser},
	{"client/libraries.yml", ClientTypeLibrary},
}

// Device rule files in evaluation order. A family with a gate is only
// consulted when the gate matches; a gated family with a fallback type
// claims the device even when none of its brands match.
var deviceFiles = []struct {
	path     string
	gate     string
	fallback DeviceType
}{
	{"device/televisions.yml", `(?:HbbTV|SmartTvA)/([1-9]{1}(?:\.[0-9]{1}){1,2})`, DeviceTypeTelevision},
	{"device/notebooks.yml", `FBMD/`, ""},
	{"device/consoles.yml", "", ""},
	{"device/car_browsers.yml", "", ""},
	{"device/cameras.yml", "", ""},
	{"device/portable_media_player.yml", "", ""},
	{"device/mobiles.yml", "", ""},
}

type botRule struct {
	re  *pattern.Lazy
	bot Bot
}

type osRule struct {
	re      *pattern.Lazy
	name    string
	version string
}

type clientRule struct {
	re      *pattern.Lazy
	name    string
	version string
	engine  *engineSpec
}

type clientFamily struct {
	typ   ClientType
	rules []clientRule
}

// engineSpec is the rendering engine a browser rule declares. Versions are
// sorted by descending major version.
type engineSpec struct {
	defaultName string
	versions    []engineVersion
}

type engineVersion struct {
	major int
	name  string
}

// forVersion returns the engine in effect for a browser version.
func (e *engineSpec) forVersion(version string) string {
	if major, ok := majorVersion(version); ok {
		for _, v := range e.versions {
			if major >= v.major {
				return v.name
			}
		}
	}
	return e.defaultName
}

type engineRule struct {
	re   *pattern.Lazy
	name string
}

type deviceFamily struct {
	path     string
	gate     *pattern.Lazy
	fallback DeviceType
	brands   []deviceBrand
}

type deviceBrand struct {
	brand  string
	re     *pattern.Lazy
	device DeviceType
	model  string
	models []deviceModel
}

type deviceModel struct {
	re     *pattern.Lazy
	model  string
	device DeviceType
	brand  string
}

// corpus is the immutable rule set a Detector evaluates.
type corpus struct {
	bots         []botRule
	oss          []osRule
	clients      []clientFamily
	engines      []engineRule
	appHints     map[string]string
	browserHints map[string]string
	devices      []deviceFamily
	builtin      *builtinPatterns
}

type rawBot struct {
	Regex    string       `yaml:"regex"`
	Name     string       `yaml:"name"`
	Category string       `yaml:"category"`
	URL      string       `yaml:"url"`
	Producer *BotProducer `yaml:"producer"`
}

type rawRule struct {
	Regex   string     `yaml:"regex"`
	Name    string     `yaml:"name"`
	Version string     `yaml:"version"`
	Engine  *rawEngine `yaml:"engine"`
}

type rawEngine struct {
	Default  string            `yaml:"default"`
	Versions map[string]string `yaml:"versions"`
}

type rawDevice struct {
	Regex  string     `yaml:"regex"`
	Device string     `yaml:"device"`
	Model  string     `yaml:"model"`
	Models []rawModel `yaml:"models"`
}

type rawModel struct {
	Regex  string `yaml:"regex"`
	Model  string `yaml:"model"`
	Device string `yaml:"device"`
	Brand  string `yaml:"brand"`
}

// loadCorpus reads every rule file of fsys concurrently. Unless lazy is set,
// every pattern is compiled before it returns so that a broken corpus fails
// here rather than on a request.
func loadCorpus(ctx context.Context, fsys fs.FS, eng *pattern.Engine, lazy bool) (*corpus, error) {
	c := &corpus{
		clients: make([]clientFamily, len(clientFiles)),
		devices: make([]deviceFamily, len(deviceFiles)),
		builtin: newBuiltinPatterns(eng),
	}

	g, gctx := errgroup.WithContext(ctx)
	load := func(fn func() error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn()
		})
	}

	load(func() (err error) {
		c.bots, err = loadBots(fsys, eng)
		return err
	})
	load(func() (err error) {
		c.oss, err = loadOSRules(fsys, eng)
		return err
	})
	load(func() (err error) {
		c.engines, err = loadEngines(fsys, eng)
		return err
	})
	load(func() (err error) {
		c.appHints, err = loadHintTable(fsys, fileAppHints)
		return err
	})
	load(func() (err error) {
		c.browserHints, err = loadHintTable(fsys, fileBrowserHints)
		return err
	})
	for i, f := range clientFiles {
		load(func() error {
			rules, err := loadClientRules(fsys, f.path, eng)
			if err != nil {
				return err
			}
			c.clients[i] = clientFamily{typ: f.typ, rules: rules}
			return nil
		})
	}
	for i, f := range deviceFiles {
		load(func() error {
			brands, err := loadDeviceBrands(fsys, f.path, eng)
			if err != nil {
				return err
			}
			family := deviceFamily{path: f.path, fallback: f.fallback, brands: brands}
			if f.gate != "" {
				family.gate = eng.Lazy(f.gate)
			}
			c.devices[i] = family
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Join(ErrCorpusLoad, err)
	}

	if !lazy {
		if err := compileAll(ctx, c.patterns()); err != nil {
			return nil, errors.Join(ErrCorpusLoad, err)
		}
	}
	return c, nil
}

// compileAll forces compilation of every handle, bounded by GOMAXPROCS.
func compileAll(ctx context.Context, patterns []*pattern.Lazy) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, p := range patterns {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := p.Get()
			return err
		})
	}
	return g.Wait()
}

// patterns lists every handle the corpus may evaluate.
func (c *corpus) patterns() []*pattern.Lazy {
	var out []*pattern.Lazy
	for _, r := range c.bots {
		out = append(out, r.re)
	}
	for _, r := range c.oss {
		out = append(out, r.re)
	}
	for _, f := range c.clients {
		for _, r := range f.rules {
			out = append(out, r.re)
		}
	}
	for _, r := range c.engines {
		out = append(out, r.re)
	}
	for _, f := range c.devices {
		if f.gate != nil {
			out = append(out, f.gate)
		}
		for _, b := range f.brands {
			out = append(out, b.re)
			for _, m := range b.models {
				out = append(out, m.re)
			}
		}
	}
	return append(out, c.builtin.all()...)
}

// counts reports the number of rules per family, keyed for logging.
func (c *corpus) counts() map[string]int {
	counts := map[string]int{
		"bots":    len(c.bots),
		"oss":     len(c.oss),
		"engines": len(c.engines),
		"hints":   len(c.appHints) + len(c.browserHints),
	}
	for _, f := range c.clients {
		counts["clients"] += len(f.rules)
	}
	for _, f := range c.devices {
		counts["devices"] += len(f.brands)
	}
	return counts
}

func readYAML(fsys fs.FS, path string, v any) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Join(ErrMalformedCorpus, fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

func malformed(path string, index int, format string, args ...any) error {
	return errors.Join(ErrMalformedCorpus, fmt.Errorf("%s entry %d: %s", path, index, fmt.Sprintf(format, args...)))
}

func loadBots(fsys fs.FS, eng *pattern.Engine) ([]botRule, error) {
	var raw []rawBot
	if err := readYAML(fsys, fileBots, &raw); err != nil {
		return nil, err
	}

	rules := make([]botRule, 0, len(raw))
	for i, r := range raw {
		if r.Regex == "" || r.Name == "" {
			return nil, malformed(fileBots, i, "regex and name are required")
		}
		rules = append(rules, botRule{
			re: eng.Lazy(r.Regex),
			bot: Bot{
				Name:     r.Name,
				Category: r.Category,
				URL:      r.URL,
				Producer: r.Producer,
			},
		})
	}
	return rules, nil
}

func loadOSRules(fsys fs.FS, eng *pattern.Engine) ([]osRule, error) {
	var raw []rawRule
	if err := readYAML(fsys, fileOSS, &raw); err != nil {
		return nil, err
	}

	rules := make([]osRule, 0, len(raw))
	for i, r := range raw {
		if r.Regex == "" || r.Name == "" {
			return nil, malformed(fileOSS, i, "regex and name are required")
		}
		rules = append(rules, osRule{re: eng.Lazy(r.Regex), name: r.Name, version: r.Version})
	}
	return rules, nil
}

func loadClientRules(fsys fs.FS, path string, eng *pattern.Engine) ([]clientRule, error) {
	var raw []rawRule
	if err := readYAML(fsys, path, &raw); err != nil {
		return nil, err
	}

	rules := make([]clientRule, 0, len(raw))
	for i, r := range raw {
		if r.Regex == "" || r.Name == "" {
			return nil, malformed(path, i, "regex and name are required")
		}
		rule := clientRule{re: eng.Lazy(r.Regex), name: r.Name, version: r.Version}
		if r.Engine != nil {
			spec, err := newEngineSpec(r.Engine)
			if err != nil {
				return nil, malformed(path, i, "%v", err)
			}
			rule.engine = spec
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func newEngineSpec(raw *rawEngine) (*engineSpec, error) {
	spec := &engineSpec{defaultName: raw.Default}
	for key, name := range raw.Versions {
		major, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("engine version %q is not a major version", key)
		}
		spec.versions = append(spec.versions, engineVersion{major: major, name: name})
	}
	sort.Slice(spec.versions, func(i, j int) bool {
		return spec.versions[i].major > spec.versions[j].major
	})
	return spec, nil
}

func loadEngines(fsys fs.FS, eng *pattern.Engine) ([]engineRule, error) {
	var raw []rawRule
	if err := readYAML(fsys, fileEngines, &raw); err != nil {
		return nil, err
	}

	rules := make([]engineRule, 0, len(raw))
	for i, r := range raw {
		if r.Regex == "" || r.Name == "" {
			return nil, malformed(fileEngines, i, "regex and name are required")
		}
		rules = append(rules, engineRule{re: eng.Lazy(r.Regex), name: r.Name})
	}
	return rules, nil
}

func loadHintTable(fsys fs.FS, path string) (map[string]string, error) {
	table := make(map[string]string)
	if err := readYAML(fsys, path, &table); err != nil {
		return nil, err
	}
	return table, nil
}

// loadDeviceBrands decodes a brand -> rule mapping, keeping the brand order
// of the file.
func loadDeviceBrands(fsys fs.FS, path string, eng *pattern.Engine) ([]deviceBrand, error) {
	var doc yaml.Node
	if err := readYAML(fsys, path, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Join(ErrMalformedCorpus, fmt.Errorf("%s: expected a brand mapping", path))
	}

	brands := make([]deviceBrand, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		index := i / 2
		name := root.Content[i].Value

		var raw rawDevice
		if err := root.Content[i+1].Decode(&raw); err != nil {
			return nil, malformed(path, index, "%v", err)
		}
		if raw.Regex == "" {
			return nil, malformed(path, index, "brand %q has no regex", name)
		}

		device, err := corpusDeviceType(raw.Device)
		if err != nil {
			return nil, malformed(path, index, "brand %q: %v", name, err)
		}
		brand := deviceBrand{
			brand:  name,
			re:     eng.Lazy(raw.Regex),
			device: device,
			model:  raw.Model,
		}
		for j, m := range raw.Models {
			if m.Regex == "" {
				return nil, malformed(path, index, "brand %q model %d has no regex", name, j)
			}
			mdevice, err := corpusDeviceType(m.Device)
			if err != nil {
				return nil, malformed(path, index, "brand %q: %v", name, err)
			}
			brand.models = append(brand.models, deviceModel{
				re:     eng.Lazy(m.Regex),
				model:  m.Model,
				device: mdevice,
				brand:  m.Brand,
			})
		}
		brands = append(brands, brand)
	}
	return brands, nil
}

func corpusDeviceType(name string) (DeviceType, error) {
	if strings.TrimSpace(name) == "" {
		return "", nil
	}
	dt, ok := ParseDeviceType(name)
	if !ok {
		return "", fmt.Errorf("unknown device type %q", name)
	}
	return dt, nil
}
