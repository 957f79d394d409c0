package useragent

import (
	"strings"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
)

// Clients that only ship on television sets.
var tvClients = map[string]struct{}{
	"Kylo":               {},
	"Espial TV Browser":  {},
	"LUJO TV Browser":    {},
	"LogicUI TV Browser": {},
	"Open TV Browser":    {},
	"Seraphic Sraf":      {},
	"Opera Devices":      {},
	"Crow Browser":       {},
	"Vewd Browser":       {},
	"TiviMate":           {},
	"Quick Search TV":    {},
	"QJY TV Browser":     {},
	"TV Bro":             {},
}

// Operating systems whose hardware is always made by Apple.
var appleOSes = map[string]struct{}{
	"iOS":     {},
	"iPadOS":  {},
	"Mac":     {},
	"tvOS":    {},
	"watchOS": {},
}

// Sec-CH-UA-Form-Factors values in order of precedence.
var formFactorTypes = []struct {
	hint string
	typ  DeviceType
}{
	{"automotive", DeviceTypeCarBrowser},
	{"xr", DeviceTypeWearable},
	{"watch", DeviceTypeWearable},
	{"mobile", DeviceTypeSmartPhone},
	{"tablet", DeviceTypeTablet},
	{"eink", DeviceTypeTablet},
	{"desktop", DeviceTypeDesktop},
}

// lookupDevice resolves brand, model and type. The device rules run first,
// then form-factor hints and finally the type heuristics over the resolved
// client and OS.
func (d *Detector) lookupDevice(ua string, client *Client, hints *clienthints.Set, os *OS) (Device, error) {
	var dev Device
	if hints != nil {
		dev.MobileClientHint = hints.Mobile
	}

	matched, err := d.matchDevice(ua, &dev)
	if err != nil {
		return Device{}, err
	}
	if matched && dev.Model == "" && hints != nil {
		dev.Model = cleanModel(hints.Model)
	}
	if dev.Type == "" {
		dev.Type = formFactorType(hints)
	}

	m := &matcher{ua: ua}
	dev.TouchEnabled = m.match(d.corpus.builtin.touch)
	d.applyHeuristics(m, &dev, client, os)
	if m.err != nil {
		return Device{}, m.err
	}

	if dev.Type != "" && dev.Brand == "" && os != nil {
		if _, ok := appleOSes[os.Name]; ok {
			dev.Brand = "Apple"
		}
	}
	return dev, nil
}

// matchDevice evaluates the device families in order. It reports whether a
// family claimed the user agent.
func (d *Detector) matchDevice(ua string, dev *Device) (bool, error) {
	for _, family := range d.corpus.devices {
		if family.gate != nil {
			ok, err := family.gate.MatchString(ua)
			if err != nil {
				return false, err
			}
			if !ok {
				continue
			}
		}

		for _, b := range family.brands {
			caps, ok, err := b.re.Match(ua)
			if err != nil {
				return false, err
			}
			if !ok {
				continue
			}

			brand, typ := b.brand, b.device
			model := caps.Expand(b.model)
			if len(b.models) > 0 {
				model = ""
				for _, sub := range b.models {
					mcaps, ok, err := sub.re.Match(ua)
					if err != nil {
						return false, err
					}
					if !ok {
						continue
					}
					model = mcaps.Expand(sub.model)
					if sub.device != "" {
						typ = sub.device
					}
					if sub.brand != "" {
						brand = sub.brand
					}
					break
				}
			}

			dev.Type = typ
			dev.Brand = cleanBrand(brand)
			dev.Model = cleanModel(model)
			return true, nil
		}

		if family.gate != nil && family.fallback != "" {
			dev.Type = family.fallback
			return true, nil
		}
	}
	return false, nil
}

func cleanBrand(brand string) string {
	if strings.EqualFold(brand, "Unknown") {
		return ""
	}
	return brand
}

func cleanModel(model string) string {
	model = strings.TrimSpace(strings.ReplaceAll(model, "_", " "))
	model = strings.TrimSpace(strings.TrimSuffix(model, " TD"))
	if model == "Build" {
		return ""
	}
	return model
}

func formFactorType(hints *clienthints.Set) DeviceType {
	for _, ff := range formFactorTypes {
		if hints.HasFormFactor(ff.hint) {
			return ff.typ
		}
	}
	return ""
}

// applyHeuristics infers the device type from the client, the OS and a few
// generic user agent fragments. The steps run in order and later steps may
// override earlier ones.
func (d *Detector) applyHeuristics(m *matcher, dev *Device, client *Client, os *OS) {
	b := d.corpus.builtin

	var osName, osVersion, clientName string
	if os != nil {
		osName, osVersion = os.Name, os.Version
	}
	if client != nil {
		clientName = client.Name
	}
	family := osFamily(os)

	if dev.Type == "" && family == "Android" && (clientName == "Chrome" || clientName == "Chrome Mobile") {
		switch {
		case m.match(b.chromeMobile):
			dev.Type = DeviceTypeSmartPhone
		case m.match(b.chromeTablet):
			dev.Type = DeviceTypeTablet
		}
	}

	if dev.Type == "" && (m.match(b.androidTablet) || m.match(b.operaTablet)) {
		dev.Type = DeviceTypeTablet
	}
	if dev.Type == "" && m.match(b.androidMobile) {
		dev.Type = DeviceTypeSmartPhone
	}

	// Android 3.x shipped on tablets only, everything before it on phones.
	if dev.Type == "" && osName == "Android" && osVersion != "" {
		switch {
		case compareVersions(osVersion, "2.0") < 0:
			dev.Type = DeviceTypeSmartPhone
		case compareVersions(osVersion, "3.0") >= 0 && compareVersions(osVersion, "4.0") < 0:
			dev.Type = DeviceTypeTablet
		}
	}

	if dev.Type == DeviceTypeFeaturePhone && family == "Android" {
		dev.Type = DeviceTypeSmartPhone
	}
	if dev.Type == "" && osName == "Java ME" {
		dev.Type = DeviceTypeFeaturePhone
	}
	if osName == "KaiOS" {
		dev.Type = DeviceTypeFeaturePhone
	}

	// Internet Explorer 10 adds a Touch token on touch screens.
	if dev.Type == "" && dev.TouchEnabled &&
		(osName == "Windows RT" || (osName == "Windows" && osVersion != "" && compareVersions(osVersion, "8") >= 0)) {
		dev.Type = DeviceTypeTablet
	}

	if m.match(b.operaTVStore) {
		dev.Type = DeviceTypeTelevision
	}
	if m.match(b.androidTV) {
		dev.Type = DeviceTypeTelevision
	}
	if dev.Type == "" && m.match(b.smartTV) {
		dev.Type = DeviceTypeTelevision
	}
	if _, ok := tvClients[clientName]; ok {
		dev.Type = DeviceTypeTelevision
	}
	if dev.Type == "" && m.match(b.tvToken) {
		dev.Type = DeviceTypeTelevision
	}

	if dev.Type != DeviceTypeDesktop && strings.Contains(m.ua, "Desktop") &&
		m.match(b.desktop) && !m.match(b.desktopExclude) {
		dev.Type = DeviceTypeDesktop
	}

	if dev.Type == "" && isDesktopOS(family) && !usesMobileBrowser(client) {
		dev.Type = DeviceTypeDesktop
	}
}

func isDesktopOS(family string) bool {
	_, ok := desktopOSFamilies[family]
	return ok
}
