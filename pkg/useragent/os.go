package useragent

import (
	"strings"

	"github.com/dmitrymomot/devicedetector/pkg/clienthints"
	"github.com/dmitrymomot/devicedetector/pkg/pattern"
)

// OS families group related systems under one umbrella name.
var osFamilies = map[string][]string{
	"Android":        {"Android", "Fire OS", "HarmonyOS", "Android TV", "Wear OS", "Lineage OS", "Google TV"},
	"Windows":        {"Windows"},
	"Windows Mobile": {"Windows Phone", "Windows Mobile", "Windows CE", "Windows RT", "Windows IoT"},
	"Mac":            {"Mac"},
	"iOS":            {"iOS", "iPadOS", "watchOS", "tvOS"},
	"GNU/Linux":      {"GNU/Linux", "Ubuntu", "Debian", "Fedora", "Mint", "Arch Linux", "CentOS", "Red Hat", "SUSE", "Gentoo"},
	"Chrome OS":      {"Chrome OS", "Chromium OS"},
	"Unix":           {"FreeBSD", "OpenBSD", "NetBSD", "Solaris"},
	"Java ME":        {"Java ME"},
	"KaiOS":          {"KaiOS"},
	"Tizen":          {"Tizen"},
	"PlayStation":    {"PlayStation"},
}

// Families whose devices count as desktops unless a mobile browser is used.
var desktopOSFamilies = map[string]struct{}{
	"AmigaOS":   {},
	"IBM":       {},
	"GNU/Linux": {},
	"Mac":       {},
	"Unix":      {},
	"Windows":   {},
	"BeOS":      {},
	"Chrome OS": {},
}

var osFamilyOf = func() map[string]string {
	m := make(map[string]string)
	for family, names := range osFamilies {
		for _, name := range names {
			m[name] = family
		}
	}
	return m
}()

// osFamily returns the family of a resolved OS, or an empty string.
func osFamily(os *OS) string {
	if os == nil {
		return ""
	}
	return osFamilyOf[os.Name]
}

// Client hint platform names that differ from rule names.
var hintPlatformNames = map[string]string{
	"macos":       "Mac",
	"linux":       "GNU/Linux",
	"chromium os": "Chrome OS",
	"chrome os":   "Chrome OS",
}

// lookupOS resolves the operating system. Hint name and version supersede
// the values matched from ua; the platform comes from the hint architecture
// when one is sent.
func (c *corpus) lookupOS(ua string, hints *clienthints.Set) (*OS, error) {
	var os *OS
	for _, r := range c.oss {
		caps, ok, err := r.re.Match(ua)
		if err != nil {
			return nil, err
		}
		if ok {
			os = &OS{Name: caps.Expand(r.name), Version: pattern.Version(r.version, caps)}
			break
		}
	}

	if name, version := osFromHints(hints); name != "" {
		if os == nil {
			os = &OS{}
		}
		os.Name = name
		if version != "" {
			os.Version = version
		}
	}
	if os == nil {
		return nil, nil
	}

	platform, err := c.platform(ua, hints)
	if err != nil {
		return nil, err
	}
	os.Platform = platform
	return os, nil
}

func osFromHints(hints *clienthints.Set) (name, version string) {
	if hints == nil || hints.Platform == "" {
		return "", ""
	}

	name = hints.Platform
	if mapped, ok := hintPlatformNames[strings.ToLower(name)]; ok {
		name = mapped
	}

	if name == "Windows" {
		return name, windowsHintVersion(hints.PlatformVersion)
	}
	return name, pattern.TrimVersion(strings.Trim(strings.ReplaceAll(hints.PlatformVersion, "_", "."), " ."))
}

// windowsHintVersion maps a Sec-CH-UA-Platform-Version value to the Windows
// marketing version: majors 1-10 are Windows 10, later majors Windows 11 and
// the 0.x range covers 7, 8 and 8.1.
func windowsHintVersion(v string) string {
	v = strings.TrimSpace(v)
	major, ok := majorVersion(v)
	if !ok {
		return ""
	}
	switch {
	case major > 10:
		return "11"
	case major > 0:
		return "10"
	}

	_, rest, _ := strings.Cut(v, ".")
	minor, _, _ := strings.Cut(rest, ".")
	switch minor {
	case "1":
		return "7"
	case "2":
		return "8"
	case "3":
		return "8.1"
	}
	return ""
}

func (c *corpus) platform(ua string, hints *clienthints.Set) (string, error) {
	if hints != nil {
		switch strings.ToLower(hints.Architecture) {
		case "arm":
			return "ARM", nil
		case "x86":
			if hints.Bitness == "64" {
				return "x64", nil
			}
			return "x86", nil
		}
	}

	for _, r := range c.builtin.platforms {
		ok, err := r.re.MatchString(ua)
		if err != nil {
			return "", err
		}
		if ok {
			return r.name, nil
		}
	}
	return "", nil
}
