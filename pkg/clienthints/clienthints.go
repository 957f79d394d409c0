package clienthints

import (
	"net/http"
	"sort"
	"strings"
)

// Header is a single raw request header.
type Header struct {
	Name  string
	Value string
}

// Brand is one entry of the Sec-CH-UA brand list.
type Brand struct {
	Name    string
	Version string
}

// AcceptCH lists the hints the detector consumes, suitable for an Accept-CH
// response header.
const AcceptCH = "Sec-CH-UA-Arch, Sec-CH-UA-Bitness, Sec-CH-UA-Full-Version, Sec-CH-UA-Full-Version-List, " +
	"Sec-CH-UA-Mobile, Sec-CH-UA-Model, Sec-CH-UA-Platform, Sec-CH-UA-Platform-Version, Sec-CH-UA-Form-Factors"

// Set holds normalized client hints. Empty fields mean the hint was absent
// or unparseable.
type Set struct {
	Architecture    string
	Bitness         string
	Mobile          bool
	Model           string
	Platform        string
	PlatformVersion string
	UAFullVersion   string
	Brands          []Brand
	FormFactors     []string
	App             string
}

// FromHeaders builds a Set from ordered header pairs. Later headers override
// earlier ones, except that a well-formed Sec-CH-UA-Full-Version-List always
// wins over Sec-CH-UA.
func FromHeaders(headers []Header) *Set {
	s := &Set{}
	fullList := false

	for _, h := range headers {
		value := strings.TrimSpace(h.Value)
		switch normalizeName(h.Name) {
		case "sec-ch-ua-arch":
			s.Architecture = unquote(value)
		case "sec-ch-ua-bitness":
			s.Bitness = unquote(value)
		case "sec-ch-ua-mobile":
			s.Mobile = value == "?1"
		case "sec-ch-ua-model":
			s.Model = unquote(value)
		case "sec-ch-ua-platform":
			s.Platform = unquote(value)
			if strings.EqualFold(s.Platform, "unknown") {
				s.Platform = ""
			}
		case "sec-ch-ua-platform-version":
			s.PlatformVersion = unquote(value)
		case "sec-ch-ua-full-version":
			s.UAFullVersion = unquote(value)
		case "sec-ch-ua-full-version-list":
			// a malformed full list counts as absent
			if brands := parseBrands(value); brands != nil {
				s.Brands, fullList = brands, true
			}
		case "sec-ch-ua":
			if brands := parseBrands(value); brands != nil && !fullList {
				s.Brands = brands
			}
		case "sec-ch-ua-form-factors", "sec-ch-ua-form-factor":
			s.FormFactors = parseTokens(value)
		case "x-requested-with":
			s.App = unquote(value)
			if strings.EqualFold(s.App, "xmlhttprequest") {
				s.App = ""
			}
		}
	}

	return s
}

// FromHTTP builds a Set from request headers. Header names are visited in
// sorted order so the result does not depend on map iteration.
func FromHTTP(h http.Header) *Set {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make([]Header, 0, len(names))
	for _, name := range names {
		for _, v := range h[name] {
			headers = append(headers, Header{Name: name, Value: v})
		}
	}
	return FromHeaders(headers)
}

// IsEmpty reports whether no hint carried any value.
func (s *Set) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.Architecture == "" && s.Bitness == "" && !s.Mobile && s.Model == "" &&
		s.Platform == "" && s.PlatformVersion == "" && s.UAFullVersion == "" &&
		len(s.Brands) == 0 && len(s.FormFactors) == 0 && s.App == ""
}

// HasFormFactor reports whether the form-factor hint lists name.
func (s *Set) HasFormFactor(name string) bool {
	if s == nil {
		return false
	}
	for _, ff := range s.FormFactors {
		if strings.EqualFold(ff, name) {
			return true
		}
	}
	return false
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.TrimPrefix(name, "http-")
}
