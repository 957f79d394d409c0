package clienthints

import (
	"strconv"
	"strings"

	"github.com/dunglas/httpsfv"
)

// unquote returns the content of a quoted string, the bare token when the
// value is unquoted, or "" when quoting is malformed.
func unquote(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, `"`) {
		if strings.Contains(v, `"`) {
			return ""
		}
		return v
	}
	if len(v) < 2 || !strings.HasSuffix(v, `"`) {
		return ""
	}
	inner := v[1 : len(v)-1]
	if strings.Contains(strings.ReplaceAll(inner, `\"`, ""), `"`) {
		return ""
	}
	return strings.ReplaceAll(inner, `\"`, `"`)
}

// parseList decodes a structured-header list of bare items. A list that
// does not parse, or that holds inner lists, yields nil.
func parseList(v string) []httpsfv.Item {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	list, err := httpsfv.UnmarshalList([]string{v})
	if err != nil {
		return nil
	}

	items := make([]httpsfv.Item, 0, len(list))
	for _, m := range list {
		item, ok := m.(httpsfv.Item)
		if !ok {
			return nil
		}
		items = append(items, item)
	}
	return items
}

// bareString renders a string, token or integer item value.
func bareString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case httpsfv.Token:
		return string(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	}
	return "", false
}

func parseBrands(v string) []Brand {
	items := parseList(v)
	if len(items) == 0 {
		return nil
	}

	brands := make([]Brand, 0, len(items))
	for _, item := range items {
		name, ok := bareString(item.Value)
		if !ok || name == "" {
			return nil
		}
		b := Brand{Name: name}
		if item.Params != nil {
			if raw, found := item.Params.Get("v"); found {
				b.Version, _ = bareString(raw)
			}
		}
		brands = append(brands, b)
	}
	return brands
}

func parseTokens(v string) []string {
	items := parseList(v)
	if len(items) == 0 {
		return nil
	}

	tokens := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := bareString(item.Value)
		if !ok || s == "" {
			return nil
		}
		tokens = append(tokens, s)
	}
	return tokens
}
