package pattern

import "strings"

// Captures holds the groups of a successful match, whole match first.
type Captures []string

// Group returns capture i, or an empty string when it does not exist.
func (c Captures) Group(i int) string {
	if i >= 0 && i < len(c) {
		return c[i]
	}
	return ""
}

// Expand substitutes $1..$9 in template with the corresponding captures.
// The result is trimmed of surrounding whitespace.
func (c Captures) Expand(template string) string {
	if !strings.Contains(template, "$") {
		return strings.TrimSpace(template)
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch == '$' && i+1 < len(template) && template[i+1] >= '1' && template[i+1] <= '9' {
			b.WriteString(c.Group(int(template[i+1] - '0')))
			i++
			continue
		}
		b.WriteByte(ch)
	}
	return strings.TrimSpace(b.String())
}

// Version expands a version template and normalises the result: underscores
// become dots, surrounding dots and spaces are dropped and trailing ".0"
// segments are trimmed.
func Version(template string, c Captures) string {
	v := c.Expand(template)
	v = strings.ReplaceAll(v, "_", ".")
	v = strings.Trim(v, " .")
	return TrimVersion(v)
}

// TrimVersion strips a trailing run of ".0" segments, keeping at least one
// segment: "14.0.0" becomes "14", "0.0" becomes "0" and "0" is kept.
func TrimVersion(v string) string {
	for len(v) > 2 && strings.HasSuffix(v, ".0") {
		v = v[:len(v)-2]
	}
	return v
}
