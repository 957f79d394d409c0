// Package regexes holds the default rule corpus in the device-detector YAML
// schema.
package regexes

import "embed"

// FS is the embedded default corpus, rooted at this directory.
//
//go:embed *.yml client device
var FS embed.FS
