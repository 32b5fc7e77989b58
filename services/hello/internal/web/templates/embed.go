// Package templates provides embedded HTML templates for the greeting page.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
