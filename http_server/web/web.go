// Package web holds the static client page.
package web

import _ "embed"

//go:embed index.html
var Index []byte
