// Package web holds the single-page form served at the API root.
package web

import _ "embed"

//go:embed index.html
var Index []byte
