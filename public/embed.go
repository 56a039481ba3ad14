// Package public holds the static landing page compiled into the binary.
package public

import (
	_ "embed"
)

// IndexHTML is the landing page served at "/"
//
//go:embed index.html
var IndexHTML []byte
