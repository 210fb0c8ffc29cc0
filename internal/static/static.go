// Package static holds embedded assets served by the HTTP API.
package static

import _ "embed"

// APIMD is the API reference served at GET /api.md.
//
//go:embed api.md
var APIMD []byte
