// Package api embeds the OpenAPI description of the HTTP interface.
package api

import (
	_ "embed"
)

// Spec is the OpenAPI 3 document in JSON.
//
//go:embed openapi.json
var Spec []byte
