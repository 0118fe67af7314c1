// Package schema holds the GraphQL SDL served by the API.
package schema

import _ "embed"

//go:embed schema.graphql
var sdl string

// String returns the schema definition.
func String() string {
	return sdl
}
