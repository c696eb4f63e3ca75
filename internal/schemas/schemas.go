// Package schemas embeds the JSON schemas for lifecycle events consumed
// from the broker. Every event carries event-type and event-version
// headers; the schema path events/<event-name>/<version>.json maps onto
// that pair.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS
