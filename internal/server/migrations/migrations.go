// Package migrations embeds the goose SQL migrations of the users API.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
