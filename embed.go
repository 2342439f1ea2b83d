// Package bloodlink exposes the embedded database migrations so that both the
// migrate command and tests can apply them.
package bloodlink

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
