// README: Embedded SQL migrations applied at startup when a database is configured.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
