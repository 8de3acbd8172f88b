package utilisateur

import (
	"embed"

	"github.com/klwxsrx/securite-service/pkg/sql"
)

var Migrations = sql.FSMigrations("utilisateur", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
