package profil

import (
	"embed"

	"github.com/klwxsrx/securite-service/pkg/sql"
)

var Migrations = sql.FSMigrations("profil", migrationFiles)

//go:embed *.sql
var migrationFiles embed.FS
