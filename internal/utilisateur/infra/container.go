package infra

import (
	"github.com/klwxsrx/securite-service/data/sql/utilisateur"
	"github.com/klwxsrx/securite-service/internal/pkg/cmd"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	"github.com/klwxsrx/securite-service/internal/utilisateur/infra/sql"
	"github.com/klwxsrx/securite-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/securite-service/pkg/sql"
)

type SQLContainer struct {
	UtilisateurRepo lazy.Loader[domain.UtilisateurRepository]
}

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustRegister(utilisateur.Migrations)

		return SQLContainer{
			UtilisateurRepo: utilisateurRepoProvider(db),
		}, nil
	})
}

func utilisateurRepoProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[domain.UtilisateurRepository] {
	return lazy.New(func() (domain.UtilisateurRepository, error) {
		return sql.NewUtilisateurRepository(db.MustLoad()), nil
	})
}
