package infra

import (
	"github.com/klwxsrx/securite-service/data/sql/profil"
	"github.com/klwxsrx/securite-service/internal/pkg/cmd"
	commonhttp "github.com/klwxsrx/securite-service/internal/pkg/http"
	"github.com/klwxsrx/securite-service/internal/profil/app/utilisateur"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
	"github.com/klwxsrx/securite-service/internal/profil/infra/sql"
	utilisateurhttp "github.com/klwxsrx/securite-service/internal/profil/infra/utilisateur/http"
	"github.com/klwxsrx/securite-service/pkg/lazy"
	pkgsql "github.com/klwxsrx/securite-service/pkg/sql"
)

type (
	SQLContainer struct {
		ProfilRepo lazy.Loader[domain.ProfilRepository]
	}

	ServiceContainer struct {
		UtilisateurService lazy.Loader[utilisateur.Service]
	}
)

func NewSQLContainer(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[SQLContainer] {
	return lazy.New(func() (SQLContainer, error) {
		dbMigrations.MustLoad().MustRegister(profil.Migrations)

		return SQLContainer{
			ProfilRepo: lazy.New(func() (domain.ProfilRepository, error) {
				return sql.NewProfilRepository(db.MustLoad()), nil
			}),
		}, nil
	})
}

func NewServiceContainer(httpClients lazy.Loader[cmd.HTTPClientFactory]) lazy.Loader[ServiceContainer] {
	return lazy.New(func() (ServiceContainer, error) {
		return ServiceContainer{
			UtilisateurService: lazy.New(func() (utilisateur.Service, error) {
				client := httpClients.MustLoad().MustInitClient(commonhttp.DestinationUtilisateurService)
				return utilisateurhttp.NewUtilisateurService(client), nil
			}),
		}, nil
	})
}
