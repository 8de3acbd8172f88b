package profil

import (
	"github.com/klwxsrx/securite-service/internal/pkg/cmd"
	"github.com/klwxsrx/securite-service/internal/profil/api"
	"github.com/klwxsrx/securite-service/internal/profil/app/service"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
	"github.com/klwxsrx/securite-service/internal/profil/infra"
	"github.com/klwxsrx/securite-service/internal/profil/infra/http"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/lazy"
	"github.com/klwxsrx/securite-service/pkg/persistence"
	"github.com/klwxsrx/securite-service/pkg/sql"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

type DependencyContainer struct {
	ProfilService lazy.Loader[api.ProfilService]

	getProfilHandler          lazy.Loader[http.GetProfilHandler]
	saveProfilHandler         lazy.Loader[http.SaveProfilHandler]
	linkProfilSecteursHandler lazy.Loader[http.LinkProfilSecteursHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	httpClients lazy.Loader[cmd.HTTPClientFactory],
	validator lazy.Loader[validation.Validator],
) DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)
	serviceContainer := infra.NewServiceContainer(httpClients)
	profilService := profilServiceProvider(transaction, sqlContainer, serviceContainer, validator)

	return DependencyContainer{
		ProfilService: lazy.New(func() (api.ProfilService, error) {
			return profilService.Load()
		}),
		getProfilHandler: lazy.New(func() (http.GetProfilHandler, error) {
			return http.NewGetProfilHandler(profilService.MustLoad()), nil
		}),
		saveProfilHandler: lazy.New(func() (http.SaveProfilHandler, error) {
			return http.NewSaveProfilHandler(profilService.MustLoad()), nil
		}),
		linkProfilSecteursHandler: lazy.New(func() (http.LinkProfilSecteursHandler, error) {
			return http.NewLinkProfilSecteursHandler(profilService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.saveProfilHandler.MustLoad())
	registry.Register(c.getProfilHandler.MustLoad())
	registry.Register(c.linkProfilSecteursHandler.MustLoad())
}

func transactionProvider(db lazy.Loader[sql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return sql.NewTransaction(
			db.MustLoad(),
			domain.Name,
			nil,
		), nil
	})
}

func profilServiceProvider(
	transaction lazy.Loader[persistence.Transaction],
	sqlContainer lazy.Loader[infra.SQLContainer],
	serviceContainer lazy.Loader[infra.ServiceContainer],
	validator lazy.Loader[validation.Validator],
) lazy.Loader[service.Profil] {
	return lazy.New(func() (service.Profil, error) {
		return service.NewProfil(
			sqlContainer.MustLoad().ProfilRepo.MustLoad(),
			serviceContainer.MustLoad().UtilisateurService.MustLoad(),
			transaction.MustLoad(),
			validator.MustLoad(),
		), nil
	})
}
