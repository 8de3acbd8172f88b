package utilisateur

import (
	"github.com/klwxsrx/securite-service/internal/pkg/cmd"
	"github.com/klwxsrx/securite-service/internal/utilisateur/api"
	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	"github.com/klwxsrx/securite-service/internal/utilisateur/infra"
	"github.com/klwxsrx/securite-service/internal/utilisateur/infra/http"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/lazy"
	"github.com/klwxsrx/securite-service/pkg/persistence"
	"github.com/klwxsrx/securite-service/pkg/sql"
	pkgtime "github.com/klwxsrx/securite-service/pkg/time"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

type DependencyContainer struct {
	UtilisateurService lazy.Loader[api.UtilisateurService]

	getUtilisateurHandler         lazy.Loader[http.GetUtilisateurHandler]
	listUtilisateursByTypeHandler lazy.Loader[http.ListUtilisateursByTypeHandler]
	saveUtilisateurHandler        lazy.Loader[http.SaveUtilisateurHandler]
	saveAllUtilisateursHandler    lazy.Loader[http.SaveAllUtilisateursHandler]
	searchUtilisateursHandler     lazy.Loader[http.SearchUtilisateursHandler]
	deleteAllUtilisateursHandler  lazy.Loader[http.DeleteAllUtilisateursHandler]
}

func NewDependencyContainer(
	db lazy.Loader[sql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
	validator lazy.Loader[validation.Validator],
	clock lazy.Loader[pkgtime.Clock],
) DependencyContainer {
	transaction := transactionProvider(db)
	sqlContainer := infra.NewSQLContainer(db, dbMigrations)
	utilisateurService := utilisateurServiceProvider(transaction, sqlContainer, validator, clock)

	return DependencyContainer{
		UtilisateurService: lazy.New(func() (api.UtilisateurService, error) {
			return utilisateurService.Load()
		}),
		getUtilisateurHandler: lazy.New(func() (http.GetUtilisateurHandler, error) {
			return http.NewGetUtilisateurHandler(utilisateurService.MustLoad()), nil
		}),
		listUtilisateursByTypeHandler: lazy.New(func() (http.ListUtilisateursByTypeHandler, error) {
			return http.NewListUtilisateursByTypeHandler(utilisateurService.MustLoad()), nil
		}),
		saveUtilisateurHandler: lazy.New(func() (http.SaveUtilisateurHandler, error) {
			return http.NewSaveUtilisateurHandler(utilisateurService.MustLoad()), nil
		}),
		saveAllUtilisateursHandler: lazy.New(func() (http.SaveAllUtilisateursHandler, error) {
			return http.NewSaveAllUtilisateursHandler(utilisateurService.MustLoad()), nil
		}),
		searchUtilisateursHandler: lazy.New(func() (http.SearchUtilisateursHandler, error) {
			return http.NewSearchUtilisateursHandler(utilisateurService.MustLoad()), nil
		}),
		deleteAllUtilisateursHandler: lazy.New(func() (http.DeleteAllUtilisateursHandler, error) {
			return http.NewDeleteAllUtilisateursHandler(utilisateurService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.listUtilisateursByTypeHandler.MustLoad())
	registry.Register(c.getUtilisateurHandler.MustLoad())
	registry.Register(c.saveUtilisateurHandler.MustLoad())
	registry.Register(c.saveAllUtilisateursHandler.MustLoad())
	registry.Register(c.searchUtilisateursHandler.MustLoad())
	registry.Register(c.deleteAllUtilisateursHandler.MustLoad())
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

func utilisateurServiceProvider(
	transaction lazy.Loader[persistence.Transaction],
	sqlContainer lazy.Loader[infra.SQLContainer],
	validator lazy.Loader[validation.Validator],
	clock lazy.Loader[pkgtime.Clock],
) lazy.Loader[service.Utilisateur] {
	return lazy.New(func() (service.Utilisateur, error) {
		return service.NewUtilisateur(
			sqlContainer.MustLoad().UtilisateurRepo.MustLoad(),
			transaction.MustLoad(),
			validator.MustLoad(),
			clock.MustLoad(),
		), nil
	})
}
