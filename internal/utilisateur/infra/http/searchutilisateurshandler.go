package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/pagination"
)

type SearchUtilisateursHandler struct {
	utilisateurService service.Utilisateur
}

func NewSearchUtilisateursHandler(utilisateurService service.Utilisateur) SearchUtilisateursHandler {
	return SearchUtilisateursHandler{utilisateurService: utilisateurService}
}

func (h SearchUtilisateursHandler) Method() string {
	return http.MethodPost
}

func (h SearchUtilisateursHandler) Path() string {
	return "/utilisateur/search"
}

// Handle reads every criterion from the query string, the request body is ignored.
func (h SearchUtilisateursHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	utilisateurID, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int64]("utilisateurId"), err)
	email, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("email"), err)
	nom, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("nom"), err)
	profilID, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int64]("profilId"), err)
	typeCode, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[domain.TypeUtilisateurCode]("typeUtilisateurCode"), err)
	oneToOneType, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[domain.TypeUtilisateurCode]("typeUtilisateurCodeOneToOneType"), err)
	dateCreation, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[time.Time]("dateCreation"), err)
	dateModification, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[time.Time]("dateModification"), err)
	page, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("page"), err)
	size, err := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[int]("size"), err)
	if err != nil {
		return err
	}

	criteria := service.SearchCriteria{
		Email:                           email,
		Nom:                             nom,
		ProfilID:                        profilID,
		TypeUtilisateurCode:             typeCode,
		TypeUtilisateurCodeOneToOneType: oneToOneType,
		DateCreation:                    dateCreation,
		DateModification:                dateModification,
	}
	if utilisateurID != nil {
		id := domain.UtilisateurID(*utilisateurID)
		criteria.UtilisateurID = &id
	}

	result, err := h.utilisateurService.Search(r.Context(), criteria, pagination.NewPageable(page, size))
	if errors.Is(err, service.ErrInvalidCriteria) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
