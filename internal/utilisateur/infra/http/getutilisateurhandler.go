package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type GetUtilisateurHandler struct {
	utilisateurService service.Utilisateur
}

func NewGetUtilisateurHandler(utilisateurService service.Utilisateur) GetUtilisateurHandler {
	return GetUtilisateurHandler{utilisateurService: utilisateurService}
}

func (h GetUtilisateurHandler) Method() string {
	return http.MethodGet
}

func (h GetUtilisateurHandler) Path() string {
	return "/utilisateur/{utilisateurId:[0-9]+}"
}

func (h GetUtilisateurHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	utilisateurID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int64]("utilisateurId"), err)
	if err != nil {
		return err
	}

	result, err := h.utilisateurService.Get(r.Context(), domain.UtilisateurID(utilisateurID))
	if errors.Is(err, service.ErrUtilisateurNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
