package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type SaveUtilisateurHandler struct {
	utilisateurService service.Utilisateur
}

func NewSaveUtilisateurHandler(utilisateurService service.Utilisateur) SaveUtilisateurHandler {
	return SaveUtilisateurHandler{utilisateurService: utilisateurService}
}

func (h SaveUtilisateurHandler) Method() string {
	return http.MethodPost
}

func (h SaveUtilisateurHandler) Path() string {
	return "/utilisateur/save"
}

func (h SaveUtilisateurHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.UtilisateurDto](), err)
	if err != nil {
		return err
	}

	result, err := h.utilisateurService.Save(r.Context(), in)
	setSaveErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}

func setSaveErrorStatusCode(w pkghttp.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidUtilisateur):
		w.SetStatusCode(http.StatusBadRequest)
	case errors.Is(err, service.ErrUtilisateurNotFound):
		w.SetStatusCode(http.StatusNotFound)
	}
}
