package http

import (
	"net/http"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type SaveAllUtilisateursHandler struct {
	utilisateurService service.Utilisateur
}

func NewSaveAllUtilisateursHandler(utilisateurService service.Utilisateur) SaveAllUtilisateursHandler {
	return SaveAllUtilisateursHandler{utilisateurService: utilisateurService}
}

func (h SaveAllUtilisateursHandler) Method() string {
	return http.MethodPost
}

func (h SaveAllUtilisateursHandler) Path() string {
	return "/utilisateur/saveAll"
}

func (h SaveAllUtilisateursHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[[]service.UtilisateurDto](), err)
	if err != nil {
		return err
	}

	result, err := h.utilisateurService.SaveAll(r.Context(), in)
	setSaveErrorStatusCode(w, err)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
