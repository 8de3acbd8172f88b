package http

import (
	"net/http"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type ListUtilisateursByTypeHandler struct {
	utilisateurService service.Utilisateur
}

func NewListUtilisateursByTypeHandler(utilisateurService service.Utilisateur) ListUtilisateursByTypeHandler {
	return ListUtilisateursByTypeHandler{utilisateurService: utilisateurService}
}

func (h ListUtilisateursByTypeHandler) Method() string {
	return http.MethodGet
}

func (h ListUtilisateursByTypeHandler) Path() string {
	return "/utilisateur/list"
}

func (h ListUtilisateursByTypeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	code, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[domain.TypeUtilisateurCode]("typeUtilisateurCode"), err)
	if err != nil {
		return err
	}

	result, err := h.utilisateurService.ListByType(r.Context(), code)
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
