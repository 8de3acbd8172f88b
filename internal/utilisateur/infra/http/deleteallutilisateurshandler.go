package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type DeleteAllUtilisateursHandler struct {
	utilisateurService service.Utilisateur
}

func NewDeleteAllUtilisateursHandler(utilisateurService service.Utilisateur) DeleteAllUtilisateursHandler {
	return DeleteAllUtilisateursHandler{utilisateurService: utilisateurService}
}

func (h DeleteAllUtilisateursHandler) Method() string {
	return http.MethodDelete
}

func (h DeleteAllUtilisateursHandler) Path() string {
	return "/utilisateur/deleteAll"
}

// Handle expects ids as repeated utiId query values.
func (h DeleteAllUtilisateursHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	rawIDs, err := pkghttp.ParseRequest(r, pkghttp.QueryParameters[int64]("utiId"), err)
	if err != nil {
		return err
	}

	ids := make([]domain.UtilisateurID, 0, len(rawIDs))
	for _, id := range rawIDs {
		ids = append(ids, domain.UtilisateurID(id))
	}

	err = h.utilisateurService.DeleteAll(r.Context(), ids)
	if errors.Is(err, service.ErrInvalidUtilisateur) {
		w.SetStatusCode(http.StatusBadRequest)
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
