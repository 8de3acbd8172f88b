package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/securite-service/internal/profil/app/service"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type LinkProfilSecteursHandler struct {
	profilService service.Profil
}

func NewLinkProfilSecteursHandler(profilService service.Profil) LinkProfilSecteursHandler {
	return LinkProfilSecteursHandler{profilService: profilService}
}

func (h LinkProfilSecteursHandler) Method() string {
	return http.MethodPut
}

func (h LinkProfilSecteursHandler) Path() string {
	return "/profil/{profilId:[0-9]+}/secteurs"
}

func (h LinkProfilSecteursHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	profilID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int64]("profilId"), err)
	secteurIDs, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[[]domain.SecteurID](), err)
	if err != nil {
		return err
	}

	err = h.profilService.LinkSecteurs(r.Context(), domain.ProfilID(profilID), secteurIDs)
	switch {
	case errors.Is(err, service.ErrInvalidProfil):
		w.SetStatusCode(http.StatusBadRequest)
	case errors.Is(err, service.ErrProfilNotFound):
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetStatusCode(http.StatusNoContent)
	return nil
}
