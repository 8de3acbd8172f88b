package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/securite-service/internal/profil/app/service"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type GetProfilHandler struct {
	profilService service.Profil
}

func NewGetProfilHandler(profilService service.Profil) GetProfilHandler {
	return GetProfilHandler{profilService: profilService}
}

func (h GetProfilHandler) Method() string {
	return http.MethodGet
}

func (h GetProfilHandler) Path() string {
	return "/profil/{profilId:[0-9]+}"
}

func (h GetProfilHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	profilID, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int64]("profilId"), err)
	if err != nil {
		return err
	}

	result, err := h.profilService.Get(r.Context(), domain.ProfilID(profilID))
	if errors.Is(err, service.ErrProfilNotFound) {
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
