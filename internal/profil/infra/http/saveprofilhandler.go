package http

import (
	"errors"
	"net/http"

	"github.com/klwxsrx/securite-service/internal/profil/app/service"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
)

type SaveProfilHandler struct {
	profilService service.Profil
}

func NewSaveProfilHandler(profilService service.Profil) SaveProfilHandler {
	return SaveProfilHandler{profilService: profilService}
}

func (h SaveProfilHandler) Method() string {
	return http.MethodPost
}

func (h SaveProfilHandler) Path() string {
	return "/profil/save"
}

func (h SaveProfilHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	in, err := pkghttp.ParseRequest(r, pkghttp.JSONBody[service.ProfilDto](), err)
	if err != nil {
		return err
	}

	result, err := h.profilService.Save(r.Context(), &in)
	switch {
	case errors.Is(err, service.ErrInvalidProfil):
		w.SetStatusCode(http.StatusBadRequest)
	case errors.Is(err, service.ErrProfilNotFound):
		w.SetStatusCode(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	w.SetJSONBody(result)
	return nil
}
