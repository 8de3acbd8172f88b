package api

import (
	"context"

	"github.com/klwxsrx/securite-service/internal/profil/app/service"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
)

var (
	ErrProfilNotFound  = service.ErrProfilNotFound
	ErrInvalidProfil   = service.ErrInvalidProfil
	ErrInvalidArgument = service.ErrInvalidArgument
)

type ProfilService interface {
	Get(context.Context, domain.ProfilID) (*service.ProfilDto, error)
	Save(context.Context, *service.ProfilDto) (*service.ProfilDto, error)
	LinkSecteurs(context.Context, domain.ProfilID, []domain.SecteurID) error
}
