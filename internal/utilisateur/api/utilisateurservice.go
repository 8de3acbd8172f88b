package api

import (
	"context"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	"github.com/klwxsrx/securite-service/pkg/pagination"
)

var (
	ErrUtilisateurNotFound = service.ErrUtilisateurNotFound
	ErrInvalidUtilisateur  = service.ErrInvalidUtilisateur
	ErrInvalidCriteria     = service.ErrInvalidCriteria
)

type UtilisateurService interface {
	Get(context.Context, domain.UtilisateurID) (*service.UtilisateurDto, error)
	ListByType(context.Context, domain.TypeUtilisateurCode) ([]service.UtilisateurDto, error)
	Save(context.Context, service.UtilisateurDto) (*service.UtilisateurDto, error)
	SaveAll(context.Context, []service.UtilisateurDto) ([]service.UtilisateurDto, error)
	Search(context.Context, service.SearchCriteria, pagination.Pageable) (pagination.Page[service.UtilisateurDto], error)
	DeleteAll(context.Context, []domain.UtilisateurID) error
}
