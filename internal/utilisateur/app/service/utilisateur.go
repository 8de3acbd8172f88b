//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	"github.com/klwxsrx/securite-service/pkg/pagination"
	"github.com/klwxsrx/securite-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/securite-service/pkg/time"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

var (
	ErrUtilisateurNotFound = errors.New("utilisateur not found")
	ErrInvalidUtilisateur  = errors.New("invalid utilisateur")
	ErrInvalidCriteria     = errors.New("invalid search criteria")
)

type (
	Utilisateur interface {
		Get(context.Context, domain.UtilisateurID) (*UtilisateurDto, error)
		ListByType(context.Context, domain.TypeUtilisateurCode) ([]UtilisateurDto, error)
		Save(context.Context, UtilisateurDto) (*UtilisateurDto, error)
		// SaveAll stores either every entry or none of them.
		SaveAll(context.Context, []UtilisateurDto) ([]UtilisateurDto, error)
		Search(context.Context, SearchCriteria, pagination.Pageable) (pagination.Page[UtilisateurDto], error)
		// DeleteAll removes the given utilisateurs in one transaction, unknown ids are skipped.
		DeleteAll(context.Context, []domain.UtilisateurID) error
	}

	UtilisateurDto struct {
		ID                              *domain.UtilisateurID       `json:"id,omitempty"`
		Nom                             string                      `json:"nom" validate:"required,max=100"`
		Prenom                          string                      `json:"prenom" validate:"required,max=100"`
		Email                           string                      `json:"email" validate:"required,max=50,email"`
		DateNaissance                   *time.Time                  `json:"dateNaissance,omitempty"`
		Adresse                         *string                     `json:"adresse,omitempty" validate:"omitempty,max=100"`
		Actif                           *bool                       `json:"actif,omitempty"`
		ProfilID                        int64                       `json:"profilId" validate:"required,gt=0"`
		TypeUtilisateurCode             domain.TypeUtilisateurCode  `json:"typeUtilisateurCode,omitempty" validate:"omitempty,enum"`
		TypeUtilisateurCodeOneToOneType *domain.TypeUtilisateurCode `json:"typeUtilisateurCodeOneToOneType,omitempty" validate:"omitempty,enum"`
		DateCreation                    *time.Time                  `json:"dateCreation,omitempty"`
		DateModification                *time.Time                  `json:"dateModification,omitempty"`
	}

	// SearchCriteria fields are combined with AND, nil fields are ignored.
	// Dates match the whole UTC calendar day they fall on.
	SearchCriteria struct {
		UtilisateurID                   *domain.UtilisateurID
		Email                           *string `validate:"omitempty,email"`
		Nom                             *string `validate:"omitempty,max=100"`
		ProfilID                        *int64
		TypeUtilisateurCode             *domain.TypeUtilisateurCode
		TypeUtilisateurCodeOneToOneType *domain.TypeUtilisateurCode
		DateCreation                    *time.Time
		DateModification                *time.Time
	}

	utilisateurService struct {
		utilisateurRepo domain.UtilisateurRepository
		transaction     persistence.Transaction
		validator       validation.Validator
		clock           pkgtime.Clock
	}
)

func NewUtilisateur(
	utilisateurRepo domain.UtilisateurRepository,
	transaction persistence.Transaction,
	validator validation.Validator,
	clock pkgtime.Clock,
) Utilisateur {
	return &utilisateurService{
		utilisateurRepo: utilisateurRepo,
		transaction:     transaction,
		validator:       validator,
		clock:           clock,
	}
}

func (s *utilisateurService) Get(ctx context.Context, id domain.UtilisateurID) (*UtilisateurDto, error) {
	utilisateur, err := s.utilisateurRepo.FindOne(ctx, domain.FindUtilisateurSpecification{IDs: []domain.UtilisateurID{id}})
	if errors.Is(err, domain.ErrUtilisateurNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrUtilisateurNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find utilisateur by id: %w", err)
	}

	result := toUtilisateurDto(*utilisateur)
	return &result, nil
}

func (s *utilisateurService) ListByType(ctx context.Context, code domain.TypeUtilisateurCode) ([]UtilisateurDto, error) {
	utilisateurs, err := s.utilisateurRepo.Find(ctx, domain.FindUtilisateurSpecification{
		TypeUtilisateurCodes: []domain.TypeUtilisateurCode{code},
	})
	if err != nil {
		return nil, fmt.Errorf("find utilisateurs by type: %w", err)
	}

	return toUtilisateurDtos(utilisateurs), nil
}

func (s *utilisateurService) Save(ctx context.Context, in UtilisateurDto) (*UtilisateurDto, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUtilisateur, err)
	}

	return persistence.WithinTransactionWithResult(ctx, s.transaction, func(ctx context.Context) (*UtilisateurDto, error) {
		utilisateur, err := s.saveImpl(ctx, in)
		if err != nil {
			return nil, err
		}

		result := toUtilisateurDto(*utilisateur)
		return &result, nil
	})
}

func (s *utilisateurService) SaveAll(ctx context.Context, in []UtilisateurDto) ([]UtilisateurDto, error) {
	for i, item := range in {
		if err := s.validator.Struct(item); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidUtilisateur, i, err)
		}
	}
	if len(in) == 0 {
		return []UtilisateurDto{}, nil
	}

	return persistence.WithinTransactionWithResult(ctx, s.transaction, func(ctx context.Context) ([]UtilisateurDto, error) {
		result := make([]UtilisateurDto, 0, len(in))
		for i, item := range in {
			utilisateur, err := s.saveImpl(ctx, item)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}

			result = append(result, toUtilisateurDto(*utilisateur))
		}

		return result, nil
	})
}

func (s *utilisateurService) Search(
	ctx context.Context,
	criteria SearchCriteria,
	pageable pagination.Pageable,
) (pagination.Page[UtilisateurDto], error) {
	if err := s.validator.Struct(criteria); err != nil {
		return pagination.Page[UtilisateurDto]{}, fmt.Errorf("%w: %w", ErrInvalidCriteria, err)
	}

	utilisateurs, total, err := s.utilisateurRepo.Search(ctx, toFindSpecification(criteria), pageable)
	if err != nil {
		return pagination.Page[UtilisateurDto]{}, fmt.Errorf("search utilisateurs: %w", err)
	}

	return pagination.NewPage(toUtilisateurDtos(utilisateurs), total, pageable), nil
}

func (s *utilisateurService) DeleteAll(ctx context.Context, ids []domain.UtilisateurID) error {
	for _, id := range ids {
		if id <= 0 {
			return fmt.Errorf("%w: id %d", ErrInvalidUtilisateur, id)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	return s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		err := s.utilisateurRepo.Delete(ctx, ids)
		if err != nil {
			return fmt.Errorf("delete utilisateurs: %w", err)
		}

		return nil
	})
}

func (s *utilisateurService) saveImpl(ctx context.Context, in UtilisateurDto) (*domain.Utilisateur, error) {
	now := s.clock.Now(ctx)
	utilisateur := toDomainUtilisateur(in)

	if in.ID == nil {
		id, err := s.utilisateurRepo.NextID(ctx)
		if err != nil {
			return nil, fmt.Errorf("get next utilisateur id: %w", err)
		}

		utilisateur.ID = id
		utilisateur.DateCreation = now
	} else {
		existing, err := s.utilisateurRepo.FindOne(
			s.transaction.WithLock(ctx),
			domain.FindUtilisateurSpecification{IDs: []domain.UtilisateurID{*in.ID}},
		)
		if errors.Is(err, domain.ErrUtilisateurNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrUtilisateurNotFound, *in.ID)
		}
		if err != nil {
			return nil, fmt.Errorf("find utilisateur by id: %w", err)
		}

		existing.Update(utilisateur, now)
		utilisateur = *existing
	}

	if err := s.utilisateurRepo.Store(ctx, &utilisateur); err != nil {
		return nil, fmt.Errorf("store utilisateur: %w", err)
	}

	return &utilisateur, nil
}
