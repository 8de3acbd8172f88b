//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/klwxsrx/securite-service/internal/profil/app/utilisateur"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
	"github.com/klwxsrx/securite-service/pkg/persistence"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

var (
	ErrProfilNotFound = errors.New("profil not found")
	ErrInvalidProfil  = errors.New("invalid profil")
)

type (
	Profil interface {
		Get(context.Context, domain.ProfilID) (*ProfilDto, error)
		// Save keeps the persisted secteur links, they are changed by LinkSecteurs only.
		Save(context.Context, *ProfilDto) (*ProfilDto, error)
		LinkSecteurs(context.Context, domain.ProfilID, []domain.SecteurID) error
	}

	profilService struct {
		profilRepo         domain.ProfilRepository
		utilisateurService utilisateur.Service
		transaction        persistence.Transaction
		validator          validation.Validator
	}
)

func NewProfil(
	profilRepo domain.ProfilRepository,
	utilisateurService utilisateur.Service,
	transaction persistence.Transaction,
	validator validation.Validator,
) Profil {
	return &profilService{
		profilRepo:         profilRepo,
		utilisateurService: utilisateurService,
		transaction:        transaction,
		validator:          validator,
	}
}

func (s *profilService) Get(ctx context.Context, id domain.ProfilID) (*ProfilDto, error) {
	profil, err := s.profilRepo.FindOne(ctx, id)
	if errors.Is(err, domain.ErrProfilNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrProfilNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("find profil by id: %w", err)
	}

	result, err := NewProfilDto(profil)
	if err != nil {
		return nil, err
	}

	result.Utilisateurs, err = s.utilisateurService.FindByProfil(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find utilisateurs from utilisateurservice: %w", err)
	}

	return result, nil
}

func (s *profilService) Save(ctx context.Context, in *ProfilDto) (*ProfilDto, error) {
	if in == nil {
		return nil, ErrInvalidArgument
	}
	if err := s.validator.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfil, err)
	}

	id, err := persistence.WithinTransactionWithResult(ctx, s.transaction, func(ctx context.Context) (domain.ProfilID, error) {
		if in.ID == nil {
			return s.create(ctx, in)
		}

		return *in.ID, s.update(ctx, in)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

func (s *profilService) LinkSecteurs(ctx context.Context, id domain.ProfilID, secteurIDs []domain.SecteurID) error {
	for _, secteurID := range secteurIDs {
		if secteurID <= 0 {
			return fmt.Errorf("%w: secteur id %d", ErrInvalidProfil, secteurID)
		}
	}

	return s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		profil, err := s.profilRepo.FindOne(s.transaction.WithLock(ctx), id)
		if errors.Is(err, domain.ErrProfilNotFound) {
			return fmt.Errorf("%w: id %d", ErrProfilNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("find profil by id: %w", err)
		}

		profil.Secteurs = domain.NewSecteurs(uniqueSecteurIDs(secteurIDs))
		if err = s.profilRepo.Store(ctx, profil); err != nil {
			return fmt.Errorf("store profil: %w", err)
		}

		return nil
	})
}

func (s *profilService) create(ctx context.Context, in *ProfilDto) (domain.ProfilID, error) {
	id, err := s.profilRepo.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("get next profil id: %w", err)
	}

	profil := in.ToProfil(nil)
	profil.ID = &id
	if err = s.profilRepo.Store(ctx, profil); err != nil {
		return 0, fmt.Errorf("store profil: %w", err)
	}

	return id, nil
}

func (s *profilService) update(ctx context.Context, in *ProfilDto) error {
	existing, err := s.profilRepo.FindOne(s.transaction.WithLock(ctx), *in.ID)
	if errors.Is(err, domain.ErrProfilNotFound) {
		return fmt.Errorf("%w: id %d", ErrProfilNotFound, *in.ID)
	}
	if err != nil {
		return fmt.Errorf("find profil by id: %w", err)
	}

	if err = s.profilRepo.Store(ctx, in.ToProfil(existing)); err != nil {
		return fmt.Errorf("store profil: %w", err)
	}

	return nil
}

func uniqueSecteurIDs(ids []domain.SecteurID) []domain.SecteurID {
	result := make([]domain.SecteurID, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}

	return result
}
