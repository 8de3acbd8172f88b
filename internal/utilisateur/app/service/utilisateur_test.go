package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	utilisateurdomainmock "github.com/klwxsrx/securite-service/internal/utilisateur/domain/mock"
	"github.com/klwxsrx/securite-service/pkg/pagination"
	"github.com/klwxsrx/securite-service/pkg/persistence"
	pkgpersistencemock "github.com/klwxsrx/securite-service/pkg/persistence/mock"
	pkgpersistencestub "github.com/klwxsrx/securite-service/pkg/persistence/stub"
	pkgtime "github.com/klwxsrx/securite-service/pkg/time"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

var now = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newService(repo domain.UtilisateurRepository, tx persistence.Transaction) (service.Utilisateur, context.Context) {
	clock := pkgtime.NewAdjustableClock()
	if tx == nil {
		tx = pkgpersistencestub.NewTransaction()
	}

	return service.NewUtilisateur(repo, tx, validation.New(), clock), clock.Set(context.Background(), now)
}

func validDto() service.UtilisateurDto {
	return service.UtilisateurDto{
		Nom:      "Martin",
		Prenom:   "Alice",
		Email:    "alice.martin@example.fr",
		ProfilID: 3,
	}
}

func TestUtilisateurService_Get(t *testing.T) {
	tests := []struct {
		name     string
		repo     func(ctrl *gomock.Controller) domain.UtilisateurRepository
		expectFn func(t *testing.T, result *service.UtilisateurDto, err error)
	}{
		{
			name: "success",
			repo: func(ctrl *gomock.Controller) domain.UtilisateurRepository {
				mock := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
				mock.EXPECT().
					FindOne(gomock.Any(), domain.FindUtilisateurSpecification{IDs: []domain.UtilisateurID{42}}).
					Return(&domain.Utilisateur{ID: 42, Nom: "Martin", Actif: true, TypeUtilisateurCode: domain.TypeUtilisateurCodeClient}, nil)
				return mock
			},
			expectFn: func(t *testing.T, result *service.UtilisateurDto, err error) {
				require.NoError(t, err)
				require.NotNil(t, result.ID)
				assert.Equal(t, domain.UtilisateurID(42), *result.ID)
				assert.Equal(t, "Martin", result.Nom)
				assert.Equal(t, domain.TypeUtilisateurCodeClient, result.TypeUtilisateurCode)
				require.NotNil(t, result.Actif)
				assert.True(t, *result.Actif)
			},
		},
		{
			name: "not_found",
			repo: func(ctrl *gomock.Controller) domain.UtilisateurRepository {
				mock := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUtilisateurNotFound)
				return mock
			},
			expectFn: func(t *testing.T, _ *service.UtilisateurDto, err error) {
				assert.ErrorIs(t, err, service.ErrUtilisateurNotFound)
			},
		},
		{
			name: "repo_error",
			repo: func(ctrl *gomock.Controller) domain.UtilisateurRepository {
				mock := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
				return mock
			},
			expectFn: func(t *testing.T, _ *service.UtilisateurDto, err error) {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, service.ErrUtilisateurNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, ctx := newService(tc.repo(ctrl), nil)

			result, err := svc.Get(ctx, 42)
			tc.expectFn(t, result, err)
		})
	}
}

func TestUtilisateurService_ListByType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
	repo.EXPECT().
		Find(gomock.Any(), domain.FindUtilisateurSpecification{
			TypeUtilisateurCodes: []domain.TypeUtilisateurCode{domain.TypeUtilisateurCodeAdministrateur},
		}).
		Return([]domain.Utilisateur{{ID: 1}, {ID: 2}}, nil)
	svc, ctx := newService(repo, nil)

	result, err := svc.ListByType(ctx, domain.TypeUtilisateurCodeAdministrateur)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.UtilisateurID(1), *result[0].ID)
	assert.Equal(t, domain.UtilisateurID(2), *result[1].ID)
}

func TestUtilisateurService_Save_CreatesWithDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
	repo.EXPECT().NextID(gomock.Any()).Return(domain.UtilisateurID(5), nil)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, u *domain.Utilisateur) {
			assert.Equal(t, domain.UtilisateurID(5), u.ID)
			assert.True(t, u.Actif)
			assert.Equal(t, domain.TypeUtilisateurCodeGestionnaire, u.TypeUtilisateurCode)
			assert.Equal(t, now, u.DateCreation)
			assert.Nil(t, u.DateModification)
		}).
		Return(nil)
	svc, ctx := newService(repo, nil)

	result, err := svc.Save(ctx, validDto())
	require.NoError(t, err)
	require.NotNil(t, result.ID)
	assert.Equal(t, domain.UtilisateurID(5), *result.ID)
	require.NotNil(t, result.DateCreation)
	assert.Equal(t, now, *result.DateCreation)
}

func TestUtilisateurService_Save_UpdatesExisting(t *testing.T) {
	created := now.AddDate(-1, 0, 0)
	id := domain.UtilisateurID(8)
	inactive := false

	ctrl := gomock.NewController(t)
	repo := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
	repo.EXPECT().
		FindOne(gomock.Any(), domain.FindUtilisateurSpecification{IDs: []domain.UtilisateurID{id}}).
		Return(&domain.Utilisateur{ID: id, Nom: "Ancien", Actif: true, DateCreation: created}, nil)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, u *domain.Utilisateur) {
			assert.Equal(t, id, u.ID)
			assert.Equal(t, "Martin", u.Nom)
			assert.False(t, u.Actif)
			assert.Equal(t, created, u.DateCreation)
			require.NotNil(t, u.DateModification)
			assert.Equal(t, now, *u.DateModification)
		}).
		Return(nil)
	svc, ctx := newService(repo, nil)

	in := validDto()
	in.ID = &id
	in.Actif = &inactive
	_, err := svc.Save(ctx, in)
	require.NoError(t, err)
}

func TestUtilisateurService_Save_Returns(t *testing.T) {
	unknownID := domain.UtilisateurID(77)
	badCode := domain.TypeUtilisateurCode("X")
	tooLong := strings.Repeat("a", 101)

	tests := []struct {
		name      string
		in        func() service.UtilisateurDto
		repo      func(ctrl *gomock.Controller) domain.UtilisateurRepository
		expectErr error
	}{
		{
			name:      "invalid_when_email_malformed",
			in:        func() service.UtilisateurDto { d := validDto(); d.Email = "a@"; return d },
			repo:      noRepoCalls,
			expectErr: service.ErrInvalidUtilisateur,
		},
		{
			name:      "invalid_when_nom_missing",
			in:        func() service.UtilisateurDto { d := validDto(); d.Nom = ""; return d },
			repo:      noRepoCalls,
			expectErr: service.ErrInvalidUtilisateur,
		},
		{
			name:      "invalid_when_adresse_too_long",
			in:        func() service.UtilisateurDto { d := validDto(); d.Adresse = &tooLong; return d },
			repo:      noRepoCalls,
			expectErr: service.ErrInvalidUtilisateur,
		},
		{
			name:      "invalid_when_type_unknown",
			in:        func() service.UtilisateurDto { d := validDto(); d.TypeUtilisateurCodeOneToOneType = &badCode; return d },
			repo:      noRepoCalls,
			expectErr: service.ErrInvalidUtilisateur,
		},
		{
			name:      "invalid_when_profil_missing",
			in:        func() service.UtilisateurDto { d := validDto(); d.ProfilID = 0; return d },
			repo:      noRepoCalls,
			expectErr: service.ErrInvalidUtilisateur,
		},
		{
			name: "not_found_when_updating_unknown_id",
			in:   func() service.UtilisateurDto { d := validDto(); d.ID = &unknownID; return d },
			repo: func(ctrl *gomock.Controller) domain.UtilisateurRepository {
				mock := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
				mock.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUtilisateurNotFound)
				return mock
			},
			expectErr: service.ErrUtilisateurNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, ctx := newService(tc.repo(ctrl), nil)

			_, err := svc.Save(ctx, tc.in())
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestUtilisateurService_SaveAll_InvalidEntryPersistsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := noRepoCalls(ctrl)
	tx := pkgpersistencemock.NewTransaction(ctrl)
	svc, ctx := newService(repo, tx)

	invalid := validDto()
	invalid.Email = "not-an-email"

	result, err := svc.SaveAll(ctx, []service.UtilisateurDto{validDto(), invalid, validDto()})
	assert.ErrorIs(t, err, service.ErrInvalidUtilisateur)
	assert.ErrorContains(t, err, "entry 1")
	assert.Nil(t, result)
}

func TestUtilisateurService_SaveAll_StoresWithinSingleTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().NextID(gomock.Any()).Return(domain.UtilisateurID(1), nil),
		repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().NextID(gomock.Any()).Return(domain.UtilisateurID(2), nil),
		repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(nil),
	)

	tx := pkgpersistencemock.NewTransaction(ctrl)
	tx.EXPECT().WithinContext(gomock.Any(), gomock.Any()).
		Times(1).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error, _ ...string) error {
			return fn(ctx)
		})
	svc, ctx := newService(repo, tx)

	result, err := svc.SaveAll(ctx, []service.UtilisateurDto{validDto(), validDto()})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.UtilisateurID(1), *result[0].ID)
	assert.Equal(t, domain.UtilisateurID(2), *result[1].ID)
}

func TestUtilisateurService_SaveAll_StoreErrorFailsWholeBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
	repo.EXPECT().NextID(gomock.Any()).Return(domain.UtilisateurID(1), nil)
	repo.EXPECT().Store(gomock.Any(), gomock.Any()).Return(errors.New("unique violation"))
	svc, ctx := newService(repo, nil)

	result, err := svc.SaveAll(ctx, []service.UtilisateurDto{validDto(), validDto()})
	assert.ErrorContains(t, err, "entry 0")
	assert.Nil(t, result)
}

func TestUtilisateurService_Search(t *testing.T) {
	id := domain.UtilisateurID(0)
	email := "a@b.fr"
	nom := "Martin"
	created := time.Date(2024, 3, 5, 18, 45, 0, 0, time.UTC)
	code := domain.TypeUtilisateurCodeAdministrateur
	oneToOne := domain.TypeUtilisateurCodeClient
	pageable := pagination.Pageable{Number: 1, Size: 10}

	ctrl := gomock.NewController(t)
	repo := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
	repo.EXPECT().
		Search(gomock.Any(), domain.FindUtilisateurSpecification{
			IDs:                              []domain.UtilisateurID{0},
			Emails:                           []string{"a@b.fr"},
			Noms:                             []string{"Martin"},
			TypeUtilisateurCodes:             []domain.TypeUtilisateurCode{code},
			TypeUtilisateurCodeOneToOneTypes: []domain.TypeUtilisateurCode{oneToOne},
			DateCreation: &domain.TimeRange{
				From: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			},
		}, pageable).
		Return(nil, 0, nil)
	svc, ctx := newService(repo, nil)

	page, err := svc.Search(ctx, service.SearchCriteria{
		UtilisateurID:                   &id,
		Email:                           &email,
		Nom:                             &nom,
		TypeUtilisateurCode:             &code,
		TypeUtilisateurCodeOneToOneType: &oneToOne,
		DateCreation:                    &created,
	}, pageable)
	require.NoError(t, err)
	assert.Equal(t, pagination.Page[service.UtilisateurDto]{
		Content:       []service.UtilisateurDto{},
		TotalElements: 0,
		Number:        1,
		Size:          10,
	}, page)
}

func TestUtilisateurService_Search_RejectsInvalidCriteria(t *testing.T) {
	malformedEmail := "not-an-email"
	tooLongNom := strings.Repeat("n", 101)

	tests := []struct {
		name     string
		criteria service.SearchCriteria
	}{
		{name: "malformed_email", criteria: service.SearchCriteria{Email: &malformedEmail}},
		{name: "nom_too_long", criteria: service.SearchCriteria{Nom: &tooLongNom}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, ctx := newService(noRepoCalls(ctrl), nil)

			_, err := svc.Search(ctx, tc.criteria, pagination.NewPageable(nil, nil))
			assert.ErrorIs(t, err, service.ErrInvalidCriteria)
		})
	}
}

func TestUtilisateurService_DeleteAll(t *testing.T) {
	tests := []struct {
		name      string
		ids       []domain.UtilisateurID
		repo      func(ctrl *gomock.Controller) domain.UtilisateurRepository
		tx        func(ctrl *gomock.Controller) persistence.Transaction
		expectErr error
	}{
		{
			name: "deletes_within_transaction",
			ids:  []domain.UtilisateurID{3, 9},
			repo: func(ctrl *gomock.Controller) domain.UtilisateurRepository {
				mock := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
				mock.EXPECT().Delete(gomock.Any(), []domain.UtilisateurID{3, 9}).Return(nil)
				return mock
			},
			tx: func(ctrl *gomock.Controller) persistence.Transaction {
				mock := pkgpersistencemock.NewTransaction(ctrl)
				mock.EXPECT().WithinContext(gomock.Any(), gomock.Any()).
					Times(1).
					DoAndReturn(func(ctx context.Context, fn func(context.Context) error, _ ...string) error {
						return fn(ctx)
					})
				return mock
			},
		},
		{
			name: "empty_ids_is_noop",
			ids:  nil,
			repo: noRepoCalls,
			tx: func(ctrl *gomock.Controller) persistence.Transaction {
				return pkgpersistencemock.NewTransaction(ctrl)
			},
		},
		{
			name: "invalid_id_deletes_nothing",
			ids:  []domain.UtilisateurID{3, 0},
			repo: noRepoCalls,
			tx: func(ctrl *gomock.Controller) persistence.Transaction {
				return pkgpersistencemock.NewTransaction(ctrl)
			},
			expectErr: service.ErrInvalidUtilisateur,
		},
		{
			name: "repo_error",
			ids:  []domain.UtilisateurID{3},
			repo: func(ctrl *gomock.Controller) domain.UtilisateurRepository {
				mock := utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
				mock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errBoom)
				return mock
			},
			tx: func(*gomock.Controller) persistence.Transaction {
				return pkgpersistencestub.NewTransaction()
			},
			expectErr: errBoom,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, ctx := newService(tc.repo(ctrl), tc.tx(ctrl))

			err := svc.DeleteAll(ctx, tc.ids)
			if tc.expectErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expectErr)
		})
	}
}

var errBoom = errors.New("boom")

func noRepoCalls(ctrl *gomock.Controller) domain.UtilisateurRepository {
	return utilisateurdomainmock.NewMockUtilisateurRepository(ctrl)
}
