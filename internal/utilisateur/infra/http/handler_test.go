package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/securite-service/internal/utilisateur/app/service"
	utilisateurappservicemock "github.com/klwxsrx/securite-service/internal/utilisateur/app/service/mock"
	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	utilisateurhttp "github.com/klwxsrx/securite-service/internal/utilisateur/infra/http"
	pkghttp "github.com/klwxsrx/securite-service/pkg/http"
	"github.com/klwxsrx/securite-service/pkg/pagination"
	pkgpersistencestub "github.com/klwxsrx/securite-service/pkg/persistence/stub"
	pkgtime "github.com/klwxsrx/securite-service/pkg/time"
	"github.com/klwxsrx/securite-service/pkg/validation"
)

func newServer(svc service.Utilisateur) pkghttp.Server {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithJSONNotFound())
	srv.Register(utilisateurhttp.NewListUtilisateursByTypeHandler(svc))
	srv.Register(utilisateurhttp.NewGetUtilisateurHandler(svc))
	srv.Register(utilisateurhttp.NewSaveUtilisateurHandler(svc))
	srv.Register(utilisateurhttp.NewSaveAllUtilisateursHandler(svc))
	srv.Register(utilisateurhttp.NewSearchUtilisateursHandler(svc))
	srv.Register(utilisateurhttp.NewDeleteAllUtilisateursHandler(svc))
	return srv
}

func serve(srv http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) pkghttp.ErrorOut {
	var out pkghttp.ErrorOut
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGetUtilisateurHandler(t *testing.T) {
	id := domain.UtilisateurID(7)
	tests := []struct {
		name       string
		target     string
		svc        func(ctrl *gomock.Controller) service.Utilisateur
		expectCode int
		expectKind string
	}{
		{
			name:   "found",
			target: "/utilisateur/7",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().Get(gomock.Any(), id).Return(&service.UtilisateurDto{ID: &id, Nom: "Martin"}, nil)
				return mock
			},
			expectCode: http.StatusOK,
		},
		{
			name:   "not_found",
			target: "/utilisateur/42",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().Get(gomock.Any(), domain.UtilisateurID(42)).
					Return(nil, fmt.Errorf("%w: id 42", service.ErrUtilisateurNotFound))
				return mock
			},
			expectCode: http.StatusNotFound,
			expectKind: pkghttp.ErrorCodeNotFound,
		},
		{
			name:   "non_numeric_id_matches_no_route",
			target: "/utilisateur/abc",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				return utilisateurappservicemock.NewMockUtilisateur(ctrl)
			},
			expectCode: http.StatusNotFound,
			expectKind: pkghttp.ErrorCodeNotFound,
		},
		{
			name:   "id_out_of_range",
			target: "/utilisateur/99999999999999999999",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				return utilisateurappservicemock.NewMockUtilisateur(ctrl)
			},
			expectCode: http.StatusBadRequest,
			expectKind: pkghttp.ErrorCodeBadRequest,
		},
		{
			name:   "persistence_failure_hides_details",
			target: "/utilisateur/7",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().Get(gomock.Any(), id).Return(nil, fmt.Errorf("find utilisateur by id: connection refused"))
				return mock
			},
			expectCode: http.StatusInternalServerError,
			expectKind: pkghttp.ErrorCodeServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rec := serve(newServer(tc.svc(ctrl)), http.MethodGet, tc.target, "")

			require.Equal(t, tc.expectCode, rec.Code)
			if tc.expectKind == "" {
				return
			}

			out := decodeError(t, rec)
			assert.Equal(t, tc.expectKind, out.Code)
			assert.NotContains(t, out.Message, "connection refused")
		})
	}
}

func TestListUtilisateursByTypeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := utilisateurappservicemock.NewMockUtilisateur(ctrl)
	svc.EXPECT().ListByType(gomock.Any(), domain.TypeUtilisateurCodeClient).Return([]service.UtilisateurDto{{Nom: "A"}}, nil)
	srv := newServer(svc)

	rec := serve(srv, http.MethodGet, "/utilisateur/list?typeUtilisateurCode=CLI", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out []service.UtilisateurDto
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 1)

	rec = serve(srv, http.MethodGet, "/utilisateur/list?typeUtilisateurCode=UNKNOWN", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(srv, http.MethodGet, "/utilisateur/list", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSaveUtilisateurHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        func(ctrl *gomock.Controller) service.Utilisateur
		expectCode int
	}{
		{
			name: "saved",
			body: `{"nom":"Martin","prenom":"Alice","email":"a@b.fr","profilId":1}`,
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(&service.UtilisateurDto{Nom: "Martin"}, nil)
				return mock
			},
			expectCode: http.StatusOK,
		},
		{
			name: "invalid",
			body: `{"nom":"Martin"}`,
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: email: required", service.ErrInvalidUtilisateur))
				return mock
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "unknown_enum_code",
			body: `{"nom":"Martin","typeUtilisateurCode":"ZZZ"}`,
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				return utilisateurappservicemock.NewMockUtilisateur(ctrl)
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "malformed_json",
			body: `{"nom":`,
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				return utilisateurappservicemock.NewMockUtilisateur(ctrl)
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name: "unknown_id",
			body: `{"id":99,"nom":"Martin","prenom":"Alice","email":"a@b.fr","profilId":1}`,
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, service.ErrUtilisateurNotFound)
				return mock
			},
			expectCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rec := serve(newServer(tc.svc(ctrl)), http.MethodPost, "/utilisateur/save", tc.body)
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}

type countingRepo struct {
	domain.UtilisateurRepository
	stored int
}

func (r *countingRepo) Store(context.Context, *domain.Utilisateur) error {
	r.stored++
	return nil
}

func TestSaveAllUtilisateursHandler_InvalidEntryPersistsNothing(t *testing.T) {
	repo := &countingRepo{}
	svc := service.NewUtilisateur(repo, pkgpersistencestub.NewTransaction(), validation.New(), pkgtime.NewAdjustableClock())

	body := `[
		{"nom":"Martin","prenom":"Alice","email":"alice@b.fr","profilId":1},
		{"nom":"Durand","prenom":"Bob","email":"not-an-email","profilId":1}
	]`
	rec := serve(newServer(svc), http.MethodPost, "/utilisateur/saveAll", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, pkghttp.ErrorCodeBadRequest, decodeError(t, rec).Code)
	assert.Zero(t, repo.stored)
}

func TestSearchUtilisateursHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := utilisateurappservicemock.NewMockUtilisateur(ctrl)
	svc.EXPECT().
		Search(gomock.Any(), gomock.Any(), pagination.Pageable{Number: 0, Size: pagination.DefaultPageSize}).
		DoAndReturn(func(_ context.Context, criteria service.SearchCriteria, pageable pagination.Pageable) (pagination.Page[service.UtilisateurDto], error) {
			require.NotNil(t, criteria.UtilisateurID)
			assert.Equal(t, domain.UtilisateurID(0), *criteria.UtilisateurID)
			require.NotNil(t, criteria.Email)
			assert.Equal(t, "a@b.fr", *criteria.Email)
			require.NotNil(t, criteria.TypeUtilisateurCode)
			assert.Equal(t, domain.TypeUtilisateurCodeAdministrateur, *criteria.TypeUtilisateurCode)
			require.NotNil(t, criteria.TypeUtilisateurCodeOneToOneType)
			assert.Equal(t, domain.TypeUtilisateurCodeClient, *criteria.TypeUtilisateurCodeOneToOneType)
			assert.Nil(t, criteria.ProfilID)
			return pagination.NewPage[service.UtilisateurDto](nil, 0, pageable), nil
		})
	srv := newServer(svc)

	rec := serve(srv, http.MethodPost, "/utilisateur/search?utilisateurId=0&email=a@b.fr&typeUtilisateurCode=ADM&typeUtilisateurCodeOneToOneType=CLI", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, []any{}, out["content"])
	assert.EqualValues(t, 0, out["totalElements"])
	assert.EqualValues(t, 0, out["number"])
	assert.EqualValues(t, pagination.DefaultPageSize, out["size"])

	rec = serve(srv, http.MethodPost, "/utilisateur/search?typeUtilisateurCode=X", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUtilisateurHandler_OtherRoutePathAnswersMethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newServer(utilisateurappservicemock.NewMockUtilisateur(ctrl))

	rec := serve(srv, http.MethodGet, "/utilisateur/save", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestSearchUtilisateursHandler_NomAndDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := utilisateurappservicemock.NewMockUtilisateur(ctrl)
	svc.EXPECT().
		Search(gomock.Any(), gomock.Any(), pagination.Pageable{Number: 2, Size: 5}).
		DoAndReturn(func(_ context.Context, criteria service.SearchCriteria, pageable pagination.Pageable) (pagination.Page[service.UtilisateurDto], error) {
			require.NotNil(t, criteria.Nom)
			assert.Equal(t, "Martin", *criteria.Nom)
			require.NotNil(t, criteria.DateCreation)
			assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *criteria.DateCreation)
			require.NotNil(t, criteria.DateModification)
			assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), *criteria.DateModification)
			return pagination.NewPage[service.UtilisateurDto](nil, 0, pageable), nil
		})
	srv := newServer(svc)

	rec := serve(srv, http.MethodPost, "/utilisateur/search?nom=Martin&dateCreation=2024-03-05&dateModification=2024-04-01&page=2&size=5", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(srv, http.MethodPost, "/utilisateur/search?dateCreation=yesterday", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchUtilisateursHandler_MalformedEmailIsBadRequest(t *testing.T) {
	svc := service.NewUtilisateur(&countingRepo{}, pkgpersistencestub.NewTransaction(), validation.New(), pkgtime.NewAdjustableClock())

	rec := serve(newServer(svc), http.MethodPost, "/utilisateur/search?email=not-an-email", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, pkghttp.ErrorCodeBadRequest, decodeError(t, rec).Code)
}

func TestDeleteAllUtilisateursHandler(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svc        func(ctrl *gomock.Controller) service.Utilisateur
		expectCode int
	}{
		{
			name:   "deleted",
			target: "/utilisateur/deleteAll?utiId=1&utiId=5",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().DeleteAll(gomock.Any(), []domain.UtilisateurID{1, 5}).Return(nil)
				return mock
			},
			expectCode: http.StatusNoContent,
		},
		{
			name:   "ids_missing",
			target: "/utilisateur/deleteAll",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				return utilisateurappservicemock.NewMockUtilisateur(ctrl)
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "id_malformed",
			target: "/utilisateur/deleteAll?utiId=1&utiId=x",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				return utilisateurappservicemock.NewMockUtilisateur(ctrl)
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "id_invalid",
			target: "/utilisateur/deleteAll?utiId=-3",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().DeleteAll(gomock.Any(), []domain.UtilisateurID{-3}).
					Return(fmt.Errorf("%w: id -3", service.ErrInvalidUtilisateur))
				return mock
			},
			expectCode: http.StatusBadRequest,
		},
		{
			name:   "persistence_failure",
			target: "/utilisateur/deleteAll?utiId=1",
			svc: func(ctrl *gomock.Controller) service.Utilisateur {
				mock := utilisateurappservicemock.NewMockUtilisateur(ctrl)
				mock.EXPECT().DeleteAll(gomock.Any(), gomock.Any()).Return(fmt.Errorf("delete utilisateurs: connection refused"))
				return mock
			},
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rec := serve(newServer(tc.svc(ctrl)), http.MethodDelete, tc.target, "")
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}
