package sql_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/securite-service/internal/profil/domain"
	profilsql "github.com/klwxsrx/securite-service/internal/profil/infra/sql"
)

type fakeClient struct {
	execs      []string
	execArgs   [][]any
	row        *profilsql.SqlxProfil
	secteurIDs []domain.SecteurID
}

func (c *fakeClient) ExecContext(_ context.Context, query string, args ...any) (sql.Result, error) {
	c.execs = append(c.execs, query)
	c.execArgs = append(c.execArgs, args)
	return nil, nil
}

func (c *fakeClient) GetContext(_ context.Context, dest any, _ string, _ ...any) error {
	row, ok := dest.(*profilsql.SqlxProfil)
	if !ok {
		return nil
	}
	if c.row == nil {
		return sql.ErrNoRows
	}

	*row = *c.row
	return nil
}

func (c *fakeClient) SelectContext(_ context.Context, dest any, _ string, _ ...any) error {
	if ids, ok := dest.(*[]domain.SecteurID); ok {
		*ids = c.secteurIDs
	}
	return nil
}

func TestProfilRepository_FindOne(t *testing.T) {
	client := &fakeClient{
		row: &profilsql.SqlxProfil{
			ID:          7,
			TypeProfils: pq.StringArray{"ADMIN"},
			Droits:      pq.StringArray{"READ", "WRITE"},
		},
		secteurIDs: []domain.SecteurID{2, 1},
	}
	repo := profilsql.NewProfilRepository(client)

	profil, err := repo.FindOne(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, profil.ID)
	assert.Equal(t, domain.ProfilID(7), *profil.ID)
	assert.Equal(t, []domain.TypeProfil{domain.TypeProfilAdmin}, profil.TypeProfils)
	assert.Equal(t, []domain.Droit{domain.DroitRead, domain.DroitWrite}, profil.Droits)
	assert.Equal(t, []*domain.Secteur{{ID: 2}, {ID: 1}}, profil.Secteurs)
}

func TestProfilRepository_FindOne_Returns(t *testing.T) {
	repo := profilsql.NewProfilRepository(&fakeClient{})
	_, err := repo.FindOne(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrProfilNotFound)

	repo = profilsql.NewProfilRepository(&fakeClient{
		row: &profilsql.SqlxProfil{ID: 1, Droits: pq.StringArray{"FLY"}},
	})
	_, err = repo.FindOne(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUnknownDroit)
}

func TestProfilRepository_Store(t *testing.T) {
	id := domain.ProfilID(3)
	tests := []struct {
		name        string
		secteurs    []*domain.Secteur
		expectExecs int
	}{
		{name: "without_secteurs", secteurs: nil, expectExecs: 2},
		{name: "only_nil_secteurs", secteurs: []*domain.Secteur{nil}, expectExecs: 2},
		{name: "with_secteurs", secteurs: []*domain.Secteur{{ID: 5}, nil, {ID: 6}}, expectExecs: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := &fakeClient{}
			repo := profilsql.NewProfilRepository(client)

			err := repo.Store(context.Background(), &domain.Profil{
				ID:          &id,
				TypeProfils: []domain.TypeProfil{domain.TypeProfilClient},
				Secteurs:    tc.secteurs,
			})
			require.NoError(t, err)
			require.Len(t, client.execs, tc.expectExecs)
			assert.Contains(t, client.execs[0], "INSERT INTO profil ")
			assert.Contains(t, client.execs[1], "DELETE FROM profil_secteur")
			if tc.expectExecs == 3 {
				assert.Contains(t, client.execs[2], "INSERT INTO profil_secteur")
				assert.Equal(t, []any{id, domain.SecteurID(5), 0, id, domain.SecteurID(6), 1}, client.execArgs[2])
			}
		})
	}
}

func TestProfilRepository_Store_RequiresID(t *testing.T) {
	repo := profilsql.NewProfilRepository(&fakeClient{})
	err := repo.Store(context.Background(), &domain.Profil{})
	assert.Error(t, err)
}
