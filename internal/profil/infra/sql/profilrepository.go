package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/klwxsrx/securite-service/internal/profil/domain"
	pkgsql "github.com/klwxsrx/securite-service/pkg/sql"
)

type profilRepository struct {
	db pkgsql.Client
}

func NewProfilRepository(db pkgsql.Client) domain.ProfilRepository {
	return profilRepository{db: db}
}

func (r profilRepository) NextID(ctx context.Context) (domain.ProfilID, error) {
	var id domain.ProfilID
	err := r.db.GetContext(ctx, &id, "select nextval('profil_id_seq')")
	if err != nil {
		return 0, err
	}

	return id, nil
}

// Store must be called within a transaction, the profil row and its secteur links are written separately.
func (r profilRepository) Store(ctx context.Context, profil *domain.Profil) error {
	if profil.ID == nil {
		return errors.New("profil id is not set")
	}

	query, args, err := sq.
		Insert("profil").
		Columns("id", "type_profils", "droits").
		Values(*profil.ID, pq.Array(toStrings(profil.TypeProfils)), pq.Array(toStrings(profil.Droits))).
		Suffix(`on conflict (id) do update set
			type_profils = excluded.type_profils,
			droits = excluded.droits,
			updated_at = now()
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return r.storeSecteurs(ctx, *profil.ID, profil.Secteurs)
}

func (r profilRepository) FindOne(ctx context.Context, id domain.ProfilID) (*domain.Profil, error) {
	qb := sq.
		Select("id", "type_profils", "droits").
		From("profil").
		Where(sq.Eq{"id": id})
	if pkgsql.IsLockRequested(ctx) {
		qb = qb.Suffix("for update")
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row SqlxProfil
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfilNotFound
	}
	if err != nil {
		return nil, err
	}

	secteurIDs, err := r.findSecteurIDs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find secteurs: %w", err)
	}

	return toDomainProfil(row, secteurIDs)
}

func (r profilRepository) storeSecteurs(ctx context.Context, id domain.ProfilID, secteurs []*domain.Secteur) error {
	query, args, err := sq.Delete("profil_secteur").Where(sq.Eq{"profil_id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete secteur links: %w", err)
	}

	insert := sq.Insert("profil_secteur").Columns("profil_id", "secteur_id", "position")
	position := 0
	for _, secteur := range secteurs {
		if secteur == nil {
			continue
		}
		insert = insert.Values(id, secteur.ID, position)
		position++
	}
	if position == 0 {
		return nil
	}

	query, args, err = insert.Suffix("on conflict do nothing").ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert secteur links: %w", err)
	}

	return nil
}

func (r profilRepository) findSecteurIDs(ctx context.Context, id domain.ProfilID) ([]domain.SecteurID, error) {
	query, args, err := sq.
		Select("secteur_id").
		From("profil_secteur").
		Where(sq.Eq{"profil_id": id}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ids []domain.SecteurID
	err = r.db.SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

type SqlxProfil struct {
	ID          domain.ProfilID `db:"id"`
	TypeProfils pq.StringArray  `db:"type_profils"`
	Droits      pq.StringArray  `db:"droits"`
}
