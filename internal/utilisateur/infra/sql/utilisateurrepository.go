package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/klwxsrx/securite-service/internal/utilisateur/domain"
	"github.com/klwxsrx/securite-service/pkg/pagination"
	pkgsql "github.com/klwxsrx/securite-service/pkg/sql"
)

const utilisateurTable = "utilisateur"

var utilisateurColumns = []string{
	"id",
	"nom",
	"prenom",
	"email",
	"date_naissance",
	"adresse",
	"actif",
	"profil_id",
	"type_utilisateur_code",
	"type_utilisateur_code_one_to_one_type",
	"date_creation",
	"date_modification",
}

type utilisateurRepository struct {
	db pkgsql.Client
}

func NewUtilisateurRepository(db pkgsql.Client) domain.UtilisateurRepository {
	return utilisateurRepository{db: db}
}

func (r utilisateurRepository) NextID(ctx context.Context) (domain.UtilisateurID, error) {
	var id domain.UtilisateurID
	err := r.db.GetContext(ctx, &id, "select nextval('utilisateur_id_seq')")
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r utilisateurRepository) Store(ctx context.Context, u *domain.Utilisateur) error {
	query, args, err := sq.
		Insert(utilisateurTable).
		Columns(utilisateurColumns...).
		Values(
			u.ID,
			u.Nom,
			u.Prenom,
			u.Email,
			u.DateNaissance,
			u.Adresse,
			u.Actif,
			u.ProfilID,
			u.TypeUtilisateurCode,
			u.TypeUtilisateurCodeOneToOneType,
			u.DateCreation,
			u.DateModification,
		).
		Suffix(`on conflict (id) do update set
			nom = excluded.nom,
			prenom = excluded.prenom,
			email = excluded.email,
			date_naissance = excluded.date_naissance,
			adresse = excluded.adresse,
			actif = excluded.actif,
			profil_id = excluded.profil_id,
			type_utilisateur_code = excluded.type_utilisateur_code,
			type_utilisateur_code_one_to_one_type = excluded.type_utilisateur_code_one_to_one_type,
			date_modification = excluded.date_modification
		`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r utilisateurRepository) Find(ctx context.Context, spec domain.FindUtilisateurSpecification) ([]domain.Utilisateur, error) {
	query, args, err := r.buildFindQuery(ctx, spec).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []SqlxUtilisateur
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, err
	}

	return toDomainUtilisateurs(rows), nil
}

func (r utilisateurRepository) FindOne(ctx context.Context, spec domain.FindUtilisateurSpecification) (*domain.Utilisateur, error) {
	query, args, err := r.buildFindQuery(ctx, spec).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row SqlxUtilisateur
	err = r.db.GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUtilisateurNotFound
	}
	if err != nil {
		return nil, err
	}

	result := toDomainUtilisateur(row)
	return &result, nil
}

func (r utilisateurRepository) Search(
	ctx context.Context,
	spec domain.FindUtilisateurSpecification,
	pageable pagination.Pageable,
) ([]domain.Utilisateur, int, error) {
	countQuery, countArgs, err := applyFilters(sq.Select("count(*)").From(utilisateurTable), spec).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	err = r.db.GetContext(ctx, &total, countQuery, countArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("count utilisateurs: %w", err)
	}
	if total == 0 || pageable.Offset() >= uint64(total) {
		return nil, total, nil
	}

	query, args, err := r.buildFindQuery(ctx, spec).
		OrderBy("id").
		Offset(pageable.Offset()).
		Limit(pageable.Limit()).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build query: %w", err)
	}

	var rows []SqlxUtilisateur
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, 0, err
	}

	return toDomainUtilisateurs(rows), total, nil
}

func (r utilisateurRepository) Delete(ctx context.Context, ids []domain.UtilisateurID) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.
		Delete(utilisateurTable).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func (r utilisateurRepository) buildFindQuery(ctx context.Context, spec domain.FindUtilisateurSpecification) sq.SelectBuilder {
	qb := applyFilters(sq.Select(utilisateurColumns...).From(utilisateurTable), spec)
	if pkgsql.IsLockRequested(ctx) {
		qb = qb.Suffix("for update")
	}

	return qb
}

func applyFilters(qb sq.SelectBuilder, spec domain.FindUtilisateurSpecification) sq.SelectBuilder {
	if len(spec.IDs) > 0 {
		qb = qb.Where(sq.Eq{"id": spec.IDs})
	}
	if len(spec.Emails) > 0 {
		qb = qb.Where(sq.Eq{"email": spec.Emails})
	}
	if len(spec.Noms) > 0 {
		qb = qb.Where(sq.Eq{"nom": spec.Noms})
	}
	if len(spec.ProfilIDs) > 0 {
		qb = qb.Where(sq.Eq{"profil_id": spec.ProfilIDs})
	}
	if len(spec.TypeUtilisateurCodes) > 0 {
		qb = qb.Where(sq.Eq{"type_utilisateur_code": spec.TypeUtilisateurCodes})
	}
	if len(spec.TypeUtilisateurCodeOneToOneTypes) > 0 {
		qb = qb.Where(sq.Eq{"type_utilisateur_code_one_to_one_type": spec.TypeUtilisateurCodeOneToOneTypes})
	}
	if spec.DateCreation != nil {
		qb = qb.Where(sq.GtOrEq{"date_creation": spec.DateCreation.From}).Where(sq.Lt{"date_creation": spec.DateCreation.To})
	}
	if spec.DateModification != nil {
		qb = qb.Where(sq.GtOrEq{"date_modification": spec.DateModification.From}).Where(sq.Lt{"date_modification": spec.DateModification.To})
	}

	return qb
}

type SqlxUtilisateur struct {
	ID                              domain.UtilisateurID        `db:"id"`
	Nom                             string                      `db:"nom"`
	Prenom                          string                      `db:"prenom"`
	Email                           string                      `db:"email"`
	DateNaissance                   *time.Time                  `db:"date_naissance"`
	Adresse                         *string                     `db:"adresse"`
	Actif                           bool                        `db:"actif"`
	ProfilID                        int64                       `db:"profil_id"`
	TypeUtilisateurCode             domain.TypeUtilisateurCode  `db:"type_utilisateur_code"`
	TypeUtilisateurCodeOneToOneType *domain.TypeUtilisateurCode `db:"type_utilisateur_code_one_to_one_type"`
	DateCreation                    time.Time                   `db:"date_creation"`
	DateModification                *time.Time                  `db:"date_modification"`
}
