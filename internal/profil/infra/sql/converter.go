package sql

import (
	"encoding"
	"fmt"

	"github.com/klwxsrx/securite-service/internal/profil/domain"
)

func toDomainProfil(row SqlxProfil, secteurIDs []domain.SecteurID) (*domain.Profil, error) {
	typeProfils, err := parseCodes[domain.TypeProfil](row.TypeProfils)
	if err != nil {
		return nil, fmt.Errorf("profil %d: %w", row.ID, err)
	}

	droits, err := parseCodes[domain.Droit](row.Droits)
	if err != nil {
		return nil, fmt.Errorf("profil %d: %w", row.ID, err)
	}

	id := row.ID
	return &domain.Profil{
		ID:          &id,
		TypeProfils: typeProfils,
		Droits:      droits,
		Secteurs:    domain.NewSecteurs(secteurIDs),
	}, nil
}

func parseCodes[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](codes []string) ([]T, error) {
	result := make([]T, 0, len(codes))
	for _, code := range codes {
		var value T
		if err := PT(&value).UnmarshalText([]byte(code)); err != nil {
			return nil, err
		}
		result = append(result, value)
	}

	return result, nil
}

func toStrings[T ~string](values []T) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, string(v))
	}

	return result
}
