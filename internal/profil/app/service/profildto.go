package service

import (
	"errors"

	"github.com/klwxsrx/securite-service/internal/profil/app/utilisateur"
	"github.com/klwxsrx/securite-service/internal/profil/domain"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ProfilDto is the transport form of domain.Profil, secteurs are reduced to their ids.
// Utilisateurs is never read from the entity, callers fill it separately.
type ProfilDto struct {
	ID           *domain.ProfilID              `json:"id,omitempty"`
	TypeProfils  []domain.TypeProfil           `json:"typeProfils" validate:"dive,enum"`
	Droits       []domain.Droit                `json:"droits" validate:"dive,enum"`
	Secteurs     []domain.SecteurID            `json:"secteurs"`
	Utilisateurs []*utilisateur.UtilisateurDto `json:"utilisateurs"`
}

// NewProfilDto shares the TypeProfils and Droits slices of p.
func NewProfilDto(p *domain.Profil) (*ProfilDto, error) {
	if p == nil {
		return nil, ErrInvalidArgument
	}

	var id *domain.ProfilID
	if p.ID != nil {
		idValue := *p.ID
		id = &idValue
	}

	return &ProfilDto{
		ID:          id,
		TypeProfils: p.TypeProfils,
		Droits:      p.Droits,
		Secteurs:    secteurIDs(p.Secteurs),
	}, nil
}

// ToProfil writes id, type profils and droits into dest, allocating it when nil.
// Secteurs and utilisateurs of dest are left as they are.
func (d *ProfilDto) ToProfil(dest *domain.Profil) *domain.Profil {
	if dest == nil {
		dest = &domain.Profil{}
	}

	dest.ID = nil
	if d.ID != nil {
		id := *d.ID
		dest.ID = &id
	}
	dest.TypeProfils = d.TypeProfils
	dest.Droits = d.Droits

	return dest
}

// Copy shares every slice of d except Utilisateurs, which gets a new backing array holding the same pointers.
func (d *ProfilDto) Copy() *ProfilDto {
	if d == nil {
		return nil
	}

	result := &ProfilDto{
		TypeProfils: d.TypeProfils,
		Droits:      d.Droits,
		Secteurs:    d.Secteurs,
	}
	if d.ID != nil {
		id := *d.ID
		result.ID = &id
	}
	if d.Utilisateurs != nil {
		result.Utilisateurs = make([]*utilisateur.UtilisateurDto, len(d.Utilisateurs))
		copy(result.Utilisateurs, d.Utilisateurs)
	}

	return result
}

func secteurIDs(secteurs []*domain.Secteur) []domain.SecteurID {
	if secteurs == nil {
		return nil
	}

	result := make([]domain.SecteurID, 0, len(secteurs))
	for _, secteur := range secteurs {
		if secteur == nil {
			continue
		}
		result = append(result, secteur.ID)
	}

	return result
}
