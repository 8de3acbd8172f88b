//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock
package domain

import (
	"context"
	"errors"
)

const Name = "profil"

var ErrProfilNotFound = errors.New("profil not found")

type (
	Profil struct {
		ID          *ProfilID
		TypeProfils []TypeProfil
		Droits      []Droit
		Secteurs    []*Secteur
		// Utilisateurs is owned by utilisateur-service and never persisted here.
		Utilisateurs []*UtilisateurRef
	}

	Secteur struct {
		ID SecteurID
	}

	UtilisateurRef struct {
		ID int64
	}

	ProfilRepository interface {
		NextID(context.Context) (ProfilID, error)
		// Store replaces the persisted secteur links with the non-nil entries of Profil.Secteurs.
		Store(context.Context, *Profil) error
		FindOne(context.Context, ProfilID) (*Profil, error)
	}

	ProfilID  int64
	SecteurID int64
)

func NewSecteurs(ids []SecteurID) []*Secteur {
	result := make([]*Secteur, 0, len(ids))
	for _, id := range ids {
		result = append(result, &Secteur{ID: id})
	}

	return result
}
