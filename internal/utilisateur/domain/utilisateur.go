//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/klwxsrx/securite-service/pkg/pagination"
)

const Name = "utilisateur"

var ErrUtilisateurNotFound = errors.New("utilisateur not found")

type (
	Utilisateur struct {
		ID                              UtilisateurID
		Nom                             string
		Prenom                          string
		Email                           string
		DateNaissance                   *time.Time
		Adresse                         *string
		Actif                           bool
		ProfilID                        int64
		TypeUtilisateurCode             TypeUtilisateurCode
		TypeUtilisateurCodeOneToOneType *TypeUtilisateurCode
		DateCreation                    time.Time
		DateModification                *time.Time
	}

	UtilisateurRepository interface {
		NextID(context.Context) (UtilisateurID, error)
		Store(context.Context, *Utilisateur) error
		Find(context.Context, FindUtilisateurSpecification) ([]Utilisateur, error)
		FindOne(context.Context, FindUtilisateurSpecification) (*Utilisateur, error)
		// Search returns the requested page ordered by id and the total count matching spec.
		Search(context.Context, FindUtilisateurSpecification, pagination.Pageable) ([]Utilisateur, int, error)
		// Delete ignores ids with no stored utilisateur.
		Delete(context.Context, []UtilisateurID) error
	}

	FindUtilisateurSpecification struct {
		IDs                              []UtilisateurID
		Emails                           []string
		Noms                             []string
		ProfilIDs                        []int64
		TypeUtilisateurCodes             []TypeUtilisateurCode
		TypeUtilisateurCodeOneToOneTypes []TypeUtilisateurCode
		DateCreation                     *TimeRange
		DateModification                 *TimeRange
	}

	// TimeRange is half-open: From inclusive, To exclusive.
	TimeRange struct {
		From time.Time
		To   time.Time
	}

	UtilisateurID int64
)

// DayRange covers the calendar day of t in UTC.
func DayRange(t time.Time) TimeRange {
	y, m, d := t.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return TimeRange{From: from, To: from.AddDate(0, 0, 1)}
}

func (u *Utilisateur) Update(src Utilisateur, now time.Time) {
	u.Nom = src.Nom
	u.Prenom = src.Prenom
	u.Email = src.Email
	u.DateNaissance = src.DateNaissance
	u.Adresse = src.Adresse
	u.Actif = src.Actif
	u.ProfilID = src.ProfilID
	u.TypeUtilisateurCode = src.TypeUtilisateurCode
	u.TypeUtilisateurCodeOneToOneType = src.TypeUtilisateurCodeOneToOneType
	u.DateModification = &now
}
