//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock
package utilisateur

import (
	"context"
	"time"

	"github.com/klwxsrx/securite-service/internal/profil/domain"
)

type (
	Service interface {
		// FindByProfil returns every utilisateur attached to the profil, ordered by id.
		FindByProfil(context.Context, domain.ProfilID) ([]*UtilisateurDto, error)
	}

	UtilisateurDto struct {
		ID                              *int64     `json:"id,omitempty"`
		Nom                             string     `json:"nom"`
		Prenom                          string     `json:"prenom"`
		Email                           string     `json:"email"`
		DateNaissance                   *time.Time `json:"dateNaissance,omitempty"`
		Adresse                         *string    `json:"adresse,omitempty"`
		Actif                           *bool      `json:"actif,omitempty"`
		ProfilID                        int64      `json:"profilId"`
		TypeUtilisateurCode             string     `json:"typeUtilisateurCode,omitempty"`
		TypeUtilisateurCodeOneToOneType *string    `json:"typeUtilisateurCodeOneToOneType,omitempty"`
		DateCreation                    *time.Time `json:"dateCreation,omitempty"`
		DateModification                *time.Time `json:"dateModification,omitempty"`
	}
)
