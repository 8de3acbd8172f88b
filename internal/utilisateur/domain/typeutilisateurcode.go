package domain

import (
	"errors"
	"fmt"
)

const (
	TypeUtilisateurCodeAdministrateur TypeUtilisateurCode = "ADM"
	TypeUtilisateurCodeGestionnaire   TypeUtilisateurCode = "GES"
	TypeUtilisateurCodeClient         TypeUtilisateurCode = "CLI"

	DefaultTypeUtilisateurCode = TypeUtilisateurCodeGestionnaire
)

var ErrUnknownTypeUtilisateurCode = errors.New("unknown type utilisateur code")

type TypeUtilisateurCode string

func (c TypeUtilisateurCode) IsValid() bool {
	switch c {
	case TypeUtilisateurCodeAdministrateur,
		TypeUtilisateurCodeGestionnaire,
		TypeUtilisateurCodeClient:
		return true
	default:
		return false
	}
}

func (c *TypeUtilisateurCode) UnmarshalText(text []byte) error {
	code := TypeUtilisateurCode(text)
	if !code.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownTypeUtilisateurCode, string(text))
	}

	*c = code
	return nil
}
