package domain

import (
	"errors"
	"fmt"
)

const (
	TypeProfilAdmin        TypeProfil = "ADMIN"
	TypeProfilGestionnaire TypeProfil = "GESTIONNAIRE"
	TypeProfilClient       TypeProfil = "CLIENT"
)

var ErrUnknownTypeProfil = errors.New("unknown type profil")

type TypeProfil string

func (t TypeProfil) IsValid() bool {
	switch t {
	case TypeProfilAdmin, TypeProfilGestionnaire, TypeProfilClient:
		return true
	default:
		return false
	}
}

func (t *TypeProfil) UnmarshalText(text []byte) error {
	value := TypeProfil(text)
	if !value.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownTypeProfil, string(text))
	}

	*t = value
	return nil
}
