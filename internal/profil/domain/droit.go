package domain

import (
	"errors"
	"fmt"
)

const (
	DroitCreate Droit = "CREATE"
	DroitRead   Droit = "READ"
	DroitWrite  Droit = "WRITE"
	DroitDelete Droit = "DELETE"
	DroitAdmin  Droit = "ADMIN"
)

var ErrUnknownDroit = errors.New("unknown droit")

type Droit string

func (d Droit) IsValid() bool {
	switch d {
	case DroitCreate, DroitRead, DroitWrite, DroitDelete, DroitAdmin:
		return true
	default:
		return false
	}
}

func (d *Droit) UnmarshalText(text []byte) error {
	value := Droit(text)
	if !value.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownDroit, string(text))
	}

	*d = value
	return nil
}
