package service

import "github.com/klwxsrx/securite-service/internal/utilisateur/domain"

func toUtilisateurDto(u domain.Utilisateur) UtilisateurDto {
	id := u.ID
	actif := u.Actif
	dateCreation := u.DateCreation

	return UtilisateurDto{
		ID:                              &id,
		Nom:                             u.Nom,
		Prenom:                          u.Prenom,
		Email:                           u.Email,
		DateNaissance:                   u.DateNaissance,
		Adresse:                         u.Adresse,
		Actif:                           &actif,
		ProfilID:                        u.ProfilID,
		TypeUtilisateurCode:             u.TypeUtilisateurCode,
		TypeUtilisateurCodeOneToOneType: u.TypeUtilisateurCodeOneToOneType,
		DateCreation:                    &dateCreation,
		DateModification:                u.DateModification,
	}
}

func toUtilisateurDtos(utilisateurs []domain.Utilisateur) []UtilisateurDto {
	result := make([]UtilisateurDto, 0, len(utilisateurs))
	for _, u := range utilisateurs {
		result = append(result, toUtilisateurDto(u))
	}

	return result
}

// toDomainUtilisateur applies the defaults of absent fields, id and dates are left to the caller.
func toDomainUtilisateur(in UtilisateurDto) domain.Utilisateur {
	actif := true
	if in.Actif != nil {
		actif = *in.Actif
	}

	typeCode := in.TypeUtilisateurCode
	if typeCode == "" {
		typeCode = domain.DefaultTypeUtilisateurCode
	}

	return domain.Utilisateur{
		Nom:                             in.Nom,
		Prenom:                          in.Prenom,
		Email:                           in.Email,
		DateNaissance:                   in.DateNaissance,
		Adresse:                         in.Adresse,
		Actif:                           actif,
		ProfilID:                        in.ProfilID,
		TypeUtilisateurCode:             typeCode,
		TypeUtilisateurCodeOneToOneType: in.TypeUtilisateurCodeOneToOneType,
	}
}

func toFindSpecification(criteria SearchCriteria) domain.FindUtilisateurSpecification {
	var spec domain.FindUtilisateurSpecification
	if criteria.UtilisateurID != nil {
		spec.IDs = []domain.UtilisateurID{*criteria.UtilisateurID}
	}
	if criteria.Email != nil {
		spec.Emails = []string{*criteria.Email}
	}
	if criteria.Nom != nil {
		spec.Noms = []string{*criteria.Nom}
	}
	if criteria.ProfilID != nil {
		spec.ProfilIDs = []int64{*criteria.ProfilID}
	}
	if criteria.TypeUtilisateurCode != nil {
		spec.TypeUtilisateurCodes = []domain.TypeUtilisateurCode{*criteria.TypeUtilisateurCode}
	}
	if criteria.TypeUtilisateurCodeOneToOneType != nil {
		spec.TypeUtilisateurCodeOneToOneTypes = []domain.TypeUtilisateurCode{*criteria.TypeUtilisateurCodeOneToOneType}
	}
	if criteria.DateCreation != nil {
		day := domain.DayRange(*criteria.DateCreation)
		spec.DateCreation = &day
	}
	if criteria.DateModification != nil {
		day := domain.DayRange(*criteria.DateModification)
		spec.DateModification = &day
	}

	return spec
}
