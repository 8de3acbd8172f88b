package sql

import "github.com/klwxsrx/securite-service/internal/utilisateur/domain"

func toDomainUtilisateur(row SqlxUtilisateur) domain.Utilisateur {
	return domain.Utilisateur{
		ID:                              row.ID,
		Nom:                             row.Nom,
		Prenom:                          row.Prenom,
		Email:                           row.Email,
		DateNaissance:                   row.DateNaissance,
		Adresse:                         row.Adresse,
		Actif:                           row.Actif,
		ProfilID:                        row.ProfilID,
		TypeUtilisateurCode:             row.TypeUtilisateurCode,
		TypeUtilisateurCodeOneToOneType: row.TypeUtilisateurCodeOneToOneType,
		DateCreation:                    row.DateCreation,
		DateModification:                row.DateModification,
	}
}

func toDomainUtilisateurs(rows []SqlxUtilisateur) []domain.Utilisateur {
	result := make([]domain.Utilisateur, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainUtilisateur(row))
	}

	return result
}
