package strings

import "github.com/iancoleman/strcase"

// ToSnakeCase turns "Not Found" into "not_found".
func ToSnakeCase(s string) string {
	return strcase.ToSnake(s)
}

// ToScreamingSnakeCase turns "utilisateur-service" into "UTILISATEUR_SERVICE".
func ToScreamingSnakeCase(s string) string {
	return strcase.ToScreamingSnake(s)
}
