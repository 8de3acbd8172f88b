package http

import pkghttp "github.com/klwxsrx/securite-service/pkg/http"

const (
	RequestIDHeader = pkghttp.DefaultRequestIDHeader

	DestinationUtilisateurService pkghttp.Destination = "utilisateur"
)
