package main

import (
	"context"

	"github.com/klwxsrx/securite-service/internal/pkg/cmd"
	"github.com/klwxsrx/securite-service/internal/utilisateur"
	pkgcmd "github.com/klwxsrx/securite-service/pkg/cmd"
)

func main() {
	ctx := context.Background()
	infra := cmd.NewInfrastructureContainer(ctx)
	defer infra.Close(ctx)

	container := utilisateur.NewDependencyContainer(
		infra.DB,
		infra.DBMigrations,
		infra.Validator,
		infra.Clock,
	)

	httpServer := infra.HTTPServer.MustLoad()
	container.MustRegisterHTTPHandlers(httpServer)

	pkgcmd.MustRun(ctx, infra.Logger.MustLoad(),
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
