package cmd

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/klwxsrx/securite-service/pkg/log"
	"github.com/klwxsrx/securite-service/pkg/sql"
)

// SQLMigrations applies module migrations as modules register them.
// A module name is migrated once per process, later registrations of it are skipped.
type SQLMigrations interface {
	MustRegister(sources ...sql.MigrationSource)
}

type sqlMigrations struct {
	ctx      context.Context
	migrator *sql.Migrator
	logger   log.Logger

	mu       sync.Mutex
	migrated map[string]struct{}
}

func NewSQLMigrations(
	ctx context.Context,
	db sql.TxClient,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:      ctx,
		migrator: sql.NewMigrator(db, logger),
		logger:   logger,
		migrated: make(map[string]struct{}),
	}
}

func (s *sqlMigrations) MustRegister(sources ...sql.MigrationSource) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]sql.MigrationSource, 0, len(sources))
	names := make([]string, 0, len(sources))
	for _, source := range sources {
		if _, ok := s.migrated[source.Name]; ok {
			continue
		}
		pending = append(pending, source)
		names = append(names, source.Name)
	}
	if len(pending) == 0 {
		return
	}

	modules := strings.Join(names, ", ")
	if err := s.migrator.Execute(s.ctx, pending...); err != nil {
		panic(fmt.Errorf("execute migrations of %s: %w", modules, err))
	}

	for _, name := range names {
		s.migrated[name] = struct{}{}
	}
	s.logger.WithField("modules", modules).Info(s.ctx, "module migrations are up to date")
}
