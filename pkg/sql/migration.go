package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/klwxsrx/securite-service/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		create table if not exists migration (
			id text primary key,
			created_at timestamptz not null default now()
		)
	`
)

type MigrationSource struct {
	Name  string
	Files fs.ReadDirFS
}

func FSMigrations(name string, files fs.ReadDirFS) MigrationSource {
	return MigrationSource{Name: name, Files: files}
}

type Migrator struct {
	db     TxClient
	logger log.Logger
}

func NewMigrator(db TxClient, logger log.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Execute applies not yet performed *.sql files of every source in file name order.
// All sources are migrated within a single transaction guarded by an advisory lock.
func (m *Migrator) Execute(ctx context.Context, sources ...MigrationSource) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("start migration tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = withTransactionLevelLock(ctx, migrationLock, tx); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, migrationTableDDL); err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	performed, err := m.getPerformedMigrationIDs(ctx, tx)
	if err != nil {
		return fmt.Errorf("get performed migrations: %w", err)
	}

	for _, source := range sources {
		if err = m.executeSource(ctx, tx, source, performed); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit migration tx: %w", err)
	}

	return nil
}

func (m *Migrator) executeSource(ctx context.Context, tx Client, source MigrationSource, performed map[string]struct{}) error {
	fileNames, err := getMigrationFileNames(source.Files)
	if err != nil {
		return fmt.Errorf("get %s migration file names: %w", source.Name, err)
	}

	for _, fileName := range fileNames {
		migrationID := path.Join(source.Name, fileName)
		if _, ok := performed[migrationID]; ok {
			continue
		}

		content, err := fs.ReadFile(source.Files, fileName)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", migrationID, err)
		}

		if err = processMigration(ctx, tx, migrationID, string(content)); err != nil {
			return fmt.Errorf("migration %s failed: %w", migrationID, err)
		}

		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}

	return nil
}

func (m *Migrator) getPerformedMigrationIDs(ctx context.Context, client Client) (map[string]struct{}, error) {
	var ids []string
	err := client.SelectContext(ctx, &ids, `select id from migration`)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		result[id] = struct{}{}
	}

	return result, nil
}

func processMigration(ctx context.Context, client Client, migrationID, migrationSQL string) error {
	if strings.TrimSpace(migrationSQL) == "" {
		return errors.New("empty migration")
	}

	_, err := client.ExecContext(ctx, `insert into migration (id) values ($1)`, migrationID)
	if err != nil {
		return err
	}

	for _, query := range strings.Split(migrationSQL, querySeparator) {
		if strings.TrimSpace(query) == "" {
			continue
		}

		_, err = client.ExecContext(ctx, query)
		if err != nil {
			return err
		}
	}

	return nil
}

func getMigrationFileNames(files fs.ReadDirFS) ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".sql" {
			continue
		}
		result = append(result, entry.Name())
	}
	sort.Strings(result)

	return result, nil
}
