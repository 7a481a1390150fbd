package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"finance-dashboard/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// SchemaStatus is the migration state recorded in schema_migrations.
type SchemaStatus struct {
	Version uint
	Dirty   bool
	Source  string
}

// MigrationRunner applies schema migrations and optional seed data. A
// migrations directory on disk takes precedence over the embedded set.
type MigrationRunner struct {
	db            *sql.DB
	dirMigrations string
	dirSeeds      string
	seed          bool
	retries       int
	interval      time.Duration
}

func NewMigrationRunner(db *sql.DB, cfg *config.DatabaseConfig) *MigrationRunner {
	retries := cfg.ReadyRetries
	if retries < 1 {
		retries = 1
	}
	return &MigrationRunner{
		db:            db,
		dirMigrations: cfg.MigrationsPath,
		dirSeeds:      cfg.SeedsPath,
		seed:          cfg.SeedDemoData,
		retries:       retries,
		interval:      cfg.ReadyInterval,
	}
}

// WaitForDatabase pings until the database answers, the retry budget is
// spent or ctx is done.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.retries; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			log.Info().Int("attempt", attempt).Msg("database is ready")
			return nil
		}
		log.Warn().Err(lastErr).Int("attempt", attempt).Int("max_attempts", mr.retries).Msg("database not ready")

		if attempt == mr.retries {
			break
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for database: %w", ctx.Err())
		case <-time.After(mr.interval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", mr.retries, lastErr)
}

func (mr *MigrationRunner) openSource() (source.Driver, string, error) {
	if mr.dirMigrations != "" {
		if info, err := os.Stat(mr.dirMigrations); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(mr.dirMigrations)
			if err != nil {
				return nil, "", fmt.Errorf("failed to resolve migrations path: %w", err)
			}
			src, err := (&file.File{}).Open("file://" + absPath)
			if err != nil {
				return nil, "", fmt.Errorf("failed to open migrations directory: %w", err)
			}
			return src, "file", nil
		}
	}

	sub, err := fs.Sub(embeddedMigrations, "migrations")
	if err != nil {
		return nil, "", fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	src, err := iofs.New(sub, ".")
	if err != nil {
		return nil, "", fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	return src, "iofs", nil
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, string, error) {
	src, sourceName, err := mr.openSource()
	if err != nil {
		return nil, "", err
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		_ = src.Close()
		return nil, "", fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance(sourceName, src, "postgres", driver)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, sourceName, nil
}

// Up applies every pending migration. A dirty schema is forced back to its
// recorded version first so a crashed run can be retried.
func (mr *MigrationRunner) Up() (SchemaStatus, error) {
	m, sourceName, err := mr.newMigrate()
	if err != nil {
		return SchemaStatus{}, err
	}

	status := SchemaStatus{Source: sourceName}
	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
	case err != nil:
		return status, fmt.Errorf("failed to read schema version: %w", err)
	case dirty:
		log.Warn().Uint("version", version).Msg("schema is dirty, forcing recorded version")
		if err := m.Force(int(version)); err != nil {
			return status, fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return status, fmt.Errorf("migration failed: %w", err)
	}

	status.Version, status.Dirty, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return status, fmt.Errorf("failed to read schema version: %w", err)
	}
	log.Info().Uint("from", version).Uint("to", status.Version).Str("source", sourceName).Msg("schema up to date")
	return status, nil
}

// Status reports the schema version without changing anything.
func (mr *MigrationRunner) Status() (SchemaStatus, error) {
	m, sourceName, err := mr.newMigrate()
	if err != nil {
		return SchemaStatus{}, err
	}
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return SchemaStatus{}, err
	}
	return SchemaStatus{Version: version, Dirty: dirty, Source: sourceName}, nil
}

// Seed runs each *.sql file in the seeds directory in name order and returns
// how many succeeded. Files that fail to execute are logged and skipped; a
// file that cannot be read aborts the run.
func (mr *MigrationRunner) Seed(ctx context.Context) (int, error) {
	if !mr.seed {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.dirSeeds, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		log.Info().Str("path", mr.dirSeeds).Msg("no seed files found")
		return 0, nil
	}

	applied := 0
	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", filepath.Base(path), err)
		}
		if _, err := mr.db.ExecContext(ctx, string(content)); err != nil {
			log.Warn().Err(err).Str("file", filepath.Base(path)).Msg("seed file failed")
			continue
		}
		applied++
	}

	log.Info().Int("applied", applied).Int("files", len(files)).Msg("seed data loaded")
	return applied, nil
}

// RunMigrationsIfEnabled waits for the database, applies migrations and
// loads seeds. It does nothing when AutoMigrate is off.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg *config.DatabaseConfig) error {
	if !cfg.AutoMigrate {
		log.Info().Msg("auto-migration disabled")
		return nil
	}

	runner := NewMigrationRunner(db, cfg)
	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if _, err := runner.Up(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	if _, err := runner.Seed(ctx); err != nil {
		log.Warn().Err(err).Msg("seed data loading failed")
	}
	return nil
}
