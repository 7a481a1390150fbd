package database

import (
	"context"
	"fmt"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

type DB struct {
	*gorm.DB
}

// gormWriter forwards gorm's query log to zerolog.
type gormWriter struct {
	logger zerolog.Logger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.logger.Debug().Msgf(format, args...)
}

func newGormLogger(level logger.LogLevel) logger.Interface {
	return logger.New(
		gormWriter{logger: log.Logger.With().Str("component", "gorm").Logger()},
		logger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// New opens a pooled Postgres connection and verifies it answers within ctx.
func New(ctx context.Context, cfg *config.DatabaseConfig, level logger.LogLevel) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         newGormLogger(level),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// Models lists every table owned by the application.
func Models() []interface{} {
	return []interface{}{
		&models.Transaction{},
		&models.Category{},
		&models.MonthHistory{},
		&models.YearHistory{},
		&models.UserSettings{},
	}
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(Models()...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// lookupIndexes back the per-user date range scans behind the dashboard.
var lookupIndexes = map[string]string{
	"idx_transactions_user_type_date":     "transactions(user_id, type, date)",
	"idx_categories_user_type":            "categories(user_id, type)",
	"idx_month_histories_user_year_month": "month_histories(user_id, year, month)",
}

// CreateIndexes adds the lookup indexes a GORM AutoMigrate fallback leaves out.
// It reports how many could not be created.
func (db *DB) CreateIndexes(ctx context.Context) int {
	failed := 0
	for name, target := range lookupIndexes {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s", name, target)
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			log.Warn().Err(err).Str("index", name).Msg("failed to create index")
			failed++
		}
	}
	return failed
}

// Initialize opens the connection and brings the schema up to date. SQL
// migrations run first; AutoMigrate is the fallback when they fail.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	db, err := New(ctx, &cfg.Database, level)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, &cfg.Database); err != nil {
		log.Warn().Err(err).Msg("migration runner failed, falling back to GORM AutoMigrate")

		if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		if failed := db.CreateIndexes(ctx); failed > 0 {
			log.Warn().Int("failed", failed).Msg("some lookup indexes are missing")
		}
	}

	log.Info().Str("host", cfg.Database.Host).Str("name", cfg.Database.Name).Msg("database initialized")
	return db, nil
}
