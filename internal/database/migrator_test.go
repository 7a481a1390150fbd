package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finance-dashboard/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
)

type MigrationRunnerTestSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	cfg  config.DatabaseConfig
}

func TestMigrationRunnerTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationRunnerTestSuite))
}

func (s *MigrationRunnerTestSuite) SetupTest() {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	s.Require().NoError(err)
	s.db, s.mock = db, mock

	s.cfg = config.DatabaseConfig{
		AutoMigrate:    true,
		MigrationsPath: filepath.Join(s.T().TempDir(), "missing"),
		SeedsPath:      s.T().TempDir(),
		ReadyRetries:   3,
		ReadyInterval:  10 * time.Millisecond,
	}
}

func (s *MigrationRunnerTestSuite) TearDownTest() {
	s.db.Close()
}

func (s *MigrationRunnerTestSuite) runner() *MigrationRunner {
	return NewMigrationRunner(s.db, &s.cfg)
}

func (s *MigrationRunnerTestSuite) writeSeed(name, body string) {
	s.Require().NoError(os.WriteFile(filepath.Join(s.cfg.SeedsPath, name), []byte(body), 0o644))
}

func (s *MigrationRunnerTestSuite) TestNewMigrationRunner_ClampsRetries() {
	s.cfg.ReadyRetries = 0
	s.Equal(1, s.runner().retries)
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_Ready() {
	s.mock.ExpectPing()

	s.NoError(s.runner().WaitForDatabase(context.Background()))
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_RecoversAfterFailures() {
	s.mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	s.mock.ExpectPing().WillReturnError(errors.New("the database system is starting up"))
	s.mock.ExpectPing()

	start := time.Now()
	s.NoError(s.runner().WaitForDatabase(context.Background()))
	s.GreaterOrEqual(time.Since(start), 2*s.cfg.ReadyInterval)
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_GivesUp() {
	refused := errors.New("connection refused")
	for i := 0; i < s.cfg.ReadyRetries; i++ {
		s.mock.ExpectPing().WillReturnError(refused)
	}

	err := s.runner().WaitForDatabase(context.Background())
	s.ErrorIs(err, refused)
	s.Contains(err.Error(), "not ready after 3 attempts")
}

func (s *MigrationRunnerTestSuite) TestWaitForDatabase_StopsOnCancel() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.runner().WaitForDatabase(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *MigrationRunnerTestSuite) TestOpenSource_Embedded() {
	src, name, err := s.runner().openSource()
	s.Require().NoError(err)
	defer src.Close()

	s.Equal("iofs", name)
	first, err := src.First()
	s.Require().NoError(err)
	s.Equal(uint(1), first)
}

func (s *MigrationRunnerTestSuite) TestOpenSource_DirectoryOverridesEmbedded() {
	dir := s.T().TempDir()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, "000042_budget_limits.up.sql"), []byte("SELECT 1;"), 0o644))
	s.cfg.MigrationsPath = dir

	src, name, err := s.runner().openSource()
	s.Require().NoError(err)
	defer src.Close()

	s.Equal("file", name)
	first, err := src.First()
	s.Require().NoError(err)
	s.Equal(uint(42), first)
}

func (s *MigrationRunnerTestSuite) TestStatus_DriverFailure() {
	s.mock.ExpectPing()
	s.mock.ExpectQuery("SELECT CURRENT_DATABASE()").WillReturnError(errors.New("connection reset"))

	_, err := s.runner().Status()
	s.ErrorContains(err, "failed to create postgres driver")
}

func (s *MigrationRunnerTestSuite) TestSeed() {
	s.writeSeed("001_categories.sql", `INSERT INTO categories (id, user_id, name, icon, type)
VALUES ('a0000000-0000-0000-0000-000000000001', 'user_demo', 'Salary', '💰', 'income')
ON CONFLICT (user_id, name) DO NOTHING;`)
	s.writeSeed("002_settings.sql", `INSERT INTO user_settings (user_id, currency) VALUES ('user_demo', 'EUR');`)
	s.writeSeed("README.md", "not sql")

	tests := []struct {
		name    string
		enabled bool
		setup   func()
		want    int
	}{
		{
			name:    "disabled",
			enabled: false,
			setup:   func() {},
			want:    0,
		},
		{
			name:    "all files applied in order",
			enabled: true,
			setup: func() {
				s.mock.ExpectExec("INSERT INTO categories").WillReturnResult(sqlmock.NewResult(0, 1))
				s.mock.ExpectExec("INSERT INTO user_settings").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: 2,
		},
		{
			name:    "failing file is skipped",
			enabled: true,
			setup: func() {
				s.mock.ExpectExec("INSERT INTO categories").WillReturnError(errors.New(`relation "categories" does not exist`))
				s.mock.ExpectExec("INSERT INTO user_settings").WillReturnResult(sqlmock.NewResult(0, 1))
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.cfg.SeedDemoData = tt.enabled
			tt.setup()

			applied, err := s.runner().Seed(context.Background())
			s.NoError(err)
			s.Equal(tt.want, applied)
			s.NoError(s.mock.ExpectationsWereMet())
		})
	}
}

func (s *MigrationRunnerTestSuite) TestSeed_EmptyDirectory() {
	s.cfg.SeedDemoData = true

	applied, err := s.runner().Seed(context.Background())
	s.NoError(err)
	s.Zero(applied)
}

func (s *MigrationRunnerTestSuite) TestSeed_UnreadableFileAborts() {
	s.cfg.SeedDemoData = true
	s.Require().NoError(os.Mkdir(filepath.Join(s.cfg.SeedsPath, "001_broken.sql"), 0o755))

	_, err := s.runner().Seed(context.Background())
	s.ErrorContains(err, "failed to read seed file 001_broken.sql")
}

func (s *MigrationRunnerTestSuite) TestRunMigrationsIfEnabled_Disabled() {
	s.cfg.AutoMigrate = false

	s.NoError(RunMigrationsIfEnabled(context.Background(), s.db, &s.cfg))
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *MigrationRunnerTestSuite) TestRunMigrationsIfEnabled_DatabaseDown() {
	for i := 0; i < s.cfg.ReadyRetries; i++ {
		s.mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	err := RunMigrationsIfEnabled(context.Background(), s.db, &s.cfg)
	s.ErrorContains(err, "database readiness check failed")
}
