// Package testutil provides testing utilities for database integration tests.
//
// Database Setup:
//
//	db := testutil.SetupSQLiteDB(t)
//	defer testutil.TeardownDB(t, db)
//
// Each call creates a fresh database file under t.TempDir(), so tests are
// isolated from each other and cleanup is handled by the testing framework.
//
// Migration Path:
//
// Migrations are automatically discovered by walking up from the current
// working directory until a "migrations/sqlite" directory is found.
package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// SetupSQLiteDB creates a fresh SQLite database under a test temp directory
// and runs migrations.
func SetupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vault-test.db")
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err, "failed to open sqlite database")

	err = db.Ping()
	require.NoError(t, err, "failed to ping sqlite database")

	runMigrations(t, db)

	return db
}

// TeardownDB closes the database connection.
func TeardownDB(t *testing.T, db *sql.DB) {
	t.Helper()

	if db != nil {
		require.NoError(t, db.Close(), "failed to close database")
	}
}

// CleanupSQLiteDB removes all rows from application tables, keeping the
// schema intact. Useful when multiple cases share one database.
func CleanupSQLiteDB(t *testing.T, db *sql.DB) {
	t.Helper()

	_, err := db.Exec("DELETE FROM keys")
	require.NoError(t, err, "failed to clean up keys table")
}

// runMigrations applies all up migrations to the database.
func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()

	migrationsPath := findMigrationsDir(t)

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	require.NoError(t, err, "failed to create migration driver")

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"sqlite",
		driver,
	)
	require.NoError(t, err, "failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "failed to run migrations")
	}
}

// findMigrationsDir walks up from the current working directory until it
// finds the migrations/sqlite directory.
func findMigrationsDir(t *testing.T) string {
	t.Helper()

	cwd, err := os.Getwd()
	require.NoError(t, err, "failed to get working directory")

	dir := cwd
	for {
		candidate := filepath.Join(dir, "migrations", "sqlite")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	t.Fatalf("migrations/sqlite directory not found walking up from %s", cwd)
	return ""
}
