// Migration runner. SQL files are embedded into the binary (zero runtime file
// deps) and tracked in a schema_migrations table, so MigrateUp is idempotent.
package sqlite

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// migrations embeds all *.up.sql files from the migrations directory.
//
//go:embed migrations/*.up.sql
var migrations embed.FS

// MigrateUp applies all pending *.up.sql migrations in order.
// Already-applied migrations are skipped. One transaction per migration.
func MigrateUp(db *sql.DB) error {
	if err := ensureMigrationsTable(db); err != nil {
		return fmt.Errorf("migrate: ensure migrations table: %w", err)
	}

	files, err := loadMigrationFiles()
	if err != nil {
		return fmt.Errorf("migrate: load files: %w", err)
	}

	for _, f := range files {
		version := versionFromFilename(f.name)

		applied, checkErr := isMigrationApplied(db, version)
		if checkErr != nil {
			return fmt.Errorf("migrate: check applied %d: %w", version, checkErr)
		}
		if applied {
			continue
		}

		if applyErr := applyMigration(db, version, f.name, f.sql); applyErr != nil {
			return fmt.Errorf("migrate: apply %s: %w", f.name, applyErr)
		}
	}

	return nil
}

// MigrationVersion returns the highest migration version currently applied,
// or 0 if none have been applied yet.
func MigrationVersion(db *sql.DB) (int, error) {
	if err := ensureMigrationsTable(db); err != nil {
		return 0, fmt.Errorf("migrate: ensure migrations table: %w", err)
	}

	var version int
	row := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("migrate: query version: %w", err)
	}

	return version, nil
}

// --- internal ---

// migrationFile holds a parsed migration file ready to apply.
type migrationFile struct {
	name string // e.g. "001_chat_audit.up.sql"
	sql  string // full SQL content
}

// ensureMigrationsTable creates the schema_migrations table if it doesn't exist.
func ensureMigrationsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version     INTEGER NOT NULL PRIMARY KEY,
			name        TEXT    NOT NULL,
			applied_at  TEXT    NOT NULL DEFAULT (datetime('now'))
		)
	`)
	return err
}

// loadMigrationFiles reads all *.up.sql files from the embedded FS and sorts them.
func loadMigrationFiles() ([]migrationFile, error) {
	var files []migrationFile

	err := fs.WalkDir(migrations, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".up.sql") {
			return nil
		}

		content, readErr := migrations.ReadFile(path)
		if readErr != nil {
			return fmt.Errorf("read %s: %w", path, readErr)
		}

		files = append(files, migrationFile{name: d.Name(), sql: string(content)})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Lexicographic order = numeric order for the 001_, 002_, ... prefix.
	sort.Slice(files, func(i, j int) bool {
		return files[i].name < files[j].name
	})

	return files, nil
}

// versionFromFilename extracts the numeric version prefix from a filename:
// "001_chat_audit.up.sql" → 1.
func versionFromFilename(name string) int {
	var version int
	if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
		return 0
	}
	return version
}

// isMigrationApplied checks if a migration version is already recorded.
func isMigrationApplied(db *sql.DB, version int) (bool, error) {
	var count int
	row := db.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version)
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// applyMigration executes one migration SQL in a transaction and records it.
func applyMigration(db *sql.DB, version int, name, sqlContent string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, execErr := tx.Exec(sqlContent); execErr != nil {
		return fmt.Errorf("exec SQL: %w", execErr)
	}

	if _, execErr := tx.Exec(
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
		version, name,
	); execErr != nil {
		return fmt.Errorf("record migration: %w", execErr)
	}

	return tx.Commit()
}
