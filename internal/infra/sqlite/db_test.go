package sqlite

import (
	"path/filepath"
	"testing"
)

func TestNewDB_InMemory(t *testing.T) {
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer db.Close()

	var fk int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&fk); err != nil {
		t.Fatalf("query pragma: %v", err)
	}
	if fk != 1 {
		t.Errorf("expected foreign_keys=1, got %d", fk)
	}
}

func TestNewDB_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	db, err := NewDB(path)
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestNewDB_MissingParentDir(t *testing.T) {
	if _, err := NewDB("/no/such/dir/audit.db"); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
