package sqlite

import "testing"

func TestMigrateUp_AppliesAndIsIdempotent(t *testing.T) {
	db, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}

	version, err := MigrationVersion(db)
	if err != nil {
		t.Fatalf("MigrationVersion failed: %v", err)
	}
	if version < 1 {
		t.Fatalf("expected at least version 1, got %d", version)
	}

	// Second run must be a no-op.
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second MigrateUp failed: %v", err)
	}

	// Audit table must exist after migration.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM chat_audit_events").Scan(&count); err != nil {
		t.Fatalf("chat_audit_events table missing: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty audit table, got %d rows", count)
	}
}

func TestVersionFromFilename(t *testing.T) {
	cases := map[string]int{
		"001_chat_audit.up.sql": 1,
		"042_later.up.sql":      42,
		"no_prefix.up.sql":      0,
	}
	for name, want := range cases {
		if got := versionFromFilename(name); got != want {
			t.Errorf("versionFromFilename(%q) = %d, want %d", name, got, want)
		}
	}
}
