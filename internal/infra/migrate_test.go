package infra

import (
	"testing"

	"wealthlens/migrations"
)

func TestSplitSQL(t *testing.T) {
	got := SplitSQL("-- header\nCREATE TABLE a (x INT);\n\n  -- note\nCREATE INDEX i ON a (x);\n")
	if len(got) != 2 || got[0] != "CREATE TABLE a (x INT)" || got[1] != "CREATE INDEX i ON a (x)" {
		t.Fatalf("SplitSQL = %q", got)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	b, err := migrations.FS.ReadFile("0001_holdings.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if n := len(SplitSQL(string(b))); n != 4 {
		t.Fatalf("statements = %d, want 4", n)
	}
}
