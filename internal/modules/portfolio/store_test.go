// README: Postgres-backed holdings store tests (seed then read back in listing order).
package portfolio

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"wealthlens/internal/infra"
	"wealthlens/migrations"
)

// TestStoreSeedAndRead round-trips the built-in dataset through Postgres.
func TestStoreSeedAndRead(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	want := defaultHoldings()
	if err := store.Seed(ctx, want); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := store.Holdings(ctx)
	if err != nil {
		t.Fatalf("holdings: %v", err)
	}
	if len(got.Stocks) != len(want.Stocks) || len(got.Funds) != len(want.Funds) {
		t.Fatalf("got %d stocks / %d funds, want %d / %d", len(got.Stocks), len(got.Funds), len(want.Stocks), len(want.Funds))
	}
	for i := range want.Stocks {
		if got.Stocks[i] != want.Stocks[i] {
			t.Fatalf("stock %d = %+v, want %+v", i, got.Stocks[i], want.Stocks[i])
		}
	}
	if Summarize(got) != Summarize(want) {
		t.Fatalf("summary mismatch: %+v vs %+v", Summarize(got), Summarize(want))
	}
}

// TestStoreEmpty verifies an empty holdings table is reported as ErrNoHoldings.
func TestStoreEmpty(t *testing.T) {
	store, _ := setupTestStore(t)
	if _, err := store.Holdings(context.Background()); err != ErrNoHoldings {
		t.Fatalf("expected ErrNoHoldings, got %v", err)
	}
}

// setupTestStore connects to WL_TEST_DSN and resets the holdings tables.
// It skips the test when WL_TEST_DSN is not set.
func setupTestStore(t *testing.T) (*Store, *pgxpool.Pool) {
	t.Helper()

	dsn := os.Getenv("WL_TEST_DSN")
	if dsn == "" {
		t.Skip("WL_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := infra.Migrate(ctx, db, migrations.FS); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE stocks, mutual_funds"); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return NewStore(db), db
}
