package storage

import (
	"context"
	"os"
	"reflect"
	"testing"
	"time"

	"debris-risk-economics/internal/catalog"
	"debris-risk-economics/internal/config"
)

// testDSNEnv names a scratch PostgreSQL database; its catalog tables are overwritten.
const testDSNEnv = "DEBRISWATCH_TEST_DSN"

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDSNEnv)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := NewPool(ctx, config.DatabaseConfig{DSN: dsn, QueryTimeout: 10 * time.Second})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	store := NewStore(pool)
	t.Cleanup(store.Close)

	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return store
}

func TestImportLoadRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	builtin, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("builtin dataset: %v", err)
	}
	if err := store.ImportDataset(ctx, builtin); err != nil {
		t.Fatalf("ImportDataset: %v", err)
	}

	loaded, err := store.LoadDataset(ctx, builtin.Analytics())
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}

	requireSameEvents(t, builtin.Conjunctions(), loaded.Conjunctions())
	if !reflect.DeepEqual(builtin.Debris(), loaded.Debris()) {
		t.Fatalf("debris mismatch:\nwant %+v\ngot  %+v", builtin.Debris(), loaded.Debris())
	}
}

func TestImportReplacesPreviousCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	builtin, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("builtin dataset: %v", err)
	}
	if err := store.ImportDataset(ctx, builtin); err != nil {
		t.Fatalf("ImportDataset: %v", err)
	}

	// Reversed subset: stale rows must go and positions must follow the new order.
	events := builtin.Conjunctions()
	subset, err := catalog.NewDataset(
		[]catalog.ConjunctionEvent{events[3], events[1]},
		builtin.Debris()[:1],
		builtin.Analytics(),
	)
	if err != nil {
		t.Fatalf("subset dataset: %v", err)
	}
	if err := store.ImportDataset(ctx, subset); err != nil {
		t.Fatalf("ImportDataset subset: %v", err)
	}

	loaded, err := store.LoadDataset(ctx, builtin.Analytics())
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	requireSameEvents(t, subset.Conjunctions(), loaded.Conjunctions())
	if got := loaded.Debris(); len(got) != 1 || got[0].Name != builtin.Debris()[0].Name {
		t.Fatalf("stale debris should be removed, got %+v", got)
	}
}

func requireSameEvents(t *testing.T, want, got []catalog.ConjunctionEvent) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("expected %d conjunctions, got %d", len(want), len(got))
	}
	for i := range want {
		w, g := want[i], got[i]
		if !w.TCA.Equal(g.TCA) {
			t.Fatalf("conjunction %d tca: want %s, got %s", i, w.TCA, g.TCA)
		}
		w.TCA, g.TCA = time.Time{}, time.Time{}
		if w != g {
			t.Fatalf("conjunction %d mismatch:\nwant %+v\ngot  %+v", i, w, g)
		}
	}
}
