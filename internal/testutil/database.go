package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/storage"
)

// SetupTestLedger creates a migrated in-memory ledger seeded with runs.
// It is closed when the test finishes.
func SetupTestLedger(t *testing.T, runs ...*model.Run) *storage.SQLiteStorage {
	t.Helper()

	ctx := context.Background()
	store, err := storage.Open(ctx, storage.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test ledger: %v", err)
	}

	for _, run := range runs {
		if err := store.RecordRun(ctx, run); err != nil {
			t.Fatalf("failed to seed run %s: %v", run.Kind, err)
		}
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}
