package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/kurmi-workspace/internal/model"
	"github.com/Veraticus/kurmi-workspace/internal/storage"
	"github.com/Veraticus/kurmi-workspace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ storage.Ledger = (*storage.SQLiteStorage)(nil)

func TestLedger_PartialPruneRoundTrip(t *testing.T) {
	started := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	ledger := testutil.SetupTestLedger(t,
		&model.Run{
			Kind:       model.RunKindExtract,
			Status:     model.RunStatusComplete,
			Source:     "prod.configfile.zip",
			Root:       "out",
			StartedAt:  started,
			FinishedAt: started.Add(time.Second),
			Total:      4,
			Counts:     map[string]int{"widgets": 4},
		},
		&model.Run{
			Kind:       model.RunKindPrune,
			Status:     model.RunStatusPartial,
			Source:     "out",
			Root:       "out",
			StartedAt:  started.Add(time.Minute),
			FinishedAt: started.Add(2 * time.Minute),
			Total:      2,
			Failures:   1,
			Counts:     map[string]int{"emails": 1, "widgets": 1},
		},
	)

	runs, err := ledger.ListRuns(context.Background(), storage.DefaultHistoryLimit)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	prune := runs[0]
	assert.Equal(t, model.RunKindPrune, prune.Kind)
	assert.Equal(t, model.RunStatusPartial, prune.Status)
	assert.Equal(t, 1, prune.Failures)
	assert.Equal(t, map[string]int{"emails": 1, "widgets": 1}, prune.Counts)
	assert.NotEmpty(t, prune.ID)

	assert.Equal(t, model.RunKindExtract, runs[1].Kind)
}
