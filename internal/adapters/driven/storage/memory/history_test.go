package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/reportctl/internal/core/domain"
)

func TestHistoryStore_RecordAndList(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()
	base := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Record(ctx, domain.StoreRecord{RunName: "nightly", RunID: 1, StoredAt: base}))
	require.NoError(t, store.Record(ctx, domain.StoreRecord{RunName: "release", RunID: 2, StoredAt: base.Add(time.Hour)}))
	require.NoError(t, store.Record(ctx, domain.StoreRecord{RunName: "nightly", RunID: 1, StoredAt: base.Add(2 * time.Hour)}))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, base.Add(2*time.Hour), all[0].StoredAt)
	assert.Equal(t, "release", all[1].RunName)
	assert.NotEmpty(t, all[0].ID)

	limited, err := store.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	nightly, err := store.ListByRun(ctx, "nightly")
	require.NoError(t, err)
	assert.Len(t, nightly, 2)
}

func TestHistoryStore_RequiresRunName(t *testing.T) {
	store := NewHistoryStore()

	err := store.Record(context.Background(), domain.StoreRecord{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryStore_ConcurrentRecord(t *testing.T) {
	ctx := context.Background()
	store := NewHistoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Record(ctx, domain.StoreRecord{RunName: "nightly"})
		}()
	}
	wg.Wait()

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
