package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedMoods(t *testing.T, gate *SubmissionGate, userID string, days ...string) {
	t.Helper()
	for _, day := range days {
		_, err := gate.SubmitMood(context.Background(), MoodSubmission{
			UserID:  userID,
			Date:    day,
			Mood:    "good",
			Keyword: "kw " + day,
			Reason:  "reason " + day,
		})
		require.NoError(t, err)
	}
}

func TestAggregationService_Range(t *testing.T) {
	ctx := context.Background()
	store := newSpyStore()
	gate := NewSubmissionGate(store, store, zap.NewNop())
	svc := NewAggregationService(store, zap.NewNop())

	seedMoods(t, gate, "u1", "2023-12-31", "2024-01-01", "2024-01-04", "2024-01-07", "2024-01-08")
	seedMoods(t, gate, "u2", "2024-01-02")

	t.Run("inclusive bounds, complete, no duplicates", func(t *testing.T) {
		points, err := svc.Range(ctx, "u1", "2024-01-01", "2024-01-07")
		require.NoError(t, err)

		var got []string
		for _, p := range points {
			got = append(got, p.Date.String())
		}
		assert.ElementsMatch(t, []string{"2024-01-01", "2024-01-04", "2024-01-07"}, got)
	})

	t.Run("single day range", func(t *testing.T) {
		points, err := svc.Range(ctx, "u1", "2024-01-04", "2024-01-04")
		require.NoError(t, err)
		require.Len(t, points, 1)
	})

	t.Run("empty range is not an error", func(t *testing.T) {
		points, err := svc.Range(ctx, "u1", "2025-01-01", "2025-01-07")
		require.NoError(t, err)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	})

	t.Run("start after end is a validation error", func(t *testing.T) {
		reads := store.reads
		_, err := svc.Range(ctx, "u1", "2024-01-07", "2024-01-01")
		assert.Equal(t, "start", assertKind(t, err, KindValidation).Field)
		assert.Equal(t, reads, store.reads)
	})

	t.Run("missing params", func(t *testing.T) {
		_, err := svc.Range(ctx, "", "2024-01-01", "2024-01-07")
		assertKind(t, err, KindValidation)
		_, err = svc.Range(ctx, "u1", "2024-01-01", "")
		assert.Equal(t, "end", assertKind(t, err, KindValidation).Field)
	})
}

func TestAggregationService_All(t *testing.T) {
	ctx := context.Background()
	store := newSpyStore()
	gate := NewSubmissionGate(store, store, zap.NewNop())
	svc := NewAggregationService(store, zap.NewNop())

	seedMoods(t, gate, "u1", "2024-01-04", "2024-01-01", "2024-01-09", "2023-06-30")

	records, err := svc.All(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, records, 4)
	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Date.After(records[i].Date.Time), "records must be strictly date descending")
	}
	assert.Equal(t, "kw 2024-01-09", records[0].Keyword)
	assert.Equal(t, "reason 2023-06-30", records[3].Reason)

	again, err := svc.All(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, records, again)

	empty, err := svc.All(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestAggregationService_StoreFailure(t *testing.T) {
	store := newSpyStore()
	store.readErr = errors.New("timeout")
	svc := NewAggregationService(store, zap.NewNop())

	points, err := svc.Range(context.Background(), "u1", "2024-01-01", "2024-01-07")
	assertKind(t, err, KindStore)
	assert.Nil(t, points)

	records, err := svc.All(context.Background(), "u1")
	assertKind(t, err, KindStore)
	assert.Nil(t, records)
}
