package storage

import (
	"context"
	"testing"
	"time"

	"mood_forge/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

type tickingClock struct {
	at time.Time
}

func (c *tickingClock) Now() time.Time {
	c.at = c.at.Add(time.Minute)
	return c.at
}

func TestMemoryStorage_Moods(t *testing.T) {
	ctx := context.Background()
	clock := &tickingClock{at: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)}
	store := NewMemoryStorage(WithClock(clock.Now))

	for _, day := range []string{"2024-01-03", "2024-01-01", "2024-01-07", "2024-01-08"} {
		_, err := store.InsertMood(ctx, models.MoodEntry{
			UserID:  "u1",
			Date:    mustDate(t, day),
			Mood:    models.MoodGood,
			Keyword: "kw-" + day,
			Reason:  "reason-" + day,
		})
		require.NoError(t, err)
	}
	_, err := store.InsertMood(ctx, models.MoodEntry{UserID: "u2", Date: mustDate(t, "2024-01-02"), Mood: models.MoodBad})
	require.NoError(t, err)

	t.Run("rejects a second entry for the same day", func(t *testing.T) {
		_, err := store.InsertMood(ctx, models.MoodEntry{UserID: "u1", Date: mustDate(t, "2024-01-03"), Mood: models.MoodBad})
		assert.ErrorIs(t, err, models.ErrDuplicate)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.MoodExists(ctx, "u1", mustDate(t, "2024-01-07"))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.MoodExists(ctx, "u1", mustDate(t, "2024-01-02"))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("range is inclusive and scoped to the user", func(t *testing.T) {
		points, err := store.MoodsInRange(ctx, "u1", mustDate(t, "2024-01-01"), mustDate(t, "2024-01-07"))
		require.NoError(t, err)
		require.Len(t, points, 3)
		assert.Equal(t, "2024-01-01", points[0].Date.String())
		assert.Equal(t, "2024-01-03", points[1].Date.String())
		assert.Equal(t, "2024-01-07", points[2].Date.String())
	})

	t.Run("empty range is an empty slice", func(t *testing.T) {
		points, err := store.MoodsInRange(ctx, "u1", mustDate(t, "2023-01-01"), mustDate(t, "2023-01-07"))
		require.NoError(t, err)
		assert.NotNil(t, points)
		assert.Empty(t, points)
	})

	t.Run("all is date descending", func(t *testing.T) {
		records, err := store.AllMoods(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, records, 4)
		for i := 1; i < len(records); i++ {
			assert.True(t, records[i-1].Date.After(records[i].Date.Time))
		}
		assert.Equal(t, "kw-2024-01-08", records[0].Keyword)
	})

	t.Run("latest is by creation time, not by date", func(t *testing.T) {
		latest, err := store.LatestMood(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-08", latest.Date.String())

		_, err = store.InsertMood(ctx, models.MoodEntry{UserID: "u1", Date: mustDate(t, "2023-12-31"), Mood: models.MoodNeutral, Keyword: "late"})
		require.NoError(t, err)

		latest, err = store.LatestMood(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "late", latest.Keyword)
	})

	t.Run("latest without entries", func(t *testing.T) {
		_, err := store.LatestMood(ctx, "nobody")
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestMemoryStorage_Reflections(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)
	store := NewMemoryStorage(WithClock(func() time.Time { return now }))

	saved, err := store.InsertReflection(ctx, models.ReflectionEntry{UserID: "u1", Category: "work"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, now, saved.Timestamp)

	_, err = store.InsertReflection(ctx, models.ReflectionEntry{UserID: "u1", Category: "family"})
	assert.ErrorIs(t, err, models.ErrDuplicate)

	ok, err := store.ReflectionExists(ctx, "u1", mustDate(t, "2024-03-05"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ReflectionExists(ctx, "u1", mustDate(t, "2024-03-06"))
	require.NoError(t, err)
	assert.False(t, ok)

	now = now.Add(time.Hour)
	_, err = store.InsertReflection(ctx, models.ReflectionEntry{UserID: "u1", Category: "family"})
	assert.NoError(t, err, "next UTC day accepts a new form")
}

func TestMemoryStorage_Chat(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage()

	saved, err := store.SaveExchange(ctx, models.ChatExchange{UserID: "u1", UserMessage: "hi", AIResponse: "hello"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.Timestamp.IsZero())

	_, err = store.SaveExchange(ctx, models.ChatExchange{UserID: "u1", UserMessage: "hi", AIResponse: "hello again"})
	require.NoError(t, err)

	assert.Len(t, store.Exchanges("u1"), 2)
	assert.Empty(t, store.Exchanges("u2"))
}

func TestMemoryStorage_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStorage()
	_, err := store.AllMoods(ctx, "u1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Ping(ctx), context.Canceled)
}
