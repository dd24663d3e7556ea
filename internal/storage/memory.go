package storage

import (
	"context"
	"fmt"
	"mood_forge/internal/models"
	"sort"
	"sync"
	"time"
)

// MemoryStorage keeps every entry in process memory. It satisfies the same
// contracts as the Postgres stores, including the once-per-day rule.
type MemoryStorage struct {
	mu          sync.RWMutex
	now         func() time.Time
	nextID      int64
	moods       []models.MoodEntry
	reflections []models.ReflectionEntry
	chats       []models.ChatExchange
}

type MemoryOption func(*MemoryStorage)

// WithClock replaces time.Now for store-assigned timestamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryStorage) {
		m.now = now
	}
}

func NewMemoryStorage(opts ...MemoryOption) *MemoryStorage {
	m := &MemoryStorage{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryStorage) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *MemoryStorage) InsertMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	if err := ctx.Err(); err != nil {
		return models.MoodEntry{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.moods {
		if existing.UserID == entry.UserID && existing.Date.Equal(entry.Date.Time) {
			return models.MoodEntry{}, fmt.Errorf("memory InsertMood: %w", models.ErrDuplicate)
		}
	}

	entry.ID = m.id()
	entry.CreatedAt = m.now()
	m.moods = append(m.moods, entry)
	return entry, nil
}

func (m *MemoryStorage) MoodExists(ctx context.Context, userID string, day models.Date) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, entry := range m.moods {
		if entry.UserID == userID && entry.Date.Equal(day.Time) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStorage) MoodsInRange(ctx context.Context, userID string, start, end models.Date) ([]models.MoodPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	points := []models.MoodPoint{}
	for _, entry := range m.moods {
		if entry.UserID != userID || entry.Date.Before(start.Time) || entry.Date.After(end.Time) {
			continue
		}
		points = append(points, entry.Point())
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date.Time)
	})
	return points, nil
}

func (m *MemoryStorage) AllMoods(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	records := []models.MoodRecord{}
	for _, entry := range m.moods {
		if entry.UserID == userID {
			records = append(records, entry.Record())
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date.Time)
	})
	return records, nil
}

func (m *MemoryStorage) LatestMood(ctx context.Context, userID string) (models.MoodEntry, error) {
	if err := ctx.Err(); err != nil {
		return models.MoodEntry{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		latest models.MoodEntry
		found  bool
	)
	for _, entry := range m.moods {
		if entry.UserID != userID {
			continue
		}
		if !found || !entry.CreatedAt.Before(latest.CreatedAt) {
			latest = entry
			found = true
		}
	}

	if !found {
		return models.MoodEntry{}, fmt.Errorf("memory LatestMood: %w", models.ErrNotFound)
	}
	return latest, nil
}

func (m *MemoryStorage) InsertReflection(ctx context.Context, entry models.ReflectionEntry) (models.ReflectionEntry, error) {
	if err := ctx.Err(); err != nil {
		return models.ReflectionEntry{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry.Timestamp = m.now()
	day := entry.Day()
	for _, existing := range m.reflections {
		if existing.UserID == entry.UserID && existing.Day().Equal(day.Time) {
			return models.ReflectionEntry{}, fmt.Errorf("memory InsertReflection: %w", models.ErrDuplicate)
		}
	}

	entry.ID = m.id()
	m.reflections = append(m.reflections, entry)
	return entry, nil
}

func (m *MemoryStorage) ReflectionExists(ctx context.Context, userID string, day models.Date) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, entry := range m.reflections {
		if entry.UserID == userID && entry.Day().Equal(day.Time) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MemoryStorage) SaveExchange(ctx context.Context, exchange models.ChatExchange) (models.ChatExchange, error) {
	if err := ctx.Err(); err != nil {
		return models.ChatExchange{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	exchange.ID = m.id()
	exchange.Timestamp = m.now()
	m.chats = append(m.chats, exchange)
	return exchange, nil
}

// Exchanges returns the chat log of a user in insertion order.
func (m *MemoryStorage) Exchanges(userID string) []models.ChatExchange {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []models.ChatExchange
	for _, exchange := range m.chats {
		if exchange.UserID == userID {
			out = append(out, exchange)
		}
	}
	return out
}
