package usecases

import (
	"context"

	"mood_forge/internal/ai"
	"mood_forge/internal/models"
)

// MoodStore persists mood entries. InsertMood returns models.ErrDuplicate when
// the user already has an entry for that date; LatestMood returns
// models.ErrNotFound when the user has none.
type MoodStore interface {
	InsertMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error)
	MoodExists(ctx context.Context, userID string, day models.Date) (bool, error)
	MoodsInRange(ctx context.Context, userID string, start, end models.Date) ([]models.MoodPoint, error)
	AllMoods(ctx context.Context, userID string) ([]models.MoodRecord, error)
	LatestMood(ctx context.Context, userID string) (models.MoodEntry, error)
}

// ReflectionStore persists reflection forms, one per user per UTC day.
type ReflectionStore interface {
	InsertReflection(ctx context.Context, entry models.ReflectionEntry) (models.ReflectionEntry, error)
	ReflectionExists(ctx context.Context, userID string, day models.Date) (bool, error)
}

type ChatStore interface {
	SaveExchange(ctx context.Context, exchange models.ChatExchange) (models.ChatExchange, error)
}

// InferenceGateway is the external AI service.
type InferenceGateway interface {
	Chat(ctx context.Context, req ai.ChatRequest) (string, error)
	WeeklySummary(ctx context.Context, userID string) (string, error)
	MoodReflection(ctx context.Context, req ai.MoodReflectionRequest) (string, error)
	ReflectionFeedback(ctx context.Context, userID string) (string, error)
}
