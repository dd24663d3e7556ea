package usecases

import (
	"context"

	"mood_forge/internal/ai"
	"mood_forge/internal/models"
	"mood_forge/internal/storage"
)

// spyStore counts calls into the in-memory store and can inject failures.
type spyStore struct {
	*storage.MemoryStorage

	inserts   int
	reads     int
	saves     int
	insertErr error
	readErr   error
	saveErr   error
}

func newSpyStore() *spyStore {
	return &spyStore{MemoryStorage: storage.NewMemoryStorage()}
}

func (s *spyStore) InsertMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	s.inserts++
	if s.insertErr != nil {
		return models.MoodEntry{}, s.insertErr
	}
	return s.MemoryStorage.InsertMood(ctx, entry)
}

func (s *spyStore) InsertReflection(ctx context.Context, entry models.ReflectionEntry) (models.ReflectionEntry, error) {
	s.inserts++
	if s.insertErr != nil {
		return models.ReflectionEntry{}, s.insertErr
	}
	return s.MemoryStorage.InsertReflection(ctx, entry)
}

func (s *spyStore) MoodExists(ctx context.Context, userID string, day models.Date) (bool, error) {
	s.reads++
	if s.readErr != nil {
		return false, s.readErr
	}
	return s.MemoryStorage.MoodExists(ctx, userID, day)
}

func (s *spyStore) MoodsInRange(ctx context.Context, userID string, start, end models.Date) ([]models.MoodPoint, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.MemoryStorage.MoodsInRange(ctx, userID, start, end)
}

func (s *spyStore) AllMoods(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.MemoryStorage.AllMoods(ctx, userID)
}

func (s *spyStore) LatestMood(ctx context.Context, userID string) (models.MoodEntry, error) {
	s.reads++
	if s.readErr != nil {
		return models.MoodEntry{}, s.readErr
	}
	return s.MemoryStorage.LatestMood(ctx, userID)
}

func (s *spyStore) SaveExchange(ctx context.Context, exchange models.ChatExchange) (models.ChatExchange, error) {
	s.saves++
	if s.saveErr != nil {
		return models.ChatExchange{}, s.saveErr
	}
	return s.MemoryStorage.SaveExchange(ctx, exchange)
}

type fakeGateway struct {
	reply       string
	chatErr     error
	summary     string
	summaryErr  error
	refleksi    string
	moodErr     error
	feedback    string
	feedbackErr error

	chatReqs      []ai.ChatRequest
	summaryUsers  []string
	moodReqs      []ai.MoodReflectionRequest
	feedbackUsers []string
}

func (g *fakeGateway) Chat(_ context.Context, req ai.ChatRequest) (string, error) {
	g.chatReqs = append(g.chatReqs, req)
	return g.reply, g.chatErr
}

func (g *fakeGateway) WeeklySummary(_ context.Context, userID string) (string, error) {
	g.summaryUsers = append(g.summaryUsers, userID)
	return g.summary, g.summaryErr
}

func (g *fakeGateway) MoodReflection(_ context.Context, req ai.MoodReflectionRequest) (string, error) {
	g.moodReqs = append(g.moodReqs, req)
	return g.refleksi, g.moodErr
}

func (g *fakeGateway) ReflectionFeedback(_ context.Context, userID string) (string, error) {
	g.feedbackUsers = append(g.feedbackUsers, userID)
	return g.feedback, g.feedbackErr
}

func validReflection(userID string) ReflectionSubmission {
	return ReflectionSubmission{
		UserID:     userID,
		Category:   "work",
		Question1:  "a1",
		Question2:  "a2",
		Question3:  "a3",
		Question4:  "a4",
		Question5:  "a5",
		Question6:  "a6",
		Question7:  "a7",
		Question8:  "a8",
		Question9:  "a9",
		Question10: "a10",
	}
}
