package usecases

import (
	"context"

	"mood_forge/internal/metrics"
	"mood_forge/internal/models"

	"go.uber.org/zap"
)

type MoodSubmission struct {
	UserID  string `json:"user_id"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Keyword string `json:"keyword"`
	Reason  string `json:"reason"`
}

type ReflectionSubmission struct {
	UserID     string `json:"user_id"`
	Category   string `json:"category"`
	Question1  string `json:"question_1"`
	Question2  string `json:"question_2"`
	Question3  string `json:"question_3"`
	Question4  string `json:"question_4"`
	Question5  string `json:"question_5"`
	Question6  string `json:"question_6"`
	Question7  string `json:"question_7"`
	Question8  string `json:"question_8"`
	Question9  string `json:"question_9"`
	Question10 string `json:"question_10"`
}

// SubmissionGate accepts at most one mood entry and one reflection form per
// user per day. The Check methods are advisory; the insert itself is atomic
// and reports KindDuplicate when the day is already taken.
type SubmissionGate struct {
	moods       MoodStore
	reflections ReflectionStore
	logger      *zap.Logger
}

func NewSubmissionGate(moods MoodStore, reflections ReflectionStore, logger *zap.Logger) *SubmissionGate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionGate{
		moods:       moods,
		reflections: reflections,
		logger:      logger.Named("gate"),
	}
}

func (g *SubmissionGate) CheckMood(ctx context.Context, userID, date string) (bool, error) {
	const op = "usecases.CheckMood"

	if err := requireField(op, "user_id", userID); err != nil {
		return false, err
	}
	day, err := parseDay(op, "date", date)
	if err != nil {
		return false, err
	}

	exists, err := g.moods.MoodExists(ctx, userID, day)
	if err != nil {
		g.logger.Error("mood check failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return false, storeError(op, err)
	}
	return exists, nil
}

func (g *SubmissionGate) CheckReflection(ctx context.Context, userID, date string) (bool, error) {
	const op = "usecases.CheckReflection"

	if err := requireField(op, "user_id", userID); err != nil {
		return false, err
	}
	day, err := parseDay(op, "date", date)
	if err != nil {
		return false, err
	}

	exists, err := g.reflections.ReflectionExists(ctx, userID, day)
	if err != nil {
		g.logger.Error("reflection check failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return false, storeError(op, err)
	}
	return exists, nil
}

func (g *SubmissionGate) SubmitMood(ctx context.Context, submission MoodSubmission) (models.MoodEntry, error) {
	const op = "usecases.SubmitMood"

	entry, err := validateMood(op, submission)
	if err != nil {
		metrics.ObserveSubmission("mood", "invalid")
		return models.MoodEntry{}, err
	}

	saved, err := g.moods.InsertMood(ctx, entry)
	if err != nil {
		mapped := insertError(op, err)
		metrics.ObserveSubmission("mood", mapped.Kind.String())
		if mapped.Kind == KindStore {
			g.logger.Error("mood insert failed", zap.String("op", op), zap.String("user_id", entry.UserID), zap.Error(err))
		}
		return models.MoodEntry{}, mapped
	}

	metrics.ObserveSubmission("mood", "created")
	g.logger.Debug("mood stored", zap.String("user_id", saved.UserID), zap.Int64("id", saved.ID))
	return saved, nil
}

func (g *SubmissionGate) SubmitReflection(ctx context.Context, submission ReflectionSubmission) (models.ReflectionEntry, error) {
	const op = "usecases.SubmitReflection"

	entry, err := validateReflection(op, submission)
	if err != nil {
		metrics.ObserveSubmission("reflection", "invalid")
		return models.ReflectionEntry{}, err
	}

	saved, err := g.reflections.InsertReflection(ctx, entry)
	if err != nil {
		mapped := insertError(op, err)
		metrics.ObserveSubmission("reflection", mapped.Kind.String())
		if mapped.Kind == KindStore {
			g.logger.Error("reflection insert failed", zap.String("op", op), zap.String("user_id", entry.UserID), zap.Error(err))
		}
		return models.ReflectionEntry{}, mapped
	}

	metrics.ObserveSubmission("reflection", "created")
	g.logger.Debug("reflection stored", zap.String("user_id", saved.UserID), zap.Int64("id", saved.ID))
	return saved, nil
}
