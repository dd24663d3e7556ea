package usecases

import (
	"context"

	"mood_forge/internal/models"

	"go.uber.org/zap"
)

// AggregationService reshapes stored mood entries for charts and history.
// Reads are all-or-nothing.
type AggregationService struct {
	moods  MoodStore
	logger *zap.Logger
}

func NewAggregationService(moods MoodStore, logger *zap.Logger) *AggregationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AggregationService{
		moods:  moods,
		logger: logger.Named("aggregation"),
	}
}

// Range returns the entries dated within [start, end], both inclusive.
// start after end is a validation error.
func (s *AggregationService) Range(ctx context.Context, userID, start, end string) ([]models.MoodPoint, error) {
	const op = "usecases.MoodRange"

	if err := requireField(op, "user_id", userID); err != nil {
		return nil, err
	}
	from, err := parseDay(op, "start", start)
	if err != nil {
		return nil, err
	}
	to, err := parseDay(op, "end", end)
	if err != nil {
		return nil, err
	}
	if from.After(to.Time) {
		return nil, invalid(op, "start", "start must not be after end")
	}

	points, err := s.moods.MoodsInRange(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("mood range read failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return nil, storeError(op, err)
	}
	if points == nil {
		points = []models.MoodPoint{}
	}
	return points, nil
}

// All returns the user's full history, most recent date first.
func (s *AggregationService) All(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	const op = "usecases.MoodHistory"

	if err := requireField(op, "user_id", userID); err != nil {
		return nil, err
	}

	records, err := s.moods.AllMoods(ctx, userID)
	if err != nil {
		s.logger.Error("mood history read failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return nil, storeError(op, err)
	}
	if records == nil {
		records = []models.MoodRecord{}
	}
	return records, nil
}
