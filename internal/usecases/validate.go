package usecases

import (
	"fmt"
	"strings"

	"mood_forge/internal/models"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requireField(op, field, value string) error {
	if blank(value) {
		return invalid(op, field, "%s is required", field)
	}
	return nil
}

func parseDay(op, field, value string) (models.Date, error) {
	if err := requireField(op, field, value); err != nil {
		return models.Date{}, err
	}
	day, err := models.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return models.Date{}, invalid(op, field, "%s must be a date in %s format", field, models.DateLayout)
	}
	return day, nil
}

func validateMood(op string, s MoodSubmission) (models.MoodEntry, error) {
	if err := requireField(op, "user_id", s.UserID); err != nil {
		return models.MoodEntry{}, err
	}
	day, err := parseDay(op, "date", s.Date)
	if err != nil {
		return models.MoodEntry{}, err
	}
	if err := requireField(op, "mood", s.Mood); err != nil {
		return models.MoodEntry{}, err
	}
	mood := models.Mood(s.Mood)
	if !mood.Valid() {
		return models.MoodEntry{}, invalid(op, "mood", "mood must be one of %v", models.Moods)
	}
	if err := requireField(op, "keyword", s.Keyword); err != nil {
		return models.MoodEntry{}, err
	}
	if err := requireField(op, "reason", s.Reason); err != nil {
		return models.MoodEntry{}, err
	}

	return models.MoodEntry{
		UserID:  s.UserID,
		Date:    day,
		Mood:    mood,
		Keyword: s.Keyword,
		Reason:  s.Reason,
	}, nil
}

func validateReflection(op string, s ReflectionSubmission) (models.ReflectionEntry, error) {
	if err := requireField(op, "user_id", s.UserID); err != nil {
		return models.ReflectionEntry{}, err
	}
	if err := requireField(op, "category", s.Category); err != nil {
		return models.ReflectionEntry{}, err
	}

	entry := models.ReflectionEntry{
		UserID:     s.UserID,
		Category:   s.Category,
		Question1:  s.Question1,
		Question2:  s.Question2,
		Question3:  s.Question3,
		Question4:  s.Question4,
		Question5:  s.Question5,
		Question6:  s.Question6,
		Question7:  s.Question7,
		Question8:  s.Question8,
		Question9:  s.Question9,
		Question10: s.Question10,
	}
	for i, answer := range entry.Answers() {
		if err := requireField(op, fmt.Sprintf("question_%d", i+1), answer); err != nil {
			return models.ReflectionEntry{}, err
		}
	}
	return entry, nil
}
