package storage

import (
	"context"
	"errors"
	"fmt"
	"mood_forge/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MoodStorage struct {
	pool *pgxpool.Pool
}

func NewMoodStorage(pool *pgxpool.Pool) *MoodStorage {
	return &MoodStorage{
		pool: pool,
	}
}

// InsertMood stores the entry unless the user already has one for that day,
// in which case models.ErrDuplicate is returned.
func (db_ms *MoodStorage) InsertMood(ctx context.Context, entry models.MoodEntry) (models.MoodEntry, error) {
	op := "internal/storage/mood.go InsertMood"

	sql_query := `
	INSERT INTO mood_tracking
	(user_id, date, mood, keyword, reason)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (user_id, date) DO NOTHING
	RETURNING id, created_at;
	`

	err := db_ms.pool.QueryRow(
		ctx,
		sql_query,
		entry.UserID,
		entry.Date.Time,
		string(entry.Mood),
		entry.Keyword,
		entry.Reason,
	).Scan(&entry.ID, &entry.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return models.MoodEntry{}, fmt.Errorf("%s: %w", op, models.ErrDuplicate)
	}
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failure to insert mood in %s: %w", op, err)
	}

	return entry, nil
}

func (db_ms *MoodStorage) MoodExists(ctx context.Context, userID string, day models.Date) (bool, error) {
	op := "internal/storage/mood.go MoodExists"

	sql_query := `
	SELECT EXISTS (
		SELECT 1 FROM mood_tracking
		WHERE user_id = $1 AND date = $2
	);
	`

	var exists bool
	if err := db_ms.pool.QueryRow(ctx, sql_query, userID, day.Time).Scan(&exists); err != nil {
		return false, fmt.Errorf("failure to check mood in %s: %w", op, err)
	}

	return exists, nil
}

// MoodsInRange returns the entries whose date lies in [start, end], oldest first.
func (db_ms *MoodStorage) MoodsInRange(ctx context.Context, userID string, start, end models.Date) ([]models.MoodPoint, error) {
	op := "internal/storage/mood.go MoodsInRange"

	sql_query := `
	SELECT date, mood FROM mood_tracking
	WHERE user_id = $1 AND date >= $2 AND date <= $3
	ORDER BY date ASC;
	`

	rows, err := db_ms.pool.Query(ctx, sql_query, userID, start.Time, end.Time)
	if err != nil {
		return nil, fmt.Errorf("failure to get moods in %s: %w", op, err)
	}
	defer rows.Close()

	points := []models.MoodPoint{}
	for rows.Next() {
		point := models.MoodPoint{}

		if err := rows.Scan(&point.Date.Time, &point.Mood); err != nil {
			return nil, fmt.Errorf("failure to scan moods in %s: %w", op, err)
		}

		points = append(points, point)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failure to read moods in %s: %w", op, err)
	}

	return points, nil
}

// AllMoods returns the full history of a user, most recent date first.
func (db_ms *MoodStorage) AllMoods(ctx context.Context, userID string) ([]models.MoodRecord, error) {
	op := "internal/storage/mood.go AllMoods"

	sql_query := `
	SELECT date, mood, keyword, reason FROM mood_tracking
	WHERE user_id = $1
	ORDER BY date DESC;
	`

	rows, err := db_ms.pool.Query(ctx, sql_query, userID)
	if err != nil {
		return nil, fmt.Errorf("failure to get moods in %s: %w", op, err)
	}
	defer rows.Close()

	records := []models.MoodRecord{}
	for rows.Next() {
		record := models.MoodRecord{}

		err := rows.Scan(
			&record.Date.Time,
			&record.Mood,
			&record.Keyword,
			&record.Reason,
		)
		if err != nil {
			return nil, fmt.Errorf("failure to scan moods in %s: %w", op, err)
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failure to read moods in %s: %w", op, err)
	}

	return records, nil
}

// LatestMood returns the most recently created entry or models.ErrNotFound.
func (db_ms *MoodStorage) LatestMood(ctx context.Context, userID string) (models.MoodEntry, error) {
	op := "internal/storage/mood.go LatestMood"

	sql_query := `
	SELECT id, user_id, date, mood, keyword, reason, created_at FROM mood_tracking
	WHERE user_id = $1
	ORDER BY created_at DESC, id DESC
	LIMIT 1;
	`

	var entry models.MoodEntry
	err := db_ms.pool.QueryRow(ctx, sql_query, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Date.Time,
		&entry.Mood,
		&entry.Keyword,
		&entry.Reason,
		&entry.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return models.MoodEntry{}, fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failure to get latest mood in %s: %w", op, err)
	}

	return entry, nil
}
