package storage

import (
	"context"
	"errors"
	"fmt"
	"mood_forge/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReflectionStorage struct {
	pool *pgxpool.Pool
}

func NewReflectionStorage(pool *pgxpool.Pool) *ReflectionStorage {
	return &ReflectionStorage{
		pool: pool,
	}
}

// InsertReflection relies on the (user_id, UTC day) unique index; a second
// form on the same day yields models.ErrDuplicate.
func (db_rs *ReflectionStorage) InsertReflection(ctx context.Context, entry models.ReflectionEntry) (models.ReflectionEntry, error) {
	op := "internal/storage/reflection.go InsertReflection"

	sql_query := `
	INSERT INTO reflection_forms
	(user_id, category,
	 question_1, question_2, question_3, question_4, question_5,
	 question_6, question_7, question_8, question_9, question_10)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT DO NOTHING
	RETURNING id, created_at;
	`

	args := []any{entry.UserID, entry.Category}
	for _, answer := range entry.Answers() {
		args = append(args, answer)
	}

	err := db_rs.pool.QueryRow(ctx, sql_query, args...).Scan(&entry.ID, &entry.Timestamp)

	if errors.Is(err, pgx.ErrNoRows) || isUniqueViolation(err) {
		return models.ReflectionEntry{}, fmt.Errorf("%s: %w", op, models.ErrDuplicate)
	}
	if err != nil {
		return models.ReflectionEntry{}, fmt.Errorf("failure to insert reflection in %s: %w", op, err)
	}

	return entry, nil
}

func (db_rs *ReflectionStorage) ReflectionExists(ctx context.Context, userID string, day models.Date) (bool, error) {
	op := "internal/storage/reflection.go ReflectionExists"

	sql_query := `
	SELECT EXISTS (
		SELECT 1 FROM reflection_forms
		WHERE user_id = $1 AND created_at >= $2 AND created_at < $3
	);
	`

	var exists bool
	err := db_rs.pool.QueryRow(ctx, sql_query, userID, day.Time, day.Next().Time).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failure to check reflection in %s: %w", op, err)
	}

	return exists, nil
}
