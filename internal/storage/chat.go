package storage

import (
	"context"
	"fmt"
	"mood_forge/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChatStorage struct {
	pool *pgxpool.Pool
}

func NewChatStorage(pool *pgxpool.Pool) *ChatStorage {
	return &ChatStorage{
		pool: pool,
	}
}

func (db_cs *ChatStorage) SaveExchange(ctx context.Context, exchange models.ChatExchange) (models.ChatExchange, error) {
	op := "internal/storage/chat.go SaveExchange"

	sql_query := `
	INSERT INTO chat_history
	(user_id, user_message, ai_response)
	VALUES ($1, $2, $3)
	RETURNING id, created_at;
	`

	err := db_cs.pool.QueryRow(ctx, sql_query,
		exchange.UserID,
		exchange.UserMessage,
		exchange.AIResponse,
	).Scan(&exchange.ID, &exchange.Timestamp)

	if err != nil {
		return models.ChatExchange{}, fmt.Errorf("%s: failed to save chat exchange: %w", op, err)
	}

	return exchange, nil
}
