package usecases

import (
	"context"
	"errors"

	"mood_forge/internal/ai"
	"mood_forge/internal/models"

	"go.uber.org/zap"
)

const (
	NoReflectionPlaceholder = "Tidak ada refleksi tersedia."
	NoFeedbackPlaceholder   = "Tidak ada feedback tersedia."
)

// MoodReflection is the outcome of ReflectionFromLatestMood. When the gateway
// fails the text is the placeholder, Degraded is set and Cause holds the
// classified gateway error.
type MoodReflection struct {
	Refleksi string
	Degraded bool
	Cause    error
}

// FeedbackOrchestrator combines stored entries with inference gateway calls.
// Every operation makes exactly one gateway call and never retries; each one
// applies its own failure policy.
type FeedbackOrchestrator struct {
	moods   MoodStore
	chats   ChatStore
	gateway InferenceGateway
	logger  *zap.Logger
}

func NewFeedbackOrchestrator(moods MoodStore, chats ChatStore, gateway InferenceGateway, logger *zap.Logger) *FeedbackOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FeedbackOrchestrator{
		moods:   moods,
		chats:   chats,
		gateway: gateway,
		logger:  logger.Named("feedback"),
	}
}

// Chat forwards the message and returns the reply only after the exchange
// has been persisted.
func (o *FeedbackOrchestrator) Chat(ctx context.Context, userID, message string) (string, error) {
	const op = "usecases.Chat"

	if err := requireField(op, "user_id", userID); err != nil {
		return "", err
	}
	if err := requireField(op, "message", message); err != nil {
		return "", err
	}

	reply, err := o.gateway.Chat(ctx, ai.ChatRequest{UserID: userID, Message: message})
	if err == nil && reply == "" {
		err = ai.ErrInvalidResponse
	}
	if err != nil {
		o.logger.Error("chat gateway call failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return "", gatewayError(op, err)
	}

	_, err = o.chats.SaveExchange(ctx, models.ChatExchange{
		UserID:      userID,
		UserMessage: message,
		AIResponse:  reply,
	})
	if err != nil {
		o.logger.Error("chat exchange not persisted", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return "", &Error{Kind: KindPersistence, Op: op, Msg: "chat exchange not saved", Err: err}
	}

	return reply, nil
}

// WeeklySummary keeps unreachable, failed and malformed gateway answers
// distinct so callers can decide whether to retry.
func (o *FeedbackOrchestrator) WeeklySummary(ctx context.Context, userID string) (string, error) {
	const op = "usecases.WeeklySummary"

	if err := requireField(op, "user_id", userID); err != nil {
		return "", err
	}

	summary, err := o.gateway.WeeklySummary(ctx, userID)
	if err == nil && summary == "" {
		err = ai.ErrInvalidResponse
	}
	if err != nil {
		o.logger.Error("weekly summary failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return "", gatewayError(op, err)
	}
	return summary, nil
}

// ReflectionFromLatestMood asks for a reflection on the user's most recently
// created mood entry. Store failures and a missing entry are errors; gateway
// failures degrade to the placeholder text.
func (o *FeedbackOrchestrator) ReflectionFromLatestMood(ctx context.Context, userID string) (MoodReflection, error) {
	const op = "usecases.ReflectionFromLatestMood"

	if err := requireField(op, "user_id", userID); err != nil {
		return MoodReflection{}, err
	}

	latest, err := o.moods.LatestMood(ctx, userID)
	if errors.Is(err, models.ErrNotFound) {
		return MoodReflection{}, &Error{Kind: KindNoData, Op: op, Msg: "no mood entries yet", Err: err}
	}
	if err != nil {
		o.logger.Error("latest mood read failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return MoodReflection{}, storeError(op, err)
	}

	// The gateway names the keyword "reason" and the free-text reason "text_reason".
	text, err := o.gateway.MoodReflection(ctx, ai.MoodReflectionRequest{
		UserID:     userID,
		Mood:       string(latest.Mood),
		Reason:     latest.Keyword,
		TextReason: latest.Reason,
	})
	if err != nil {
		o.logger.Warn("mood reflection degraded", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return MoodReflection{
			Refleksi: NoReflectionPlaceholder,
			Degraded: true,
			Cause:    gatewayError(op, err),
		}, nil
	}

	if text == "" {
		text = NoReflectionPlaceholder
	}
	return MoodReflection{Refleksi: text}, nil
}

// ReflectionFeedback forwards only the user id. On gateway failure it returns
// the placeholder feedback together with the classified error.
func (o *FeedbackOrchestrator) ReflectionFeedback(ctx context.Context, userID string) (string, error) {
	const op = "usecases.ReflectionFeedback"

	if err := requireField(op, "user_id", userID); err != nil {
		return "", err
	}

	feedback, err := o.gateway.ReflectionFeedback(ctx, userID)
	if err != nil {
		o.logger.Error("reflection feedback failed", zap.String("op", op), zap.String("user_id", userID), zap.Error(err))
		return NoFeedbackPlaceholder, gatewayError(op, err)
	}

	if feedback == "" {
		feedback = NoFeedbackPlaceholder
	}
	return feedback, nil
}
