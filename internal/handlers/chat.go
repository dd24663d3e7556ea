package handlers

import (
	"net/http"

	"mood_forge/internal/usecases"

	"go.uber.org/zap"
)

type ChatHandler struct {
	baseHandler
	feedback *usecases.FeedbackOrchestrator
}

func NewChatHandler(feedback *usecases.FeedbackOrchestrator, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		baseHandler: baseHandler{logger: logger.Named("chat")},
		feedback:    feedback,
	}
}

func (ch *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ChatSend"

	var input struct {
		UserID  string `json:"user_id"`
		Message string `json:"message"`
	}
	if err := decodeJSON(r, w, &input, false); err != nil {
		ch.badRequest(w, op, err)
		return
	}

	reply, err := ch.feedback.Chat(r.Context(), input.UserID, input.Message)
	if err != nil {
		ch.fail(w, op, err)
		return
	}
	ch.respond(w, op, http.StatusOK, map[string]string{"reply": reply})
}
