package handlers

import (
	"net/http"

	"mood_forge/internal/models"
	"mood_forge/internal/usecases"

	"go.uber.org/zap"
)

type ReflectionHandler struct {
	baseHandler
	gate     *usecases.SubmissionGate
	feedback *usecases.FeedbackOrchestrator
}

func NewReflectionHandler(gate *usecases.SubmissionGate, feedback *usecases.FeedbackOrchestrator, logger *zap.Logger) *ReflectionHandler {
	return &ReflectionHandler{
		baseHandler: baseHandler{logger: logger.Named("reflection")},
		gate:        gate,
		feedback:    feedback,
	}
}

func (rh *ReflectionHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ReflectionCheck"
	q := r.URL.Query()

	exists, err := rh.gate.CheckReflection(r.Context(), q.Get("user_id"), q.Get("date"))
	if err != nil {
		rh.fail(w, op, err)
		return
	}
	rh.respond(w, op, http.StatusOK, map[string]bool{"exists": exists})
}

func (rh *ReflectionHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ReflectionSubmit"

	var input usecases.ReflectionSubmission
	if err := decodeJSON(r, w, &input, true); err != nil {
		rh.badRequest(w, op, err)
		return
	}

	saved, err := rh.gate.SubmitReflection(r.Context(), input)
	if err != nil {
		rh.fail(w, op, err)
		return
	}
	rh.respond(w, op, http.StatusCreated, map[string]any{
		"success": true,
		"data":    []models.ReflectionEntry{saved},
	})
}

func (rh *ReflectionHandler) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ReflectionFeedback"

	var input struct {
		UserID string `json:"user_id"`
	}
	if err := decodeJSON(r, w, &input, false); err != nil {
		rh.badRequest(w, op, err)
		return
	}

	feedback, err := rh.feedback.ReflectionFeedback(r.Context(), input.UserID)
	if err != nil {
		if usecases.KindOf(err) == usecases.KindValidation {
			rh.fail(w, op, err)
			return
		}
		rh.logger.Error("reflection feedback failed", zap.String("op", op), zap.Error(err))
		rh.respond(w, op, http.StatusInternalServerError, map[string]string{
			"message":  "failed to get reflection feedback",
			"feedback": feedback,
		})
		return
	}
	rh.respond(w, op, http.StatusOK, map[string]string{
		"user_id":  input.UserID,
		"feedback": feedback,
	})
}
