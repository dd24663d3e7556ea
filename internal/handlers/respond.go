package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"mood_forge/internal/usecases"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type baseHandler struct {
	logger *zap.Logger
}

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, op string, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("encode response failed", zap.String("op", op), zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, logger *zap.Logger, op string, status int, message string) {
	writeJSON(w, logger, op, status, errorBody{Message: message})
}

// decodeJSON reads exactly one JSON object from the request body.
func decodeJSON(r *http.Request, w http.ResponseWriter, dst any, strict bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body: trailing data")
	}
	return nil
}

// statusFor maps an error kind to the default response. Endpoints with a
// different policy override it before calling.
func statusFor(err error) (int, string) {
	var e *usecases.Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, "internal error"
	}

	switch e.Kind {
	case usecases.KindValidation:
		return http.StatusBadRequest, e.Msg
	case usecases.KindDuplicate:
		return http.StatusConflict, "an entry for this day already exists"
	case usecases.KindNoData:
		return http.StatusNotFound, "no mood entries found"
	case usecases.KindUpstreamUnavailable, usecases.KindUpstream, usecases.KindInvalidUpstreamResponse:
		return http.StatusInternalServerError, "AI service error"
	case usecases.KindPersistence:
		return http.StatusInternalServerError, "failed to save chat history"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (h *baseHandler) fail(w http.ResponseWriter, op string, err error) {
	status, message := statusFor(err)
	h.failWith(w, op, err, status, message)
}

func (h *baseHandler) failWith(w http.ResponseWriter, op string, err error, status int, message string) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("op", op), zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.String("op", op), zap.Int("status", status), zap.Error(err))
	}
	writeError(w, h.logger, op, status, message)
}

func (h *baseHandler) respond(w http.ResponseWriter, op string, status int, body any) {
	writeJSON(w, h.logger, op, status, body)
}

func (h *baseHandler) badRequest(w http.ResponseWriter, op string, err error) {
	h.failWith(w, op, err, http.StatusBadRequest, err.Error())
}
