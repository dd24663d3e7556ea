package usecases

import (
	"errors"
	"fmt"
	"testing"

	"mood_forge/internal/ai"
	"mood_forge/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGatewayErrorClassification(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{fmt.Errorf("wrap: %w", ai.ErrUnavailable), KindUpstreamUnavailable},
		{&ai.StatusError{Capability: ai.CapabilityChat, StatusCode: 503}, KindUpstream},
		{fmt.Errorf("decode: %w", ai.ErrInvalidResponse), KindInvalidUpstreamResponse},
		{errors.New("something else"), KindUpstream},
	}
	for _, tt := range tests {
		got := gatewayError("op", tt.err)
		assert.Equal(t, tt.kind, got.Kind, tt.err.Error())
		assert.ErrorIs(t, got, tt.err)
	}
}

func TestInsertErrorClassification(t *testing.T) {
	assert.Equal(t, KindDuplicate, insertError("op", fmt.Errorf("x: %w", models.ErrDuplicate)).Kind)
	assert.Equal(t, KindStore, insertError("op", errors.New("io")).Kind)
}

func TestErrorMessage(t *testing.T) {
	err := invalid("usecases.SubmitMood", "mood", "mood must be one of %v", models.Moods)
	assert.Contains(t, err.Error(), "usecases.SubmitMood: validation_error: mood must be one of")
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "unknown", Kind(99).String())
}
