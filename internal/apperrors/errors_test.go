package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsToSentinel(t *testing.T) {
	err := fmt.Errorf("service layer: %w", apperrors.NewNotFoundError("rate USD->ILS not found"))

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrValidation))
	assert.Contains(t, err.Error(), "rate USD->ILS not found")
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "validation", err: apperrors.NewValidationError("bad code"), want: http.StatusBadRequest},
		{name: "not found", err: fmt.Errorf("wrapped: %w", apperrors.ErrNotFound), want: http.StatusNotFound},
		{name: "unauthorized", err: apperrors.ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "app error with code", err: apperrors.NewAppError(http.StatusServiceUnavailable, "db down", errors.New("dial")), want: http.StatusServiceUnavailable},
		{name: "plain error", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.StatusCode(tt.err))
		})
	}
}
