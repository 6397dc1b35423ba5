package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "validation",
			err:      NewError("bad cart").WithHint("Cart is invalid").Mark(ErrValidation),
			expected: http.StatusBadRequest,
		},
		{
			name:     "not_found",
			err:      NewError("missing").Mark(ErrNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped_validation",
			err:      fmt.Errorf("service: %w", NewError("bad cart").Mark(ErrValidation)),
			expected: http.StatusBadRequest,
		},
		{
			name:     "system",
			err:      WithError(fmt.Errorf("boom")).Mark(ErrSystem),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "unmarked",
			err:      fmt.Errorf("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestIsHelpers(t *testing.T) {
	err := NewError("cart is required").Mark(ErrValidation)

	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "cart is required", err.Error())
}
