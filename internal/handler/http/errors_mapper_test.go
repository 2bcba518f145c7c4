package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantMessages []string
	}{
		{
			name:         "validation",
			err:          fmt.Errorf("wrapped: %w", validators.NewValidationError("a", "b")),
			wantStatus:   http.StatusUnprocessableEntity,
			wantMessages: []string{"a", "b"},
		},
		{
			name:         "duplicate",
			err:          service.ErrDuplicateUsername,
			wantStatus:   http.StatusUnprocessableEntity,
			wantMessages: []string{"Username already taken"},
		},
		{
			name:         "recipe not saved wraps store error",
			err:          fmt.Errorf("%w: %w", service.ErrRecipeNotSaved, store.ErrConstraintViolation),
			wantStatus:   http.StatusUnprocessableEntity,
			wantMessages: []string{"There was an issue saving your recipe."},
		},
		{
			name:         "owner not found",
			err:          service.ErrOwnerNotFound,
			wantStatus:   http.StatusNotFound,
			wantMessages: []string{"User not found"},
		},
		{
			name:         "raw store error is internal",
			err:          fmt.Errorf("x: %w", store.ErrExecutingQuery),
			wantStatus:   http.StatusInternalServerError,
			wantMessages: []string{"Internal server error"},
		},
		{
			name:         "unknown",
			err:          errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
			wantMessages: []string{"Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, messages := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}
