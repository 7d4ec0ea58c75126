package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/domain"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/render"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"invalid filter", fmt.Errorf("build: %w", domain.NewInvalidFilterError("page", 0)), CodeInvalidFilter, http.StatusBadRequest},
		{"unknown format", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, "docx"), CodeUnsupportedFormat, http.StatusBadRequest},
		{"rate limited", domain.ErrRateLimited, CodeRateLimited, http.StatusTooManyRequests},
		{"overflow", &render.RenderOverflowError{Section: "kpi", Height: 300, Usable: 257}, CodeRenderOverflow, http.StatusInternalServerError},
		{"app error passthrough", NewNotFound("gone"), CodeNotFound, http.StatusNotFound},
		{"unknown", errors.New("connection refused"), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestMapError_HidesInternalDetails(t *testing.T) {
	got := MapError(errors.New("pq: password authentication failed"))
	assert.NotContains(t, got.Message, "password")
}
