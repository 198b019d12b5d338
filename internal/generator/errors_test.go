package generator_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/genpersona/persona-service/internal/generator"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", generator.ErrValidation, http.StatusBadRequest},
		{"auth", generator.ErrAuth, http.StatusUnauthorized},
		{"provider", generator.ErrProvider, http.StatusBadGateway},
		{"parse", generator.ErrParse, http.StatusInternalServerError},
		{"unknown", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped validation", fmt.Errorf("bind: %w", generator.ErrValidation), http.StatusBadRequest},
		{"wrapped provider", fmt.Errorf("complete: %w", generator.ErrProvider), http.StatusBadGateway},
		{"wrapped auth", fmt.Errorf("complete: %w", generator.ErrAuth), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generator.MapHTTPStatus(tt.err))
		})
	}
}
