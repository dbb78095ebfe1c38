package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNetwork(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"unavailable", ErrUnavailable, true},
		{"wrapped request failed", fmt.Errorf("load categories: %w", ErrRequestFailed), true},
		{"unauthorized", ErrUnauthorized, false},
		{"validation", ErrValidation, false},
		{"nil", nil, false},
		{"other", errors.New("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNetwork(tt.err))
		})
	}
}
