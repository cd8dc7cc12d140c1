package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Error(t *testing.T) {
	err := Wrap(errors.New("boom"), CodeStale, "offset moved").WithContext(CtxOffset, 12)

	assert.Equal(t, "[STALE] offset moved: boom map[offset:12]", err.Error())
	assert.Equal(t, "boom", errors.Unwrap(err).Error())
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("failed to plan rename: %w", New(CodeUnrenamable, "import binding"))

	assert.True(t, IsCode(err, CodeUnrenamable))
	assert.False(t, IsCode(err, CodeStale))
	assert.False(t, IsCode(errors.New("plain"), CodeStale))
}

func TestIsResolve(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"stale", New(CodeStale, "x"), true},
		{"syntax", New(CodeSyntax, "x"), true},
		{"validation", New(CodeValidation, "x"), true},
		{"wrapped conflict", fmt.Errorf("apply: %w", New(CodeConflict, "x")), true},
		{"internal", New(CodeInternal, "x"), false},
		{"not found", New(CodeNotFound, "x"), false},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsResolve(tt.err))
		})
	}
}
