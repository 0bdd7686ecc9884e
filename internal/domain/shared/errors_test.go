package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	err := NewDomainError("TEST_CODE", "test message")
	assert.Equal(t, "TEST_CODE", err.Code)
	assert.Equal(t, "test message", err.Error())
}

func TestDomainError_ErrorsAs(t *testing.T) {
	wrapped := fmt.Errorf("loading loan: %w", ErrNotFound)

	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestDomainError_ErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("loading loan: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.False(t, errors.Is(wrapped, ErrInvalidState))
}
