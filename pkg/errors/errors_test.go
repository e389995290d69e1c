package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	wrapped := fmt.Errorf("lookup: %w", ErrStudentNotFound)
	assert.Equal(t, ErrStudentNotFound, FromError(wrapped))

	plain := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
	assert.EqualError(t, plain, "internal server error: boom")
}

func TestCloneKeepsIdentity(t *testing.T) {
	clone := Clone(ErrInvalidFilter, "startYear must be a number")
	assert.Equal(t, "startYear must be a number", clone.Message)
	assert.Equal(t, "invalid time filter", ErrInvalidFilter.Message)
	assert.True(t, errors.Is(clone, ErrInvalidFilter))
	assert.False(t, errors.Is(clone, ErrValidation))
	assert.True(t, errors.Is(fmt.Errorf("get: %w", ErrCacheMiss), ErrCacheMiss))
}
