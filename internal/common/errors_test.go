package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	wrapped := NewUserError("failed to open database", ErrInvalidConfig)

	assert.Equal(t, "failed to open database: invalid configuration", wrapped.Error())
	assert.ErrorIs(t, wrapped, ErrInvalidConfig)

	var userErr *UserError
	assert.ErrorAs(t, wrapped, &userErr)
	assert.Equal(t, "failed to open database", userErr.UserMessage)
}

func TestUserError_NoCause(t *testing.T) {
	err := &UserError{UserMessage: "nothing to classify"}
	assert.Equal(t, "nothing to classify", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestUserError_WrapsSentinel(t *testing.T) {
	err := fmt.Errorf("loading rules: %w", NewUserError("rule rejected", ErrDuplicateEntry))
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}
