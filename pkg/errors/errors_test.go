package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := NewLengthMismatchError(3, 2)
	assert.Equal(t, "LENGTH_MISMATCH: predicted has 3 values, actual has 2", err.Error())

	wrapped := NewInternalError("create instrument", errors.New("boom"))
	assert.Equal(t, "INTERNAL: create instrument: boom", wrapped.Error())
	assert.EqualError(t, errors.Unwrap(wrapped), "boom")
}

func TestAppError_IsMatchesByType(t *testing.T) {
	err := fmt.Errorf("relative error ratio: %w", NewEmptyInputError("no samples"))

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.NotErrorIs(t, err, ErrLengthMismatch)
}

func TestIsType(t *testing.T) {
	err := fmt.Errorf("segmented mae: %w", NewLengthMismatchError(1, 0))

	assert.True(t, IsType(err, ErrorTypeLengthMismatch))
	assert.False(t, IsType(err, ErrorTypeEmptyInput))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeLengthMismatch))
	assert.False(t, IsType(nil, ErrorTypeInternal))
}
