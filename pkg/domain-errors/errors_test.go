package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := New(CodeNotFound, "invoice not found")
		assert.Equal(t, "invoice not found", err.Error())
	})

	t.Run("wrapped cause appears in message", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		err := Wrap(cause, CodeUnavailable, "payment validation failed")
		assert.Equal(t, "payment validation failed: dial tcp: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})
}

func TestHasCode(t *testing.T) {
	err := New(CodeUnavailable, "ledger unavailable")
	assert.True(t, HasCode(err, CodeUnavailable))
	assert.False(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(errors.New("plain"), CodeUnavailable))
	assert.False(t, HasCode(nil, CodeUnavailable))

	t.Run("survives fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("outer: %w", New(CodeInvalidInput, "bad id"))
		assert.True(t, HasCode(wrapped, CodeInvalidInput))
	})

	t.Run("nested domain errors report the outermost code", func(t *testing.T) {
		inner := New(CodeUnavailable, "payment validation failed")
		outer := Wrap(inner, CodeUnavailable, "failed to get payment summary")
		assert.True(t, HasCode(outer, CodeUnavailable))
		assert.Contains(t, outer.Error(), "failed to get payment summary: payment validation failed")
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUnauthorized, CodeOf(New(CodeUnauthorized, "no token")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
}
