package jwt_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sandeepprabhakula/jwtabstract/pkg/jwt"
)

func TestValidationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")

	tests := []struct {
		kind     jwt.ValidationKind
		sentinel error
	}{
		{jwt.KindMalformed, jwt.ErrMalformedToken},
		{jwt.KindSignatureInvalid, jwt.ErrInvalidSignature},
		{jwt.KindExpired, jwt.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			err := &jwt.ValidationError{Kind: tt.kind, Cause: cause}
			assert.ErrorIs(t, err, tt.sentinel)
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, tt.sentinel.Error()+": boom", err.Error())

			bare := &jwt.ValidationError{Kind: tt.kind}
			assert.Equal(t, tt.sentinel.Error(), bare.Error())

			wrapped := fmt.Errorf("handler: %w", err)
			kind, ok := jwt.KindOf(wrapped)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}

	t.Run("invalid key keeps the secret sentinel", func(t *testing.T) {
		err := &jwt.ValidationError{
			Kind:  jwt.KindInvalidKey,
			Cause: &jwt.GenerationError{Err: jwt.ErrWeakSecret, Cause: cause},
		}
		assert.ErrorIs(t, err, jwt.ErrWeakSecret)
		assert.NotErrorIs(t, err, jwt.ErrMalformedToken)
		assert.Equal(t, jwt.ErrWeakSecret.Error()+": boom", err.Error())
	})
}

func TestGenerationError(t *testing.T) {
	t.Parallel()
	cause := errors.New("json: unsupported type")

	err := &jwt.GenerationError{Err: jwt.ErrUnserializableClaims, Cause: cause}
	assert.ErrorIs(t, err, jwt.ErrUnserializableClaims)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "jwt: claims cannot be serialized: json: unsupported type", err.Error())

	bare := &jwt.GenerationError{Err: jwt.ErrMissingSecret}
	assert.Equal(t, jwt.ErrMissingSecret.Error(), bare.Error())
	assert.NotErrorIs(t, bare, cause)
}

func TestKindOf(t *testing.T) {
	t.Parallel()
	_, ok := jwt.KindOf(errors.New("other"))
	assert.False(t, ok)
	_, ok = jwt.KindOf(nil)
	assert.False(t, ok)
}
