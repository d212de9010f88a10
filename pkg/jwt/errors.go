package jwt

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSecret        = errors.New("jwt: missing secret")
	ErrInvalidSecret        = errors.New("jwt: secret is not valid base64url")
	ErrWeakSecret           = errors.New("jwt: secret must decode to at least 256 bits")
	ErrUnserializableClaims = errors.New("jwt: claims cannot be serialized")
	ErrMalformedToken       = errors.New("jwt: malformed token")
	ErrInvalidSignature     = errors.New("jwt: invalid signature")
	ErrExpiredToken         = errors.New("jwt: token is expired")
	ErrInvalidClaims        = errors.New("jwt: invalid claims")
	ErrMissingToken         = errors.New("jwt: missing token")
)

// GenerationError is returned by Generate. Err is one of ErrMissingSecret,
// ErrInvalidSecret, ErrWeakSecret or ErrUnserializableClaims; Cause holds the
// underlying failure when there is one.
type GenerationError struct {
	Err   error
	Cause error
}

func (e *GenerationError) Error() string {
	if e.Cause == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %v", e.Err, e.Cause)
}

func (e *GenerationError) Unwrap() []error {
	return unwrapPair(e.Err, e.Cause)
}

// ValidationKind tells callers why a token was rejected.
type ValidationKind string

const (
	// KindMalformed: the string is not a structurally valid token.
	KindMalformed ValidationKind = "malformed"
	// KindSignatureInvalid: wrong secret, tampered content or unexpected algorithm.
	KindSignatureInvalid ValidationKind = "signature_invalid"
	// KindExpired: the signature verifies but the exp claim has passed.
	KindExpired ValidationKind = "expired"
	// KindInvalidKey: the secret supplied for verification is unusable.
	KindInvalidKey ValidationKind = "invalid_key"
)

// ValidationError is returned by every extract operation.
// errors.Is matches the sentinel of its kind (ErrMalformedToken,
// ErrInvalidSignature, ErrExpiredToken or the secret sentinels).
type ValidationError struct {
	Kind  ValidationKind
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Kind == KindInvalidKey && e.Cause != nil {
		// the cause already names the secret problem
		return e.Cause.Error()
	}
	if e.Cause == nil {
		return e.sentinel().Error()
	}
	return fmt.Sprintf("%v: %v", e.sentinel(), e.Cause)
}

func (e *ValidationError) Unwrap() []error {
	if e.Kind == KindInvalidKey && e.Cause != nil {
		return []error{e.Cause}
	}
	return unwrapPair(e.sentinel(), e.Cause)
}

func (e *ValidationError) sentinel() error {
	switch e.Kind {
	case KindSignatureInvalid:
		return ErrInvalidSignature
	case KindExpired:
		return ErrExpiredToken
	default:
		return ErrMalformedToken
	}
}

// KindOf reports the validation kind carried by err, if any.
func KindOf(err error) (ValidationKind, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return "", false
}

func unwrapPair(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}
