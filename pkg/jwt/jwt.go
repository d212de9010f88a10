package jwt

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/sandeepprabhakula/jwtabstract/pkg/logger"
)

// JWT header constants required by RFC 7519
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256"
)

// Header represents the JWT header as defined in RFC 7515
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// segmentCodec decodes unpadded base64url token segments. Strict decoding
// rejects non-zero trailing bits so every segment has one spelling.
var segmentCodec = gojwt.NewParser(gojwt.WithStrictDecoding())

// Service issues and verifies HS256 tokens. It never stores secrets: every
// call receives the secret it should sign or verify with.
// A Service is immutable after New and safe for concurrent use.
type Service struct {
	now               func() time.Time
	logger            *slog.Logger
	defaultExpiration time.Duration
	tokenID           func() string
}

// New creates a token service.
func New(opts ...Option) *Service {
	s := &Service{
		now:               time.Now,
		logger:            slog.New(slog.DiscardHandler),
		defaultExpiration: DefaultExpiration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate signs claims for subject with the base64url encoded secret.
// The token expires expiration after now; a zero expiration means the
// service default (30 minutes unless overridden). sub, iat, exp (and jti when
// enabled) overwrite caller claims of the same name. claims is not modified.
func (s *Service) Generate(secret, subject string, claims map[string]any, expiration time.Duration) (string, error) {
	key, kerr := signingKey(secret)
	if kerr != nil {
		s.logger.Debug("token generation failed", logger.Subject(subject), logger.Error(kerr))
		return "", kerr
	}

	if expiration == 0 {
		expiration = s.defaultExpiration
	}

	now := s.now()
	expiresAt := now.Add(expiration)
	payload := make(gojwt.MapClaims, len(claims)+4)
	maps.Copy(payload, claims)
	payload[ClaimSubject] = subject
	payload[ClaimIssuedAt] = now.Unix()
	payload[ClaimExpiresAt] = expiresAt.Unix()

	var jti string
	if s.tokenID != nil {
		jti = s.tokenID()
		payload[ClaimID] = jti
	}

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, payload).SignedString(key)
	if err != nil {
		gerr := &GenerationError{Err: ErrUnserializableClaims, Cause: err}
		s.logger.Debug("token generation failed", logger.Subject(subject), logger.Error(gerr))
		return "", gerr
	}

	s.logger.Debug("token generated",
		logger.Subject(subject),
		logger.TokenID(jti),
		logger.Expiration(expiresAt.UTC()),
	)

	return token, nil
}

// ExtractAllClaims verifies token with secret and returns its claims,
// registered fields included. Failures are *ValidationError values; the
// signature is checked before the payload is decoded so any change to the
// payload is reported as KindSignatureInvalid.
func (s *Service) ExtractAllClaims(secret, token string) (Claims, error) {
	claims, err := s.parse(secret, token)
	if err != nil {
		kind, _ := KindOf(err)
		s.logger.Debug("token validation failed", logger.Reason(string(kind)), logger.Error(err))
		return nil, err
	}
	s.logger.Debug("token validated", logger.Subject(claims.Subject()), logger.TokenID(claims.ID()))
	return claims, nil
}

// ExtractExpiration returns the exp claim of a valid token.
func (s *Service) ExtractExpiration(secret, token string) (time.Time, error) {
	return ExtractClaim(s, secret, token, Claims.ExpiresAt)
}

// ExtractSubject returns the sub claim of a valid token.
func (s *Service) ExtractSubject(secret, token string) (string, error) {
	return ExtractClaim(s, secret, token, Claims.Subject)
}

// IsExpired reports whether token is rejected solely because its exp has
// passed. It relies on the same check as ExtractAllClaims; any other
// validation failure is returned as the error.
func (s *Service) IsExpired(secret, token string) (bool, error) {
	_, err := s.parse(secret, token)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, ErrExpiredToken) {
		return true, nil
	}
	return false, err
}

// ExtractClaim verifies token and applies resolve to its claims.
func ExtractClaim[T any](s *Service, secret, token string, resolve func(Claims) T) (T, error) {
	claims, err := s.ExtractAllClaims(secret, token)
	if err != nil {
		var zero T
		return zero, err
	}
	return resolve(claims), nil
}

func (s *Service) parse(secret, token string) (Claims, error) {
	key, kerr := signingKey(secret)
	if kerr != nil {
		return nil, &ValidationError{Kind: KindInvalidKey, Cause: kerr}
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, &ValidationError{
			Kind:  KindMalformed,
			Cause: fmt.Errorf("token has %d segments, want 3", len(parts)),
		}
	}

	headerJSON, err := segmentCodec.DecodeSegment(parts[0])
	if err != nil {
		return nil, &ValidationError{Kind: KindMalformed, Cause: fmt.Errorf("failed to decode header: %w", err)}
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, &ValidationError{Kind: KindMalformed, Cause: fmt.Errorf("failed to unmarshal header: %w", err)}
	}

	// Reject anything but HS256 to prevent algorithm confusion
	if header.Algorithm != HeaderAlgorithm {
		return nil, &ValidationError{
			Kind:  KindSignatureInvalid,
			Cause: fmt.Errorf("unexpected signing method %q", header.Algorithm),
		}
	}

	signature, err := segmentCodec.DecodeSegment(parts[2])
	if err != nil {
		return nil, &ValidationError{Kind: KindMalformed, Cause: fmt.Errorf("failed to decode signature: %w", err)}
	}

	if err := gojwt.SigningMethodHS256.Verify(parts[0]+"."+parts[1], signature, key); err != nil {
		return nil, &ValidationError{Kind: KindSignatureInvalid, Cause: err}
	}

	payloadJSON, err := segmentCodec.DecodeSegment(parts[1])
	if err != nil {
		return nil, &ValidationError{Kind: KindMalformed, Cause: fmt.Errorf("failed to decode claims: %w", err)}
	}

	var claims Claims
	if err := json.Unmarshal(payloadJSON, &claims); err != nil || claims == nil {
		if err == nil {
			err = ErrInvalidClaims
		}
		return nil, &ValidationError{Kind: KindMalformed, Cause: fmt.Errorf("failed to unmarshal claims: %w", err)}
	}

	exp, err := claims.expiration()
	if err != nil {
		return nil, &ValidationError{Kind: KindMalformed, Cause: fmt.Errorf("exp claim: %w", err)}
	}

	if !s.now().Before(exp) {
		return nil, &ValidationError{
			Kind:  KindExpired,
			Cause: fmt.Errorf("expired at %s", exp.UTC().Format(time.RFC3339)),
		}
	}

	return claims, nil
}
