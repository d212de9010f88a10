package jwt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sandeepprabhakula/jwtabstract/pkg/logger"
)

type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}
	claimsContextKey = &contextKey{name: "jwt_claims"}
)

// SetToken stores the raw token string in ctx.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// SetClaims stores verified claims in ctx.
func SetClaims(ctx context.Context, claims Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetToken returns the token stored by SetToken.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// GetClaims returns the claims stored by SetClaims.
func GetClaims(ctx context.Context) (Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(Claims)
	return claims, ok
}

// GetClaimsAs decodes the claims stored in ctx into dst through JSON,
// so callers can work with a typed struct instead of a map.
func GetClaimsAs[T any](ctx context.Context, dst *T) error {
	if dst == nil {
		return fmt.Errorf("failed to unmarshal claims: %w", ErrInvalidClaims)
	}

	claims, ok := GetClaims(ctx)
	if !ok {
		return ErrInvalidClaims
	}

	raw, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("failed to marshal claims: %w", err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to unmarshal claims: %w", err)
	}

	return nil
}

// SubjectExtractor is a logger.ContextExtractor that adds the subject of the
// verified token in ctx to every log record.
func SubjectExtractor(ctx context.Context) (slog.Attr, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	sub := claims.Subject()
	if sub == "" {
		return slog.Attr{}, false
	}
	return logger.Subject(sub), true
}

var _ logger.ContextExtractor = SubjectExtractor
