package jwt

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultExpiration is used when Generate is called with a zero duration.
const DefaultExpiration = 30 * time.Minute

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now as the source of iat, exp and the expiry check.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used for failure diagnostics.
// Generation and validation failures are logged at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultExpiration overrides the lifetime substituted for a zero duration.
func WithDefaultExpiration(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.defaultExpiration = d
		}
	}
}

// WithTokenID stamps every generated token with a random UUID jti claim.
func WithTokenID() Option {
	return func(s *Service) {
		s.tokenID = uuid.NewString
	}
}
