// Package autoconfig builds the token service from JWT_ABSTRACT_* environment
// variables for hosts that want the feature switched on by configuration.
//
// The service is only created when JWT_ABSTRACT_ENABLED is true and
// JWT_ABSTRACT_SECRET is set. The secret is validated here but not stored in
// the service; callers keep passing Config.Secret on every call.
package autoconfig

import (
	"errors"
	"log/slog"
	"time"

	"github.com/sandeepprabhakula/jwtabstract/pkg/config"
	"github.com/sandeepprabhakula/jwtabstract/pkg/jwt"
	"github.com/sandeepprabhakula/jwtabstract/pkg/logger"
)

var (
	ErrDisabled      = errors.New("autoconfig: jwt abstract is disabled")
	ErrMissingSecret = errors.New("autoconfig: jwt abstract secret is not set")
)

type Config struct {
	Enabled           bool          `env:"JWT_ABSTRACT_ENABLED" envDefault:"false"`
	Secret            string        `env:"JWT_ABSTRACT_SECRET"`
	DefaultExpiration time.Duration `env:"JWT_ABSTRACT_DEFAULT_EXPIRATION" envDefault:"30m"`
	TokenIDs          bool          `env:"JWT_ABSTRACT_TOKEN_IDS" envDefault:"false"`
}

// Load reads Config from the environment (and ./.env when present).
func Load() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// New returns a service configured by cfg, or ErrDisabled / ErrMissingSecret
// when the feature should not be wired. A secret that cannot be used for
// HS256 is reported with the jwt package's secret errors.
func New(cfg Config, log *slog.Logger) (*jwt.Service, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	log = log.With(logger.Component("jwt"))

	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}

	// fail at startup rather than on the first request
	probe := jwt.New()
	if _, err := probe.Generate(cfg.Secret, "autoconfig", nil, time.Second); err != nil {
		return nil, err
	}

	opts := []jwt.Option{
		jwt.WithLogger(log),
		jwt.WithDefaultExpiration(cfg.DefaultExpiration),
	}
	if cfg.TokenIDs {
		opts = append(opts, jwt.WithTokenID())
	}

	log.Info("jwt abstract autoconfiguration done",
		logger.Expiration(cfg.DefaultExpiration),
		slog.Bool("token_ids", cfg.TokenIDs),
	)
	return jwt.New(opts...), nil
}

// FromEnv combines Load and New.
func FromEnv(log *slog.Logger) (*jwt.Service, Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, Config{}, err
	}
	svc, err := New(cfg, log)
	if err != nil {
		return nil, cfg, err
	}
	return svc, cfg, nil
}
