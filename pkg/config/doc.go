// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tag parsing). Each configuration type
// is parsed once per process and cached; ResetCache clears the cache in tests.
//
//	type Config struct {
//	    Enabled bool          `env:"JWT_ABSTRACT_ENABLED" envDefault:"false"`
//	    Secret  string        `env:"JWT_ABSTRACT_SECRET"`
//	    TTL     time.Duration `env:"JWT_ABSTRACT_DEFAULT_EXPIRATION" envDefault:"30m"`
//	}
//
//	if err := config.LoadEnv("./config/.env"); err != nil {
//	    log.Fatalf("loading env: %v", err)
//	}
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Parsing failures wrap ErrParsingConfig and the parser's own error, so both
// errors.Is and the message identify the offending variable.
package config
