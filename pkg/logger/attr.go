package logger

import "log/slog"

// Error returns an empty attr for a nil error, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Subject is the identity a token is issued for.
func Subject(sub string) slog.Attr {
	if sub == "" {
		return slog.Attr{}
	}
	return slog.String("subject", sub)
}

// TokenID is the jti of an issued or validated token.
func TokenID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("token_id", id)
}

// Reason carries the validation failure kind.
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}

func Expiration(d any) slog.Attr {
	return slog.Any("expiration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
