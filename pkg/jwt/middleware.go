package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// TokenExtractorFunc defines a function that extracts a token from an HTTP request.
type TokenExtractorFunc func(r *http.Request) (string, error)

// SkipFunc defines a function that determines whether to skip token validation for a request.
type SkipFunc func(r *http.Request) bool

// ErrorHandlerFunc writes the response for a rejected request.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// MiddlewareConfig configures token middleware behavior.
type MiddlewareConfig struct {
	Service      *Service           // token service used for validation
	Secret       string             // base64url secret the tokens were signed with
	Extractor    TokenExtractorFunc // defaults to BearerTokenExtractor
	Skip         SkipFunc           // optional request filter to bypass validation
	ErrorHandler ErrorHandlerFunc   // defaults to DefaultErrorHandler
}

// Middleware validates Bearer tokens with svc and secret and stores the
// token and its claims in the request context.
func Middleware(svc *Service, secret string) func(next http.Handler) http.Handler {
	return MiddlewareWithConfig(MiddlewareConfig{
		Service: svc,
		Secret:  secret,
	})
}

// MiddlewareWithConfig creates token middleware with custom configuration.
func MiddlewareWithConfig(config MiddlewareConfig) func(next http.Handler) http.Handler {
	if config.Service == nil {
		config.Service = New()
	}
	if config.Extractor == nil {
		config.Extractor = BearerTokenExtractor
	}
	if config.ErrorHandler == nil {
		config.ErrorHandler = DefaultErrorHandler
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Skip != nil && config.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := config.Extractor(r)
			if err != nil {
				config.ErrorHandler(w, r, err)
				return
			}

			claims, err := config.Service.ExtractAllClaims(config.Secret, token)
			if err != nil {
				config.ErrorHandler(w, r, err)
				return
			}

			ctx := SetToken(r.Context(), token)
			ctx = SetClaims(ctx, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DefaultErrorHandler answers 401 with an RFC 6750 challenge. Requests without
// credentials get a bare Bearer challenge; otherwise the error description
// tells clients whether to re-authenticate (expired) or give up.
// A bad server-side secret is reported as 500.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	kind, ok := KindOf(err)
	if ok && kind == KindInvalidKey {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if errors.Is(err, ErrMissingToken) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		http.Error(w, "token is missing", http.StatusUnauthorized)
		return
	}

	description := "token is invalid"
	switch {
	case errors.Is(err, ErrExpiredToken):
		description = "token is expired"
	case errors.Is(err, ErrInvalidSignature):
		description = "token signature is invalid"
	case errors.Is(err, ErrMalformedToken):
		description = "token is malformed"
	}

	w.Header().Set("WWW-Authenticate",
		fmt.Sprintf(`Bearer error="invalid_token", error_description=%q`, description))
	http.Error(w, description, http.StatusUnauthorized)
}

// BearerTokenExtractor extracts tokens from "Authorization: Bearer <token>" headers.
func BearerTokenExtractor(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

// CookieTokenExtractor creates a token extractor for cookie-based transport.
func CookieTokenExtractor(cookieName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return "", ErrMissingToken
		}
		return cookie.Value, nil
	}
}

// QueryTokenExtractor creates a token extractor for URL query parameters.
// Generally discouraged due to token exposure in logs and referrer headers.
func QueryTokenExtractor(paramName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.URL.Query().Get(paramName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}

// HeaderTokenExtractor creates a token extractor for custom headers.
func HeaderTokenExtractor(headerName string) TokenExtractorFunc {
	return func(r *http.Request) (string, error) {
		token := r.Header.Get(headerName)
		if token == "" {
			return "", ErrMissingToken
		}
		return token, nil
	}
}
