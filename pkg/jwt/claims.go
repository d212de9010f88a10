package jwt

import (
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// Registered claim names stamped by Generate.
const (
	ClaimSubject   = "sub"
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
	ClaimID        = "jti"
)

// Claims is the decoded payload of a token: caller claims plus the
// registered fields. JSON numbers decode as float64.
type Claims map[string]any

// Subject returns the sub claim or an empty string.
func (c Claims) Subject() string {
	sub, _ := gojwt.MapClaims(c).GetSubject()
	return sub
}

// ID returns the jti claim or an empty string.
func (c Claims) ID() string {
	id, _ := c[ClaimID].(string)
	return id
}

// IssuedAt returns the iat claim in UTC, or the zero time when it is absent or not numeric.
func (c Claims) IssuedAt() time.Time {
	return numericDate(gojwt.MapClaims(c).GetIssuedAt())
}

// ExpiresAt returns the exp claim in UTC, or the zero time when it is absent or not numeric.
func (c Claims) ExpiresAt() time.Time {
	return numericDate(gojwt.MapClaims(c).GetExpirationTime())
}

// expiration is the strict form of ExpiresAt used during validation.
func (c Claims) expiration() (time.Time, error) {
	exp, err := gojwt.MapClaims(c).GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrInvalidClaims
	}
	return exp.UTC(), nil
}

func numericDate(d *gojwt.NumericDate, err error) time.Time {
	if err != nil || d == nil {
		return time.Time{}
	}
	return d.UTC()
}
