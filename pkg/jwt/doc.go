// Package jwt issues and verifies compact HS256 JSON Web Tokens carrying
// arbitrary claims.
//
// The Service holds no keys. Every call receives the base64url encoded secret
// to sign or verify with, so provisioning and rotating secrets stays with the
// caller. A secret must decode to at least 32 bytes.
//
// # Usage
//
//	svc := jwt.New()
//
//	token, err := svc.Generate(secret, "alice", map[string]any{"role": "admin"}, time.Hour)
//	if err != nil {
//	    // *jwt.GenerationError: bad secret or claims that cannot be encoded
//	}
//
//	claims, err := svc.ExtractAllClaims(secret, token)
//	switch {
//	case errors.Is(err, jwt.ErrExpiredToken):
//	    // ask the user to sign in again
//	case errors.Is(err, jwt.ErrInvalidSignature), errors.Is(err, jwt.ErrMalformedToken):
//	    // reject
//	}
//
// A zero duration passed to Generate means DefaultExpiration (30 minutes).
// The issued token carries the caller claims plus sub, iat and exp; JSON
// numbers come back as float64.
//
// # Validation
//
// ExtractAllClaims checks, in order: segment structure and header, the
// algorithm (HS256 only), the signature, the payload encoding and finally
// exp. The signature is verified before the payload is decoded. Every failure
// is a *ValidationError whose Kind is one of KindMalformed,
// KindSignatureInvalid, KindExpired or KindInvalidKey. Expiry is checked in
// exactly one place; IsExpired reports the outcome of that same check.
//
// # HTTP
//
// Middleware extracts a token from a request (Bearer header by default;
// cookie, query and custom header extractors are provided), validates it and
// stores the token and claims in the request context. GetToken, GetClaims and
// GetClaimsAs read them back. SubjectExtractor plugs the subject into
// pkg/logger.
package jwt
