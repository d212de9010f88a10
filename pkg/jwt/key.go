package jwt

import (
	"fmt"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// MinSecretBytes is the smallest decoded secret accepted for HS256.
const MinSecretBytes = 32

// secretCodec decodes base64url secrets with or without trailing padding.
var secretCodec = gojwt.NewParser(gojwt.WithPaddingAllowed())

// signingKey decodes a caller secret into raw HMAC key bytes.
// The returned error is shared by both paths: Generate returns it as is and
// the extract operations wrap it in a KindInvalidKey ValidationError.
func signingKey(secret string) ([]byte, *GenerationError) {
	if secret == "" {
		return nil, &GenerationError{Err: ErrMissingSecret}
	}

	key, err := secretCodec.DecodeSegment(secret)
	if err != nil {
		return nil, &GenerationError{Err: ErrInvalidSecret, Cause: err}
	}

	if len(key) < MinSecretBytes {
		return nil, &GenerationError{
			Err:   ErrWeakSecret,
			Cause: fmt.Errorf("decoded key is %d bytes", len(key)),
		}
	}

	return key, nil
}
