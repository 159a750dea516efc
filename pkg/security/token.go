package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long issued tokens stay valid. Expiry is the only
// cutoff, there is no revocation list
const TokenTTL = time.Hour

var (
	ErrTokenInvalid = errors.New("token is invalid")
	ErrTokenExpired = errors.New("token has expired")
)

// Signer issues and verifies the HS256 bearer tokens used for
// sessions. The key is loaded once at startup and injected, so a
// missing key fails the whole process instead of silently degrading
// to a forgeable default.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("empty signing key")
	}

	return &Signer{secret: []byte(secret)}, nil
}

// Issue mints a token carrying the user's id and email
func (s *Signer) Issue(userID, email string) (string, error) {
	now := time.Now()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(TokenTTL).Unix(),
	})

	return t.SignedString(s.secret)
}

// Verify checks the signature and expiry of a token and returns the
// embedded identity. Expired tokens are reported as ErrTokenExpired
// so callers can tell them apart from garbage
func (s *Signer) Verify(tokenStr string) (userID, email string, err error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpired
		}

		return "", "", ErrTokenInvalid
	}

	if !token.Valid {
		return "", "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrTokenInvalid
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", ErrTokenInvalid
	}

	email, _ = claims["email"].(string)

	return userID, email, nil
}
