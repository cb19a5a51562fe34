package authenticator

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens expire five hours after issue.
const TokenTTL = 5 * time.Hour

var ErrInvalidToken = errors.New("token is not valid")

// Claims carries only the user identifier. No role or scope claims: every
// authenticated user has the same access.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}
}

// Issue signs a token embedding the user identifier.
func (a *Authenticator) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
		},
		UserID: userID,
	})

	return token.SignedString(a.secret)
}

// Verify checks signature and expiry and returns the embedded user
// identifier.
func (a *Authenticator) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
