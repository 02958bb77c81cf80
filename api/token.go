package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/wanderly-app/wanderly-api/schema"
	"github.com/wanderly-app/wanderly-api/store"
)

const tokenIssuer = "wanderly-api"

type tokenClaims struct {
	Role schema.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens. The subject is the
// account id.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (t *TokenIssuer) Issue(a schema.Account) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: a.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   a.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the signature and expiry and returns the caller it names.
func (t *TokenIssuer) Verify(token string) (schema.Principal, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tk *jwt.Token) (interface{}, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", tk.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return schema.Principal{}, fmt.Errorf("%v: %w", err, store.ErrUnauthorized)
	}
	if !parsed.Valid || claims.Subject == "" {
		return schema.Principal{}, fmt.Errorf("invalid token: %w", store.ErrUnauthorized)
	}

	return schema.Principal{ID: claims.Subject, Role: claims.Role}, nil
}
