package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
)

// ErrInvalidToken is returned for every token rejection: malformed input,
// bad signature, expiry, or missing claims. Callers must not learn which.
var ErrInvalidToken = errors.New("invalid token")

// TokenAuthority issues and verifies HS256-signed bearer tokens. It is
// stateless; the secret and TTL are fixed at construction.
type TokenAuthority struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenAuthority(secret []byte, ttl time.Duration) *TokenAuthority {
	return &TokenAuthority{secret: secret, ttl: ttl}
}

// Issue creates a signed token for the user and returns it with its expiry.
// The subject claim carries the username.
func (a *TokenAuthority) Issue(userID int64, username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(a.ttl)
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Verify checks the token's signature before trusting anything inside it,
// then enforces expiry and the required claims. It returns the decoded
// claims, or ErrInvalidToken on any failure.
func (a *TokenAuthority) Verify(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
