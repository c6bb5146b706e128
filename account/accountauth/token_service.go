package accountauth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skilllens/skilllens/account"
	"github.com/skilllens/skilllens/pkg/errx"
	"github.com/skilllens/skilllens/pkg/kernel"
)

// TokenService issues and validates HS256 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenService creates a token service with the given signing secret.
func NewTokenService(secret string, ttl time.Duration, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// Claims carried inside an access token.
type Claims struct {
	UserID kernel.UserID
	Email  kernel.Email
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the user.
func (s *TokenService) GenerateToken(userID kernel.UserID, email kernel.Email) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (s *TokenService) ValidateToken(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, account.ErrTokenInvalid()
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok {
		return nil, account.ErrTokenInvalid()
	}

	return &Claims{
		UserID: kernel.UserID(claims.Subject),
		Email:  kernel.Email(claims.Email),
	}, nil
}
