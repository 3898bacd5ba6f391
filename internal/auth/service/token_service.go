package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
	apperrors "github.com/allisson/echo/internal/errors"
)

// tokenService implements TokenService with HS256 JSON Web Tokens.
type tokenService struct {
	secret []byte
	now    func() time.Time
}

// Issue signs a token carrying sub, exp, iat and a random jti, so two tokens issued
// for the same user within the same second are still distinct.
func (t *tokenService) Issue(subjectID string, expiresAt time.Time) (string, error) {
	if subjectID == "" {
		return "", apperrors.New("subject is required")
	}

	jti, err := uuid.NewRandom()
	if err != nil {
		return "", apperrors.Wrap(err, "failed to generate token id")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subjectID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(t.now()),
		ID:        jti.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// Verify parses the token with HS256 only and requires both sub and exp.
func (t *tokenService) Verify(token string) (*authDomain.Claims, bool) {
	if token == "" {
		return nil, false
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid {
		return nil, false
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, false
	}

	return &authDomain.Claims{
		SubjectID: claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}

// ErrEmptySigningSecret is returned when no signing secret is configured.
var ErrEmptySigningSecret = apperrors.New("token signing secret must not be empty")

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret []byte) (TokenService, error) {
	return newTokenService(secret, time.Now)
}

func newTokenService(secret []byte, now func() time.Time) (*tokenService, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySigningSecret
	}
	return &tokenService{secret: secret, now: now}, nil
}
