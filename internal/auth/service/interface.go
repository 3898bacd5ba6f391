// Package service provides technical services for authentication operations.
//
// This package implements bearer token signing and verification, password hashing,
// and KMS access for the signing secret.
package service

import (
	"context"
	"time"

	authDomain "github.com/allisson/echo/internal/auth/domain"
)

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue signs a new token for the subject that expires at expiresAt.
	Issue(subjectID string, expiresAt time.Time) (string, error)

	// Verify checks the token signature, encoding and expiry. It never returns an
	// error: any failure, including an empty token, yields (nil, false).
	Verify(token string) (*authDomain.Claims, bool)
}

// PasswordService hashes and compares user passwords.
type PasswordService interface {
	// Hash returns an encoded Argon2id hash of the password.
	Hash(password string) (string, error)

	// Compare reports whether the password matches the encoded hash.
	// Argon2id and legacy bcrypt hashes are both accepted.
	Compare(password, encodedHash string) bool
}

// KMSKeeper is the subset of *secrets.Keeper used to unwrap configuration secrets.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KMSService opens keepers for gocloud.dev/secrets key URIs.
type KMSService interface {
	// OpenKeeper opens a keeper for the key URI.
	// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}
