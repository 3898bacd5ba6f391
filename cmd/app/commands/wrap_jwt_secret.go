package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	authService "github.com/allisson/echo/internal/auth/service"
)

// generatedSecretSize is the byte length of secrets generated when none is given.
const generatedSecretSize = 32

// RunWrapJWTSecret encrypts a JWT signing secret with the KMS key and prints the
// ciphertext to store in JWT_SECRET alongside JWT_SECRET_KMS_KEY_URI. A random
// secret is generated when secret is empty.
func RunWrapJWTSecret(
	ctx context.Context,
	kms authService.KMSService,
	logger *slog.Logger,
	w io.Writer,
	keyURI string,
	secret string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	plaintext := []byte(secret)
	if secret == "" {
		plaintext = make([]byte, generatedSecretSize)
		if _, err := rand.Read(plaintext); err != nil {
			return fmt.Errorf("failed to generate secret: %w", err)
		}
		plaintext = []byte(base64.RawURLEncoding.EncodeToString(plaintext))
	}

	logger.Info("wrapping jwt secret", slog.Bool("generated", secret == ""))

	wrapped, err := authService.WrapSigningSecret(ctx, kms, plaintext, keyURI)
	if err != nil {
		return fmt.Errorf("failed to wrap jwt secret: %w", err)
	}

	if format == "json" {
		return writeJSON(w, map[string]any{
			"jwt_secret":             wrapped,
			"jwt_secret_kms_key_uri": keyURI,
		})
	}

	_, _ = fmt.Fprintf(w, "JWT_SECRET=%s\n", wrapped)
	_, _ = fmt.Fprintf(w, "JWT_SECRET_KMS_KEY_URI=%s\n", keyURI)
	return nil
}
