package commands

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("unsupported-scheme", func(t *testing.T) {
		err := RunMigrations(logger, "mysql", "sqlite://catalog.db")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})

	t.Run("malformed-dsn", func(t *testing.T) {
		err := RunMigrations(logger, "postgres", "malformed-dsn")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to create migrate instance")
	})
}
