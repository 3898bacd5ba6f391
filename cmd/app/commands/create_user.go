package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	userDomain "github.com/allisson/echo/internal/user/domain"
	userDTO "github.com/allisson/echo/internal/user/http/dto"
	userUseCase "github.com/allisson/echo/internal/user/usecase"
)

// CreateUserOptions holds the create-user flag values.
type CreateUserOptions struct {
	Username  string
	Password  string
	AvatarURL string
	IsAdmin   bool
	Format    string
}

// RunCreateUser creates a user account. When no password is given it is read as
// the first line of io.Reader. The same validation rules as POST /users apply.
func RunCreateUser(
	ctx context.Context,
	uc userUseCase.UserUseCase,
	logger *slog.Logger,
	opts CreateUserOptions,
	io IOTuple,
) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}

	password := opts.Password
	if password == "" {
		var err error
		password, err = promptForPassword(io)
		if err != nil {
			return err
		}
	}

	req := userDTO.CreateUserRequest{
		Username: opts.Username,
		Password: password,
		IsAdmin:  opts.IsAdmin,
	}
	if opts.AvatarURL != "" {
		req.AvatarURL = &opts.AvatarURL
	}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	logger.Info("creating user",
		slog.String("username", req.Username),
		slog.Bool("is_admin", req.IsAdmin),
	)

	user, err := uc.Create(ctx, req.ToDomain())
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := outputUser(io, user, opts.Format); err != nil {
		return err
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)
	return nil
}

func promptForPassword(io IOTuple) (string, error) {
	if io.Reader == nil {
		return "", errors.New("password is required")
	}
	_, _ = fmt.Fprint(io.Writer, "Password: ")

	scanner := bufio.NewScanner(io.Reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return "", errors.New("password is required")
	}
	_, _ = fmt.Fprintln(io.Writer)
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

func outputUser(io IOTuple, user *userDomain.User, format string) error {
	if format == "json" {
		return writeJSON(io.Writer, map[string]any{
			"id":         user.ID.String(),
			"username":   user.Username,
			"avatar_url": user.AvatarURL,
			"is_admin":   user.IsAdmin,
			"created_at": user.CreatedAt.Format(time.RFC3339),
		})
	}

	_, _ = fmt.Fprintf(io.Writer, "User created successfully\n")
	_, _ = fmt.Fprintf(io.Writer, "ID:       %s\n", user.ID)
	_, _ = fmt.Fprintf(io.Writer, "Username: %s\n", user.Username)
	_, _ = fmt.Fprintf(io.Writer, "Admin:    %t\n", user.IsAdmin)
	return nil
}
