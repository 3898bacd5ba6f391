package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	authDomain "github.com/allisson/echo/internal/auth/domain"
)

// adminGate implements AdminGate on top of a fresh admin-flag lookup per call.
type adminGate struct {
	lookup AdminLookup
}

// RequireAdmin returns nil when subjectID is an admin and ErrAdminRequired otherwise.
// A missing user or a storage failure is reported as ErrAuthorizationLookup, not as a deny.
func (g *adminGate) RequireAdmin(ctx context.Context, subjectID uuid.UUID) error {
	isAdmin, err := g.lookup.IsAdmin(ctx, subjectID)
	if err != nil {
		return fmt.Errorf("%w: user %s: %v", authDomain.ErrAuthorizationLookup, subjectID, err)
	}

	if !isAdmin {
		return authDomain.ErrAdminRequired
	}

	return nil
}

// NewAdminGate creates an AdminGate backed by the given lookup.
func NewAdminGate(lookup AdminLookup) AdminGate {
	return &adminGate{lookup: lookup}
}
