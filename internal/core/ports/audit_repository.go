package ports

import (
	"context"

	"github.com/animalprint/petstyle-console/internal/core/domain"
)

// AuthAuditRepository persists the sign-in activity trail.
type AuthAuditRepository interface {
	Record(ctx context.Context, event domain.AuthEvent) error
	// Recent returns the latest events, newest first.
	Recent(ctx context.Context, limit int64) ([]domain.AuthEvent, error)
}
