package ports

import (
	"context"

	"github.com/stvol/waitline/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error)
	// UpdateCapacity sets a new capacity and returns the previous one.
	UpdateCapacity(ctx context.Context, id string, capacity int) (int, error)
	// MarkCancelled flips the session to cancelled. The bool reports whether
	// it already was, so retries stay idempotent.
	MarkCancelled(ctx context.Context, id string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error
}
