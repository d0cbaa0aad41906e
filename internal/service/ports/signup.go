package ports

import (
	"context"

	"github.com/stvol/waitline/internal/domain"
)

type SignupRepo interface {
	// Snapshot is a plain (non-locking) availability read.
	Snapshot(ctx context.Context, sessionID string) (domain.CapacitySnapshot, error)
	// InsertConfirmed re-derives availability under the session row lock and
	// inserts a confirmed signup. Returns domain.ErrNoAvailableSpots when a
	// concurrent admission took the last spot, and
	// domain.ErrSessionNotBookable when the locked session no longer accepts
	// signups.
	InsertConfirmed(ctx context.Context, s *domain.Signup) error
	// Enqueue appends a waitlist entry at the next position under the session
	// row lock. Returns domain.ErrSpotAvailable when the locked read shows
	// free capacity, so the caller can retry the confirmed path instead.
	Enqueue(ctx context.Context, s *domain.Signup) (int, error)
	MarkPaid(ctx context.Context, id, captureRef string) error
	// Transition moves an active signup into a terminal state and returns the
	// status it held before. Terminal rows yield domain.ErrAlreadyCancelled.
	Transition(ctx context.Context, id string, to domain.SignupStatus, markRefunded bool) (domain.SignupStatus, error)
	GetByID(ctx context.Context, id string) (*domain.Signup, error)
	ListActiveBySession(ctx context.Context, sessionID string) ([]*domain.Signup, error)
	ListWaitlist(ctx context.Context, sessionID string) ([]*domain.Signup, error)
}
