package ports

import (
	"context"

	"github.com/stvol/waitline/internal/domain"
)

// Notifier delivers best-effort emails. Implementations never propagate
// failures into the caller's transaction; the bool only reports whether a
// message went out, for accounting.
type Notifier interface {
	NotifySignupConfirmed(ctx context.Context, s *domain.Signup, session *domain.Session) bool
	NotifyWaitlisted(ctx context.Context, s *domain.Signup, session *domain.Session) bool
	NotifyOfferExtended(ctx context.Context, s *domain.Signup, session *domain.Session) bool
	NotifyBookingFailed(ctx context.Context, p domain.Participant, session *domain.Session) bool
	NotifyCancelled(ctx context.Context, s *domain.Signup, session *domain.Session, refunded bool) bool
	NotifySessionCancelled(ctx context.Context, s *domain.Signup, session *domain.Session, refunded bool) bool
}
