package ports

import (
	"context"
	"time"

	"github.com/stvol/waitline/internal/domain"
)

type OfferRepo interface {
	// PromoteNext stamps the lowest-position eligible waitlist entry with the
	// given claim token and expiry, all under the session row lock. Lapsed
	// pending offers are expired in the same transaction so they become
	// eligible again. Returns domain.ErrNoEligibleEntries when the waitlist
	// holds nobody to offer to, or when pending offers already consume every
	// free spot, and domain.ErrSessionNotBookable when the locked session no
	// longer accepts signups.
	PromoteNext(ctx context.Context, sessionID, token string, expiresAt time.Time) (*domain.Signup, error)
	// ClaimByToken atomically converts a pending, unexpired offer into a
	// confirmed signup, re-checking the capacity invariant. Expiry is decided
	// by timestamp comparison, not sweep state. Returns domain.ErrOfferInvalid
	// for unknown or consumed tokens and domain.ErrOfferExpired for lapsed
	// offers or a lost capacity race; in the expired case the stale entry is
	// returned alongside the error so its slot can be re-offered.
	ClaimByToken(ctx context.Context, token string) (*domain.Signup, error)
	// ExpireLapsed marks lapsed pending offers of one session as expired and
	// returns how many it reclaimed.
	ExpireLapsed(ctx context.Context, sessionID string) (int, error)
	// ExpireLapsedAll sweeps every session, returning reclaimed counts keyed
	// by session id.
	ExpireLapsedAll(ctx context.Context) (map[string]int, error)
}
