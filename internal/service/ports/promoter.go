package ports

import (
	"context"

	"github.com/stvol/waitline/internal/domain"
)

// Promoter is the offer-issuing side consumed by the cancellation and
// session services when a spot frees up.
type Promoter interface {
	PromoteNext(ctx context.Context, sessionID string) (*domain.Promotion, error)
	PromoteMany(ctx context.Context, sessionID string, n int) ([]domain.Promotion, error)
}
