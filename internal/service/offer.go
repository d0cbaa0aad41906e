package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// OfferService issues time-boxed claims to waitlist heads and converts
// successful claims into confirmed spots.
type OfferService struct {
	offerRepo   ports.OfferRepo
	signupRepo  ports.SignupRepo
	sessionRepo ports.SessionRepo
	notifier    ports.Notifier
	offerTTL    time.Duration
	logger      logger.Logger
}

func NewOfferService(
	offerRepo ports.OfferRepo,
	signupRepo ports.SignupRepo,
	sessionRepo ports.SessionRepo,
	notifier ports.Notifier,
	offerTTL time.Duration,
	logger logger.Logger,
) *OfferService {
	return &OfferService{
		offerRepo:   offerRepo,
		signupRepo:  signupRepo,
		sessionRepo: sessionRepo,
		notifier:    notifier,
		offerTTL:    offerTTL,
		logger:      logger,
	}
}

func (s *OfferService) PromoteNext(ctx context.Context, sessionID string) (*domain.Promotion, error) {
	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(s.offerTTL)

	promoted, err := s.offerRepo.PromoteNext(ctx, sessionID, token, expiresAt)
	if err != nil {
		if errors.Is(err, domain.ErrNoEligibleEntries) {
			return nil, err
		}
		return nil, fmt.Errorf("promote next: %w", err)
	}

	s.logger.Info("offer extended",
		logger.String("signup_id", promoted.ID),
		logger.String("session_id", sessionID),
		logger.String("expires_at", expiresAt.Format(time.RFC3339)),
	)

	// The offer stands even if the email fails; the claim token can still be
	// discovered through the waitlist listing.
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to get session for offer notification",
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
	} else {
		go s.notifier.NotifyOfferExtended(context.WithoutCancel(ctx), promoted, session)
	}

	return &domain.Promotion{
		SignupID:   promoted.ID,
		ClaimToken: token,
		ExpiresAt:  expiresAt,
	}, nil
}

// PromoteMany issues up to n offers, stopping early once nobody is left to
// offer to. Used when a capacity increase frees more than one spot.
func (s *OfferService) PromoteMany(ctx context.Context, sessionID string, n int) ([]domain.Promotion, error) {
	var res []domain.Promotion
	for i := 0; i < n; i++ {
		p, err := s.PromoteNext(ctx, sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrNoEligibleEntries) {
				break
			}
			return res, err
		}
		res = append(res, *p)
	}

	return res, nil
}

func (s *OfferService) Claim(ctx context.Context, token string) (*domain.Signup, error) {
	claimed, err := s.offerRepo.ClaimByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrOfferExpired) && claimed != nil {
			// The lapsed offer's slot goes to the next entry.
			if _, perr := s.PromoteNext(ctx, claimed.SessionID); perr != nil && !errors.Is(perr, domain.ErrNoEligibleEntries) {
				s.logger.Error("failed to re-offer after lapsed claim",
					logger.String("session_id", claimed.SessionID),
					logger.String("error", perr.Error()),
				)
			}
		}
		return nil, err
	}

	s.logger.Info("offer claimed",
		logger.String("signup_id", claimed.ID),
		logger.String("session_id", claimed.SessionID),
	)

	session, err := s.sessionRepo.GetByID(ctx, claimed.SessionID)
	if err != nil {
		s.logger.Error("failed to get session for claim notification",
			logger.String("session_id", claimed.SessionID),
			logger.String("error", err.Error()),
		)
		return claimed, nil
	}

	go s.notifier.NotifySignupConfirmed(context.WithoutCancel(ctx), claimed, session)

	return claimed, nil
}

// SweepSession reclaims lapsed offers for one session and re-offers the
// freed spots. Safe to call at any time.
func (s *OfferService) SweepSession(ctx context.Context, sessionID string) (domain.SweepResult, error) {
	count, err := s.offerRepo.ExpireLapsed(ctx, sessionID)
	if err != nil {
		return domain.SweepResult{}, fmt.Errorf("expire lapsed: %w", err)
	}

	if count > 0 {
		s.logger.Info("offers expired",
			logger.String("session_id", sessionID),
			logger.Int("count", count),
		)
		if _, err := s.PromoteMany(ctx, sessionID, count); err != nil {
			return domain.SweepResult{ExpiredCount: count}, fmt.Errorf("re-offer after sweep: %w", err)
		}
	}

	return domain.SweepResult{ExpiredCount: count}, nil
}

// SweepAll reclaims lapsed offers across every session and re-offers each
// freed spot. Invoked periodically by the scheduler.
func (s *OfferService) SweepAll(ctx context.Context) (int, error) {
	counts, err := s.offerRepo.ExpireLapsedAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire lapsed: %w", err)
	}

	total := 0
	for sessionID, count := range counts {
		total += count
		if _, err := s.PromoteMany(ctx, sessionID, count); err != nil {
			s.logger.Error("failed to re-offer after sweep",
				logger.String("session_id", sessionID),
				logger.String("error", err.Error()),
			)
		}
	}

	return total, nil
}
