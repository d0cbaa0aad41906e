package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultCurrency = "eur"

type SessionService struct {
	repo       ports.SessionRepo
	signupRepo ports.SignupRepo
	promoter   ports.Promoter
	logger     logger.Logger
}

func NewSessionService(repo ports.SessionRepo, signupRepo ports.SignupRepo, promoter ports.Promoter, logger logger.Logger) *SessionService {
	return &SessionService{
		repo:       repo,
		signupRepo: signupRepo,
		promoter:   promoter,
		logger:     logger,
	}
}

func (s *SessionService) Create(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}
	if input.PriceCents < 0 {
		return nil, fmt.Errorf("%w: price_cents must not be negative", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	session := &domain.Session{
		ID:             uuid.NewString(),
		Title:          input.Title,
		Description:    input.Description,
		StartsAt:       input.StartsAt,
		Capacity:       input.Capacity,
		PriceCents:     input.PriceCents,
		Currency:       currency,
		OrganizerEmail: input.OrganizerEmail,
		Status:         domain.SessionStatusUpcoming,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

func (s *SessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.repo.List(ctx)
}

func (s *SessionService) GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	signups, err := s.signupRepo.ListActiveBySession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}

	details.Signups = make([]domain.Signup, len(signups))
	for i, sg := range signups {
		details.Signups[i] = *sg
	}

	return details, nil
}

func (s *SessionService) Waitlist(ctx context.Context, id string) ([]*domain.Signup, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.signupRepo.ListWaitlist(ctx, id)
}

// UpdateCapacity resizes the session. Growth frees spots, which are offered
// to the waitlist immediately; shrinking never evicts confirmed signups.
func (s *SessionService) UpdateCapacity(ctx context.Context, id string, capacity int) ([]domain.Promotion, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}

	previous, err := s.repo.UpdateCapacity(ctx, id, capacity)
	if err != nil {
		return nil, fmt.Errorf("update capacity: %w", err)
	}

	s.logger.Info("capacity updated",
		logger.String("session_id", id),
		logger.Int("previous", previous),
		logger.Int("capacity", capacity),
	)

	freed := 0
	switch {
	case capacity == 0 && previous != 0:
		// Lifting the cap entirely frees a spot for every waitlisted entry.
		entries, err := s.signupRepo.ListWaitlist(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("list waitlist: %w", err)
		}
		freed = len(entries)
	case previous > 0 && capacity > previous:
		freed = capacity - previous
	}

	if freed == 0 {
		return nil, nil
	}

	promotions, err := s.promoter.PromoteMany(ctx, id, freed)
	if err != nil {
		return nil, fmt.Errorf("promote after capacity increase: %w", err)
	}

	return promotions, nil
}

// statusRank orders the session lifecycle. Status updates only ever move
// forward through it; cancellation is a separate operation.
var statusRank = map[domain.SessionStatus]int{
	domain.SessionStatusDraft:     0,
	domain.SessionStatusUpcoming:  1,
	domain.SessionStatusActive:    2,
	domain.SessionStatusCompleted: 3,
}

func (s *SessionService) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	rank, ok := statusRank[status]
	if !ok {
		return fmt.Errorf("%w: status %q cannot be set directly", domain.ErrValidation, status)
	}

	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if session.Status == domain.SessionStatusCancelled {
		return domain.ErrAlreadyCancelled
	}
	if rank <= statusRank[session.Status] {
		return fmt.Errorf("%w: cannot move session from %q to %q", domain.ErrValidation, session.Status, status)
	}

	return s.repo.UpdateStatus(ctx, id, status)
}
