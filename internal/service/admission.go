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

// admitRetries bounds how often a single booking attempt may bounce between
// the confirmed and waitlist paths when concurrent admissions keep flipping
// availability underneath it.
const admitRetries = 3

// AdmissionService decides whether a booking attempt is confirmed or queued.
// Payment follows authorize-now/capture-later: the hold is captured only
// after the confirmed signup is durable, and voided when the spot is lost.
type AdmissionService struct {
	signupRepo  ports.SignupRepo
	sessionRepo ports.SessionRepo
	payments    ports.PaymentProcessor
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewAdmissionService(
	signupRepo ports.SignupRepo,
	sessionRepo ports.SessionRepo,
	payments ports.PaymentProcessor,
	notifier ports.Notifier,
	logger logger.Logger,
) *AdmissionService {
	return &AdmissionService{
		signupRepo:  signupRepo,
		sessionRepo: sessionRepo,
		payments:    payments,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *AdmissionService) TryAdmit(ctx context.Context, sessionID string, p domain.Participant, amountCents int64, paymentMethod string) (*domain.AdmissionResult, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.Bookable() {
		return nil, domain.ErrSessionNotBookable
	}

	if amountCents == 0 {
		amountCents = session.PriceCents
	}

	for attempt := 0; attempt < admitRetries; attempt++ {
		snap, err := s.signupRepo.Snapshot(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}

		if snap.Available() > 0 {
			res, err := s.admitConfirmed(ctx, session, p, amountCents, paymentMethod)
			if errors.Is(err, domain.ErrNoAvailableSpots) {
				// Lost the race; the hold was voided. Fall through to queue.
				continue
			}
			return res, err
		}

		res, err := s.enqueue(ctx, session, p, amountCents)
		if errors.Is(err, domain.ErrSpotAvailable) {
			// A spot freed between the snapshot and the locked append;
			// retry the paid path instead of burying the spot.
			continue
		}
		return res, err
	}

	return nil, fmt.Errorf("admission kept racing: %w", domain.ErrNoAvailableSpots)
}

func (s *AdmissionService) admitConfirmed(ctx context.Context, session *domain.Session, p domain.Participant, amountCents int64, paymentMethod string) (*domain.AdmissionResult, error) {
	var holdRef *string
	if amountCents > 0 {
		ref, err := s.payments.Authorize(ctx, amountCents, session.Currency, paymentMethod)
		if err != nil {
			// Nothing has been written; the attempt simply fails.
			return nil, fmt.Errorf("%w: %v", domain.ErrPaymentAuthorization, err)
		}
		holdRef = &ref
	}

	now := time.Now().UTC()
	signup := &domain.Signup{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		AccountID:     p.AccountID,
		Status:        domain.SignupStatusConfirmed,
		PaymentStatus: domain.PaymentStatusUnpaid,
		PaymentRef:    holdRef,
		AmountCents:   amountCents,
		OfferStatus:   domain.OfferStatusNone,
		ManageToken:   uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.signupRepo.InsertConfirmed(ctx, signup); err != nil {
		// The insert re-checks capacity and session state under the row lock;
		// any rejection means the hold is released, never captured.
		if holdRef != nil {
			if verr := s.payments.Void(ctx, *holdRef); verr != nil {
				s.logger.Error("failed to void hold after rejected admission",
					logger.String("hold_ref", *holdRef),
					logger.String("error", verr.Error()),
				)
			}
		}
		if errors.Is(err, domain.ErrNoAvailableSpots) {
			// The participant lost the race and learns they were not charged.
			go s.notifier.NotifyBookingFailed(context.WithoutCancel(ctx), p, session)
		}
		return nil, err
	}

	if holdRef != nil {
		captureRef, err := s.payments.Capture(ctx, *holdRef)
		if err != nil {
			// The spot stays confirmed; money operations are retried by an
			// operator, never silently by the system.
			s.logger.Error("capture failed after confirmation",
				logger.String("signup_id", signup.ID),
				logger.String("hold_ref", *holdRef),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("capture hold: %w", err)
		}
		if err := s.signupRepo.MarkPaid(ctx, signup.ID, captureRef); err != nil {
			return nil, fmt.Errorf("mark paid: %w", err)
		}
		signup.PaymentStatus = domain.PaymentStatusPaid
		signup.PaymentRef = &captureRef
	}

	s.logger.Info("signup confirmed",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", session.ID),
	)

	go s.notifier.NotifySignupConfirmed(context.WithoutCancel(ctx), signup, session)

	return &domain.AdmissionResult{Signup: signup, Admitted: true}, nil
}

func (s *AdmissionService) enqueue(ctx context.Context, session *domain.Session, p domain.Participant, amountCents int64) (*domain.AdmissionResult, error) {
	now := time.Now().UTC()
	signup := &domain.Signup{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		Name:          p.Name,
		Email:         p.Email,
		Phone:         p.Phone,
		AccountID:     p.AccountID,
		Status:        domain.SignupStatusWaitlist,
		PaymentStatus: domain.PaymentStatusUnpaid,
		AmountCents:   amountCents,
		OfferStatus:   domain.OfferStatusNone,
		ManageToken:   uuid.NewString(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	position, err := s.signupRepo.Enqueue(ctx, signup)
	if err != nil {
		if errors.Is(err, domain.ErrSpotAvailable) {
			return nil, err
		}
		return nil, fmt.Errorf("enqueue signup: %w", err)
	}

	s.logger.Info("signup waitlisted",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", session.ID),
		logger.Int("position", position),
	)

	go s.notifier.NotifyWaitlisted(context.WithoutCancel(ctx), signup, session)

	return &domain.AdmissionResult{Signup: signup, Admitted: false, Position: position}, nil
}
