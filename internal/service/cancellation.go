package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/service/ports"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/sync/errgroup"
)

// bulkCancelWorkers bounds the refund fan-out during a session-wide cancel.
const bulkCancelWorkers = 8

// CancellationService orchestrates single and session-wide cancellations.
// The failure-containment rule: a failed refund aborts the cancellation and
// the signup stays confirmed, so an operator can retry.
type CancellationService struct {
	signupRepo   ports.SignupRepo
	sessionRepo  ports.SessionRepo
	payments     ports.PaymentProcessor
	notifier     ports.Notifier
	promoter     ports.Promoter
	refundWindow time.Duration
	logger       logger.Logger
}

func NewCancellationService(
	signupRepo ports.SignupRepo,
	sessionRepo ports.SessionRepo,
	payments ports.PaymentProcessor,
	notifier ports.Notifier,
	promoter ports.Promoter,
	refundWindow time.Duration,
	logger logger.Logger,
) *CancellationService {
	return &CancellationService{
		signupRepo:   signupRepo,
		sessionRepo:  sessionRepo,
		payments:     payments,
		notifier:     notifier,
		promoter:     promoter,
		refundWindow: refundWindow,
		logger:       logger,
	}
}

func (s *CancellationService) CancelSignup(ctx context.Context, signupID string, actor domain.Actor, wantRefund bool) (*domain.CancellationResult, error) {
	signup, err := s.signupRepo.GetByID(ctx, signupID)
	if err != nil {
		return nil, fmt.Errorf("get signup: %w", err)
	}

	// Idempotent retries of a cancel are a success-as-noop, not an error.
	if signup.Status.Terminal() {
		return &domain.CancellationResult{Signup: signup, AlreadyCancelled: true}, nil
	}

	if !actor.Operator {
		if err := authorizeActor(signup, actor); err != nil {
			return nil, err
		}
	}

	session, err := s.sessionRepo.GetByID(ctx, signup.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	refund := false
	if signup.PaymentStatus == domain.PaymentStatusPaid && signup.PaymentRef != nil {
		if actor.Operator {
			refund = wantRefund
		} else {
			refund = time.Until(session.StartsAt) >= s.refundWindow
		}
	}

	if refund {
		if err := s.payments.Refund(ctx, *signup.PaymentRef); err != nil {
			// Do not transition: a participant must never end up
			// cancelled-but-unrefunded.
			s.logger.Error("refund failed, cancellation aborted",
				logger.String("signup_id", signup.ID),
				logger.String("payment_ref", *signup.PaymentRef),
				logger.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
		}
	}

	prev, err := s.signupRepo.Transition(ctx, signupID, domain.SignupStatusCancelled, refund)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyCancelled) {
			return &domain.CancellationResult{Signup: signup, AlreadyCancelled: true}, nil
		}
		return nil, fmt.Errorf("transition signup: %w", err)
	}

	signup.Status = domain.SignupStatusCancelled
	if refund {
		signup.PaymentStatus = domain.PaymentStatusRefunded
	}

	s.logger.Info("signup cancelled",
		logger.String("signup_id", signup.ID),
		logger.String("session_id", signup.SessionID),
		logger.Any("refunded", refund),
	)

	go s.notifier.NotifyCancelled(context.WithoutCancel(ctx), signup, session, refund)

	// A cancelled confirmed signup frees a spot for the waitlist head.
	if prev == domain.SignupStatusConfirmed {
		if _, err := s.promoter.PromoteNext(ctx, signup.SessionID); err != nil && !errors.Is(err, domain.ErrNoEligibleEntries) {
			s.logger.Error("promotion after cancellation failed",
				logger.String("session_id", signup.SessionID),
				logger.String("error", err.Error()),
			)
		}
	}

	return &domain.CancellationResult{Signup: signup, Refunded: refund}, nil
}

// authorizeActor requires a possession proof for guest-initiated changes:
// either the actor owns the signup's account, or holds its manage token.
func authorizeActor(signup *domain.Signup, actor domain.Actor) error {
	if actor.AccountID != nil && signup.AccountID != nil && *actor.AccountID == *signup.AccountID {
		return nil
	}
	if actor.ManageToken != "" && actor.ManageToken == signup.ManageToken {
		return nil
	}
	return domain.ErrForbidden
}

// CancelSession flips the session to cancelled first, blocking new
// admissions, then fans out over the remaining active signups. Unlike the
// single path, individual refund failures are recorded but do not block the
// rest: the session is terminally cancelled and there is no "stay confirmed"
// fallback state.
func (s *CancellationService) CancelSession(ctx context.Context, sessionID string) (*domain.BulkCancellationResult, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	already, err := s.sessionRepo.MarkCancelled(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("mark session cancelled: %w", err)
	}
	if already {
		s.logger.Info("session already cancelled, reprocessing remaining signups",
			logger.String("session_id", sessionID),
		)
	}
	session.Status = domain.SessionStatusCancelled

	signups, err := s.signupRepo.ListActiveBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list signups: %w", err)
	}

	var processed, failed, notified atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkCancelWorkers)
	for _, sg := range signups {
		g.Go(func() error {
			refunded := false
			if sg.PaymentStatus == domain.PaymentStatusPaid && sg.PaymentRef != nil {
				if rerr := s.payments.Refund(gctx, *sg.PaymentRef); rerr != nil {
					failed.Add(1)
					s.logger.Error("bulk refund failed",
						logger.String("signup_id", sg.ID),
						logger.String("payment_ref", *sg.PaymentRef),
						logger.String("error", rerr.Error()),
					)
				} else {
					refunded = true
					processed.Add(1)
				}
			}

			if _, terr := s.signupRepo.Transition(gctx, sg.ID, domain.SignupStatusSessionCancelled, refunded); terr != nil && !errors.Is(terr, domain.ErrAlreadyCancelled) {
				s.logger.Error("failed to mark signup session_cancelled",
					logger.String("signup_id", sg.ID),
					logger.String("error", terr.Error()),
				)
				return nil
			}

			if s.notifier.NotifySessionCancelled(gctx, sg, session, refunded) {
				notified.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	res := &domain.BulkCancellationResult{
		RefundsProcessed:  int(processed.Load()),
		RefundsFailed:     int(failed.Load()),
		NotificationsSent: int(notified.Load()),
	}

	s.logger.Info("session cancelled",
		logger.String("session_id", sessionID),
		logger.Int("signups", len(signups)),
		logger.Int("refunds_processed", res.RefundsProcessed),
		logger.Int("refunds_failed", res.RefundsFailed),
	)

	return res, nil
}
