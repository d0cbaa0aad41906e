package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/service/ports/mocks"
)

const testRefundWindow = 48 * time.Hour

func paidSignup() *domain.Signup {
	return &domain.Signup{
		ID:            "g1",
		SessionID:     "s1",
		Name:          "Alice",
		Email:         "alice@example.com",
		Status:        domain.SignupStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPaid,
		PaymentRef:    str("cap_1"),
		AmountCents:   2500,
		ManageToken:   "mtok_1",
	}
}

func TestCancellationService_CancelSignup_SelfRefundEligible(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	session := bookableSession() // starts in 72h, outside the 48h window

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	payments.EXPECT().Refund(mock.Anything, "cap_1").Return(nil)
	signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCancelled, true).
		Return(domain.SignupStatusConfirmed, nil)
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, session, true).Return(true)
	promoter.EXPECT().PromoteNext(mock.Anything, "s1").
		Return(&domain.Promotion{SignupID: "g2", ClaimToken: "tok"}, nil)

	actor := domain.Actor{ManageToken: "mtok_1"}
	res, err := svc.CancelSignup(context.Background(), "g1", actor, false)

	require.NoError(t, err)
	assert.True(t, res.Refunded)
	assert.False(t, res.AlreadyCancelled)
	assert.Equal(t, domain.SignupStatusCancelled, res.Signup.Status)
	assert.Equal(t, domain.PaymentStatusRefunded, res.Signup.PaymentStatus)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCancellationService_CancelSignup_InsideWindowNoRefund(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	session := bookableSession()
	session.StartsAt = time.Now().Add(2 * time.Hour)

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCancelled, false).
		Return(domain.SignupStatusConfirmed, nil)
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, session, false).Return(true)
	promoter.EXPECT().PromoteNext(mock.Anything, "s1").Return(nil, domain.ErrNoEligibleEntries)

	res, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{ManageToken: "mtok_1"}, false)

	require.NoError(t, err)
	assert.False(t, res.Refunded)
	assert.Equal(t, domain.SignupStatusCancelled, res.Signup.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSignup_OperatorRefundOnRequest(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	session := bookableSession()
	session.StartsAt = time.Now().Add(time.Hour) // inside the window, operators decide anyway

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	payments.EXPECT().Refund(mock.Anything, "cap_1").Return(nil)
	signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCancelled, true).
		Return(domain.SignupStatusConfirmed, nil)
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, session, true).Return(true)
	promoter.EXPECT().PromoteNext(mock.Anything, "s1").Return(nil, domain.ErrNoEligibleEntries)

	res, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{Operator: true}, true)

	require.NoError(t, err)
	assert.True(t, res.Refunded)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSignup_Idempotent(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	signup.Status = domain.SignupStatusCancelled
	signup.PaymentStatus = domain.PaymentStatusRefunded

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)

	res, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{ManageToken: "mtok_1"}, false)

	// No second refund, no transition: a retry is a noop success.
	require.NoError(t, err)
	assert.True(t, res.AlreadyCancelled)
	assert.False(t, res.Refunded)
}

func TestCancellationService_CancelSignup_RefundFailureAborts(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	session := bookableSession()

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	payments.EXPECT().Refund(mock.Anything, "cap_1").Return(errors.New("processor down"))

	_, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{ManageToken: "mtok_1"}, false)

	// The signup must not transition when the refund fails.
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRefundFailed)
	assert.Equal(t, domain.SignupStatusConfirmed, signup.Status)
	signupRepo.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancellationService_CancelSignup_Forbidden(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(paidSignup(), nil)

	_, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{ManageToken: "wrong"}, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCancellationService_CancelSignup_AccountMatch(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	signup.AccountID = str("acct_1")
	signup.PaymentStatus = domain.PaymentStatusUnpaid
	signup.PaymentRef = nil
	session := bookableSession()

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCancelled, false).
		Return(domain.SignupStatusConfirmed, nil)
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, session, false).Return(true)
	promoter.EXPECT().PromoteNext(mock.Anything, "s1").Return(nil, domain.ErrNoEligibleEntries)

	res, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{AccountID: str("acct_1")}, false)

	require.NoError(t, err)
	assert.False(t, res.Refunded)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSignup_WaitlistEntryNoPromotion(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	signup := paidSignup()
	signup.Status = domain.SignupStatusWaitlist
	signup.PaymentStatus = domain.PaymentStatusUnpaid
	signup.PaymentRef = nil
	session := bookableSession()

	signupRepo.EXPECT().GetByID(mock.Anything, "g1").Return(signup, nil)
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	signupRepo.EXPECT().Transition(mock.Anything, "g1", domain.SignupStatusCancelled, false).
		Return(domain.SignupStatusWaitlist, nil)
	notifier.EXPECT().NotifyCancelled(mock.Anything, mock.Anything, session, false).Return(true)

	res, err := svc.CancelSignup(context.Background(), "g1", domain.Actor{ManageToken: "mtok_1"}, false)

	// Removing a queued entry frees nothing, so nobody gets promoted.
	require.NoError(t, err)
	assert.False(t, res.Refunded)
	promoter.AssertNotCalled(t, "PromoteNext", mock.Anything, mock.Anything)

	time.Sleep(50 * time.Millisecond)
}

func TestCancellationService_CancelSession_RefundFailuresDoNotBlock(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	session := bookableSession()

	signups := make([]*domain.Signup, 0, 5)
	for _, id := range []string{"g1", "g2", "g3", "g4", "g5"} {
		sg := paidSignup()
		sg.ID = id
		ref := "cap_" + id
		sg.PaymentRef = &ref
		signups = append(signups, sg)
	}

	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	sessionRepo.EXPECT().MarkCancelled(mock.Anything, "s1").Return(false, nil)
	signupRepo.EXPECT().ListActiveBySession(mock.Anything, "s1").Return(signups, nil)

	payments.EXPECT().Refund(mock.Anything, "cap_g3").Return(errors.New("processor down"))
	for _, ref := range []string{"cap_g1", "cap_g2", "cap_g4", "cap_g5"} {
		payments.EXPECT().Refund(mock.Anything, ref).Return(nil)
	}

	// Everyone transitions, refunded or not.
	for _, sg := range signups {
		refunded := sg.ID != "g3"
		signupRepo.EXPECT().Transition(mock.Anything, sg.ID, domain.SignupStatusSessionCancelled, refunded).
			Return(domain.SignupStatusConfirmed, nil)
	}
	notifier.EXPECT().NotifySessionCancelled(mock.Anything, mock.Anything, session, mock.Anything).
		Return(true).Times(5)

	res, err := svc.CancelSession(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 4, res.RefundsProcessed)
	assert.Equal(t, 1, res.RefundsFailed)
	assert.Equal(t, 5, res.NotificationsSent)
}

func TestCancellationService_CancelSession_AlreadyCancelledReprocesses(t *testing.T) {
	signupRepo := mocks.NewMockSignupRepo(t)
	sessionRepo := mocks.NewMockSessionRepo(t)
	payments := mocks.NewMockPaymentProcessor(t)
	notifier := mocks.NewMockNotifier(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewCancellationService(signupRepo, sessionRepo, payments, notifier, promoter, testRefundWindow, log)

	session := bookableSession()
	sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	sessionRepo.EXPECT().MarkCancelled(mock.Anything, "s1").Return(true, nil)
	signupRepo.EXPECT().ListActiveBySession(mock.Anything, "s1").Return(nil, nil)

	res, err := svc.CancelSession(context.Background(), "s1")

	require.NoError(t, err)
	assert.Zero(t, res.RefundsProcessed)
	assert.Zero(t, res.RefundsFailed)
	assert.Zero(t, res.NotificationsSent)
}
