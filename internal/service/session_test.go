package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/service/ports/mocks"
)

func TestSessionService_Create_Success(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.Create(context.Background(), domain.CreateSessionInput{
		Title:      "Yoga",
		StartsAt:   time.Now().Add(24 * time.Hour),
		Capacity:   10,
		PriceCents: 2500,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, domain.SessionStatusUpcoming, session.Status)
	assert.Equal(t, "eur", session.Currency) // default when unset
}

func TestSessionService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	cases := []struct {
		name  string
		input domain.CreateSessionInput
	}{
		{"empty title", domain.CreateSessionInput{StartsAt: time.Now().Add(time.Hour)}},
		{"negative capacity", domain.CreateSessionInput{Title: "Yoga", Capacity: -1, StartsAt: time.Now().Add(time.Hour)}},
		{"negative price", domain.CreateSessionInput{Title: "Yoga", PriceCents: -100, StartsAt: time.Now().Add(time.Hour)}},
		{"starts in past", domain.CreateSessionInput{Title: "Yoga", StartsAt: time.Now().Add(-time.Hour)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSessionService_GetDetails_MergesSignups(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	details := &domain.SessionDetails{
		Session:  *bookableSession(),
		Snapshot: domain.CapacitySnapshot{Capacity: 2, Confirmed: 1, Waitlisted: 1},
	}
	repo.EXPECT().GetDetails(mock.Anything, "s1").Return(details, nil)
	signupRepo.EXPECT().ListActiveBySession(mock.Anything, "s1").Return([]*domain.Signup{
		{ID: "g1", Status: domain.SignupStatusConfirmed},
		{ID: "g2", Status: domain.SignupStatusWaitlist},
	}, nil)

	res, err := svc.GetDetails(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, res.Signups, 2)
	assert.Equal(t, 1, res.Snapshot.Available())
}

func TestSessionService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_Waitlist(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().GetByID(mock.Anything, "s1").Return(bookableSession(), nil)
	signupRepo.EXPECT().ListWaitlist(mock.Anything, "s1").Return([]*domain.Signup{
		{ID: "g1", Status: domain.SignupStatusWaitlist},
	}, nil)

	entries, err := svc.Waitlist(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSessionService_UpdateCapacity_GrowthPromotes(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().UpdateCapacity(mock.Anything, "s1", 4).Return(2, nil)
	promoter.EXPECT().PromoteMany(mock.Anything, "s1", 2).Return([]domain.Promotion{
		{SignupID: "g1", ClaimToken: "tok1"},
		{SignupID: "g2", ClaimToken: "tok2"},
	}, nil)

	promotions, err := svc.UpdateCapacity(context.Background(), "s1", 4)

	require.NoError(t, err)
	assert.Len(t, promotions, 2)
}

func TestSessionService_UpdateCapacity_ShrinkKeepsConfirmed(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().UpdateCapacity(mock.Anything, "s1", 2).Return(4, nil)

	promotions, err := svc.UpdateCapacity(context.Background(), "s1", 2)

	// Shrinking never evicts anyone and never promotes anyone.
	require.NoError(t, err)
	assert.Empty(t, promotions)
	promoter.AssertNotCalled(t, "PromoteMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessionService_UpdateCapacity_UnlimitedDrainsWaitlist(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().UpdateCapacity(mock.Anything, "s1", 0).Return(2, nil)
	signupRepo.EXPECT().ListWaitlist(mock.Anything, "s1").Return([]*domain.Signup{
		{ID: "g1"}, {ID: "g2"}, {ID: "g3"},
	}, nil)
	promoter.EXPECT().PromoteMany(mock.Anything, "s1", 3).Return([]domain.Promotion{
		{SignupID: "g1"}, {SignupID: "g2"}, {SignupID: "g3"},
	}, nil)

	promotions, err := svc.UpdateCapacity(context.Background(), "s1", 0)

	require.NoError(t, err)
	assert.Len(t, promotions, 3)
}

func TestSessionService_UpdateCapacity_Negative(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	_, err := svc.UpdateCapacity(context.Background(), "s1", -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSessionService_UpdateStatus_Allowed(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Status: domain.SessionStatusActive}, nil)
	repo.EXPECT().UpdateStatus(mock.Anything, "s1", domain.SessionStatusCompleted).Return(nil)

	err := svc.UpdateStatus(context.Background(), "s1", domain.SessionStatusCompleted)

	require.NoError(t, err)
}

func TestSessionService_UpdateStatus_RejectsBackwardMove(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	cases := []struct {
		name    string
		current domain.SessionStatus
		target  domain.SessionStatus
	}{
		{"completed back to draft", domain.SessionStatusCompleted, domain.SessionStatusDraft},
		{"active back to upcoming", domain.SessionStatusActive, domain.SessionStatusUpcoming},
		{"same status", domain.SessionStatusActive, domain.SessionStatusActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo.EXPECT().GetByID(mock.Anything, "s1").
				Return(&domain.Session{ID: "s1", Status: tc.current}, nil).Once()

			err := svc.UpdateStatus(context.Background(), "s1", tc.target)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestSessionService_UpdateStatus_CancelledSessionStays(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	repo.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.Session{ID: "s1", Status: domain.SessionStatusCancelled}, nil)

	err := svc.UpdateStatus(context.Background(), "s1", domain.SessionStatusActive)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestSessionService_UpdateStatus_CancelledNotSettable(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	signupRepo := mocks.NewMockSignupRepo(t)
	promoter := mocks.NewMockPromoter(t)
	log := newTestLogger(t)

	svc := NewSessionService(repo, signupRepo, promoter, log)

	// Cancellation goes through the dedicated flow, not a status write.
	err := svc.UpdateStatus(context.Background(), "s1", domain.SessionStatusCancelled)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
