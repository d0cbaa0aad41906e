package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/stvol/waitline/internal/domain"
	"github.com/stvol/waitline/internal/testutil"
)

func TestWaitlistRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.ApplyMigrations(t, db)

	ctx := context.Background()
	signups := NewSignupRepo(db)
	repo := NewWaitlistRepo(db)

	// fullSession seeds a capacity-1 session with one confirmed signup and n
	// waitlist entries, returning the session and the entries in order.
	fullSession := func(t *testing.T, n int) (*domain.Session, *domain.Signup, []*domain.Signup) {
		t.Helper()
		session := mustSession(t, ctx, db, 1, domain.SessionStatusUpcoming)

		confirmed := newTestSignup(session.ID, domain.SignupStatusConfirmed)
		if err := signups.InsertConfirmed(ctx, confirmed); err != nil {
			t.Fatalf("fill session: %v", err)
		}

		var entries []*domain.Signup
		for i := 0; i < n; i++ {
			s := newTestSignup(session.ID, domain.SignupStatusWaitlist)
			if _, err := signups.Enqueue(ctx, s); err != nil {
				t.Fatalf("enqueue %d: %v", i, err)
			}
			entries = append(entries, s)
		}
		return session, confirmed, entries
	}

	t.Run("one freed spot yields exactly one offer", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, db)
		session, confirmed, entries := fullSession(t, 2)

		if _, err := signups.Transition(ctx, confirmed.ID, domain.SignupStatusCancelled, false); err != nil {
			t.Fatalf("free spot: %v", err)
		}

		offered, err := repo.PromoteNext(ctx, session.ID, uuid.NewString(), time.Now().Add(time.Hour))
		if err != nil {
			t.Fatalf("first promote: %v", err)
		}
		if offered.ID != entries[0].ID {
			t.Fatalf("offered entry %s, want lowest position %s", offered.ID, entries[0].ID)
		}
		if offered.OfferStatus != domain.OfferStatusPending {
			t.Fatalf("offer status = %q, want pending", offered.OfferStatus)
		}

		// The pending offer consumes the only free spot.
		_, err = repo.PromoteNext(ctx, session.ID, uuid.NewString(), time.Now().Add(time.Hour))
		if !errors.Is(err, domain.ErrNoEligibleEntries) {
			t.Fatalf("second promote: got %v, want ErrNoEligibleEntries", err)
		}
	})

	t.Run("claim confirms once and consumes the token", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, db)
		session, confirmed, _ := fullSession(t, 1)

		if _, err := signups.Transition(ctx, confirmed.ID, domain.SignupStatusCancelled, false); err != nil {
			t.Fatalf("free spot: %v", err)
		}

		token := uuid.NewString()
		if _, err := repo.PromoteNext(ctx, session.ID, token, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("promote: %v", err)
		}

		claimed, err := repo.ClaimByToken(ctx, token)
		if err != nil {
			t.Fatalf("claim: %v", err)
		}
		if claimed.Status != domain.SignupStatusConfirmed {
			t.Fatalf("claimed status = %q, want confirmed", claimed.Status)
		}
		if claimed.OfferClaimToken != nil {
			t.Fatal("claim token not cleared after confirmation")
		}

		if _, err := repo.ClaimByToken(ctx, token); !errors.Is(err, domain.ErrOfferInvalid) {
			t.Fatalf("second claim: got %v, want ErrOfferInvalid", err)
		}
		if got := testutil.CountSignups(t, ctx, db, session.ID, domain.SignupStatusConfirmed); got != 1 {
			t.Fatalf("confirmed rows = %d, want 1", got)
		}
	})

	t.Run("lapsed offer expires at claim time", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, db)
		session, confirmed, entries := fullSession(t, 1)

		if _, err := signups.Transition(ctx, confirmed.ID, domain.SignupStatusCancelled, false); err != nil {
			t.Fatalf("free spot: %v", err)
		}

		token := uuid.NewString()
		if _, err := repo.PromoteNext(ctx, session.ID, token, time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("promote: %v", err)
		}

		stale, err := repo.ClaimByToken(ctx, token)
		if !errors.Is(err, domain.ErrOfferExpired) {
			t.Fatalf("lapsed claim: got %v, want ErrOfferExpired", err)
		}
		if stale == nil || stale.ID != entries[0].ID {
			t.Fatal("lapsed claim must return the stale entry for re-offer")
		}

		// The lapse is durable, so the next promotion pass sees the entry as
		// eligible again.
		reoffered, err := repo.PromoteNext(ctx, session.ID, uuid.NewString(), time.Now().Add(time.Hour))
		if err != nil {
			t.Fatalf("re-promote: %v", err)
		}
		if reoffered.ID != entries[0].ID {
			t.Fatalf("re-offered entry %s, want %s", reoffered.ID, entries[0].ID)
		}
	})

	t.Run("cancelled session blocks promotion and claim", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, db)
		session, confirmed, _ := fullSession(t, 1)

		if _, err := signups.Transition(ctx, confirmed.ID, domain.SignupStatusCancelled, false); err != nil {
			t.Fatalf("free spot: %v", err)
		}

		token := uuid.NewString()
		if _, err := repo.PromoteNext(ctx, session.ID, token, time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("promote: %v", err)
		}

		if _, err := db.Master.ExecContext(ctx,
			`UPDATE sessions SET status = $2 WHERE id = $1`,
			session.ID, domain.SessionStatusCancelled,
		); err != nil {
			t.Fatalf("cancel session: %v", err)
		}

		if _, err := repo.ClaimByToken(ctx, token); !errors.Is(err, domain.ErrOfferInvalid) {
			t.Fatalf("claim into cancelled session: got %v, want ErrOfferInvalid", err)
		}
		_, err := repo.PromoteNext(ctx, session.ID, uuid.NewString(), time.Now().Add(time.Hour))
		if !errors.Is(err, domain.ErrSessionNotBookable) {
			t.Fatalf("promote in cancelled session: got %v, want ErrSessionNotBookable", err)
		}
	})

	t.Run("sweep reclaims lapsed offers per session", func(t *testing.T) {
		testutil.TruncateAll(t, ctx, db)
		session, confirmed, _ := fullSession(t, 1)

		if _, err := signups.Transition(ctx, confirmed.ID, domain.SignupStatusCancelled, false); err != nil {
			t.Fatalf("free spot: %v", err)
		}
		if _, err := repo.PromoteNext(ctx, session.ID, uuid.NewString(), time.Now().Add(-time.Minute)); err != nil {
			t.Fatalf("promote: %v", err)
		}

		counts, err := repo.ExpireLapsedAll(ctx)
		if err != nil {
			t.Fatalf("sweep: %v", err)
		}
		if counts[session.ID] != 1 {
			t.Fatalf("swept %d offers for session, want 1", counts[session.ID])
		}
	})
}
