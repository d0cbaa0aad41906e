package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stvol/waitline/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// WaitlistRepository owns the offer lifecycle: promotion, claim and expiry.
// Promotion and claim both serialize on the session row lock, so a freed spot
// is consumed by exactly one of a concurrent admission, promotion or claim.
type WaitlistRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWaitlistRepo(db *dbpg.DB) *WaitlistRepository {
	return &WaitlistRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

var promotableStatuses = []string{
	string(domain.OfferStatusNone),
	string(domain.OfferStatusExpired),
	string(domain.OfferStatusSkipped),
}

func (r *WaitlistRepository) PromoteNext(ctx context.Context, sessionID, token string, expiresAt time.Time) (*domain.Signup, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capacity, status, err := lockSession(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	if !status.Bookable() {
		return nil, domain.ErrSessionNotBookable
	}

	// Lapsed offers are reclaimed inside the same transaction so their spots
	// and entries are both eligible again in this pass.
	if _, err = expireLapsed(ctx, tx, sessionID); err != nil {
		return nil, err
	}

	snap, err := countOccupancy(ctx, tx, sessionID, capacity)
	if err != nil {
		return nil, err
	}
	if snap.Available() == 0 {
		// Pending offers already consume every free spot.
		return nil, domain.ErrNoEligibleEntries
	}

	query := `UPDATE signups
			  SET offer_status = $4, offer_claim_token = $2, offer_expires_at = $3, updated_at = now()
			  WHERE id = (
			      SELECT id FROM signups
			      WHERE session_id = $1 AND status = $5 AND offer_status = ANY($6)
			      ORDER BY waitlist_position
			      LIMIT 1
			  )
			  RETURNING ` + signupColumns
	row := tx.QueryRowContext(
		ctx, query, sessionID, token, expiresAt,
		domain.OfferStatusPending, domain.SignupStatusWaitlist,
		pq.Array(promotableStatuses),
	)

	s, err := scanSignup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoEligibleEntries
		}
		return nil, fmt.Errorf("promote waitlist entry: %w", err)
	}

	return s, tx.Commit()
}

func (r *WaitlistRepository) ClaimByToken(ctx context.Context, token string) (*domain.Signup, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Locate the entry first, then take the session lock; the entry is
	// re-read under the lock before any decision is made.
	var id, sessionID string
	findQuery := `SELECT id, session_id FROM signups WHERE offer_claim_token = $1`
	if err = tx.QueryRowContext(ctx, findQuery, token).Scan(&id, &sessionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOfferInvalid
		}
		return nil, fmt.Errorf("find claim token: %w", err)
	}

	snap, status, err := lockedSnapshot(ctx, tx, sessionID)
	if err != nil {
		return nil, err
	}
	// An offer into a cancelled or completed session is no longer claimable.
	if !status.Bookable() {
		return nil, domain.ErrOfferInvalid
	}

	row := tx.QueryRowContext(ctx, `SELECT `+signupColumns+` FROM signups WHERE id = $1`, id)
	s, err := scanSignup(row)
	if err != nil {
		return nil, fmt.Errorf("reread claim entry: %w", err)
	}

	if s.Status != domain.SignupStatusWaitlist || s.OfferStatus != domain.OfferStatusPending {
		return nil, domain.ErrOfferInvalid
	}

	// Expiry is decided by timestamp, not by whether a sweep has run. The
	// stale entry is returned alongside the error so the caller can offer
	// the slot to the next entry.
	if s.OfferExpiresAt == nil || !s.OfferExpiresAt.After(time.Now().UTC()) {
		return s, r.lapseOffer(ctx, tx, id)
	}

	// Defense in depth: a claim that would push confirmed over capacity lost
	// the race and lapses, freeing the offer for the next entry.
	if snap.Capacity > 0 && snap.Confirmed >= snap.Capacity {
		return s, r.lapseOffer(ctx, tx, id)
	}

	confirmQuery := `UPDATE signups
					 SET status = $2, offer_status = $3, offer_claim_token = NULL, offer_expires_at = NULL, updated_at = now()
					 WHERE id = $1
					 RETURNING ` + signupColumns
	row = tx.QueryRowContext(ctx, confirmQuery, id, domain.SignupStatusConfirmed, domain.OfferStatusNone)
	s, err = scanSignup(row)
	if err != nil {
		return nil, fmt.Errorf("confirm claim: %w", err)
	}

	return s, tx.Commit()
}

// lapseOffer commits the expired marking and reports the offer as expired to
// the caller, so the single-use token cannot be retried.
func (r *WaitlistRepository) lapseOffer(ctx context.Context, tx *sql.Tx, id string) error {
	query := `UPDATE signups
			  SET offer_status = $2, offer_claim_token = NULL, offer_expires_at = NULL, updated_at = now()
			  WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, id, domain.OfferStatusExpired); err != nil {
		return fmt.Errorf("lapse offer: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit lapse: %w", err)
	}
	return domain.ErrOfferExpired
}

func expireLapsed(ctx context.Context, tx *sql.Tx, sessionID string) (int, error) {
	query := `UPDATE signups
			  SET offer_status = $3, offer_claim_token = NULL, offer_expires_at = NULL, updated_at = now()
			  WHERE session_id = $1 AND status = $2 AND offer_status = $4 AND offer_expires_at < now()`
	res, err := tx.ExecContext(
		ctx, query, sessionID,
		domain.SignupStatusWaitlist, domain.OfferStatusExpired, domain.OfferStatusPending,
	)
	if err != nil {
		return 0, fmt.Errorf("expire lapsed offers: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expire rows affected: %w", err)
	}

	return int(rows), nil
}

func (r *WaitlistRepository) ExpireLapsed(ctx context.Context, sessionID string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	count, err := expireLapsed(ctx, tx, sessionID)
	if err != nil {
		return 0, err
	}

	return count, tx.Commit()
}

func (r *WaitlistRepository) ExpireLapsedAll(ctx context.Context) (map[string]int, error) {
	query := `UPDATE signups
			  SET offer_status = $2, offer_claim_token = NULL, offer_expires_at = NULL, updated_at = now()
			  WHERE status = $1 AND offer_status = $3 AND offer_expires_at < now()
			  RETURNING session_id`
	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.SignupStatusWaitlist, domain.OfferStatusExpired, domain.OfferStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("expire lapsed offers: %w", err)
	}
	defer rows.Close()

	res := make(map[string]int)
	for rows.Next() {
		var sessionID string
		if err = rows.Scan(&sessionID); err != nil {
			return nil, fmt.Errorf("scan expired offer: %w", err)
		}
		res[sessionID]++
	}

	return res, rows.Err()
}
