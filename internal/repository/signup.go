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

type SignupRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSignupRepo(db *dbpg.DB) *SignupRepository {
	return &SignupRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const signupColumns = `id, session_id, name, email, phone, account_id, status, payment_status, payment_ref, amount_cents, waitlist_position, offer_status, offer_claim_token, offer_expires_at, manage_token, created_at, updated_at`

func scanSignup(row interface{ Scan(...any) error }) (*domain.Signup, error) {
	var s domain.Signup
	err := row.Scan(
		&s.ID, &s.SessionID, &s.Name, &s.Email, &s.Phone, &s.AccountID,
		&s.Status, &s.PaymentStatus, &s.PaymentRef, &s.AmountCents,
		&s.WaitlistPosition, &s.OfferStatus, &s.OfferClaimToken,
		&s.OfferExpiresAt, &s.ManageToken, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// lockSession takes the session row lock that serializes admission,
// promotion and claim for one session, and returns its capacity and status.
func lockSession(ctx context.Context, tx *sql.Tx, sessionID string) (int, domain.SessionStatus, error) {
	var capacity int
	var status domain.SessionStatus
	query := `SELECT capacity, status FROM sessions WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRowContext(ctx, query, sessionID).Scan(&capacity, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", domain.ErrSessionNotFound
		}
		return 0, "", fmt.Errorf("lock session: %w", err)
	}
	return capacity, status, nil
}

func countOccupancy(ctx context.Context, tx *sql.Tx, sessionID string, capacity int) (domain.CapacitySnapshot, error) {
	snap := domain.CapacitySnapshot{Capacity: capacity}

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $2),
			COUNT(*) FILTER (WHERE status = $3 AND offer_status = $4),
			COUNT(*) FILTER (WHERE status = $3)
		FROM signups
		WHERE session_id = $1`
	err := tx.QueryRowContext(
		ctx, query, sessionID,
		domain.SignupStatusConfirmed, domain.SignupStatusWaitlist, domain.OfferStatusPending,
	).Scan(&snap.Confirmed, &snap.PendingOffers, &snap.Waitlisted)
	if err != nil {
		return snap, fmt.Errorf("count signups: %w", err)
	}

	return snap, nil
}

// lockedSnapshot reads capacity, status and occupancy under the session row
// lock. Every admission, promotion and claim decision derives from this read,
// never from a cached count.
func lockedSnapshot(ctx context.Context, tx *sql.Tx, sessionID string) (domain.CapacitySnapshot, domain.SessionStatus, error) {
	capacity, status, err := lockSession(ctx, tx, sessionID)
	if err != nil {
		return domain.CapacitySnapshot{}, "", err
	}
	snap, err := countOccupancy(ctx, tx, sessionID, capacity)
	return snap, status, err
}

func insertSignup(ctx context.Context, tx *sql.Tx, s *domain.Signup) error {
	query := `INSERT INTO signups (` + signupColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := tx.ExecContext(
		ctx, query,
		s.ID, s.SessionID, s.Name, s.Email, s.Phone, s.AccountID,
		s.Status, s.PaymentStatus, s.PaymentRef, s.AmountCents,
		s.WaitlistPosition, s.OfferStatus, s.OfferClaimToken,
		s.OfferExpiresAt, s.ManageToken, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signup: %w", err)
	}
	return nil
}

func (r *SignupRepository) Snapshot(ctx context.Context, sessionID string) (domain.CapacitySnapshot, error) {
	var snap domain.CapacitySnapshot

	query := `
		SELECT
			s.capacity,
			COUNT(g.id) FILTER (WHERE g.status = $2),
			COUNT(g.id) FILTER (WHERE g.status = $3 AND g.offer_status = $4),
			COUNT(g.id) FILTER (WHERE g.status = $3)
		FROM sessions s
		LEFT JOIN signups g ON g.session_id = s.id
		WHERE s.id = $1
		GROUP BY s.id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, sessionID,
		domain.SignupStatusConfirmed, domain.SignupStatusWaitlist, domain.OfferStatusPending,
	)
	if err != nil {
		return snap, fmt.Errorf("snapshot: %w", err)
	}

	if err = row.Scan(&snap.Capacity, &snap.Confirmed, &snap.PendingOffers, &snap.Waitlisted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return snap, domain.ErrSessionNotFound
		}
		return snap, fmt.Errorf("scan snapshot: %w", err)
	}

	return snap, nil
}

func (r *SignupRepository) InsertConfirmed(ctx context.Context, s *domain.Signup) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	snap, status, err := lockedSnapshot(ctx, tx, s.SessionID)
	if err != nil {
		return err
	}
	if !status.Bookable() {
		return domain.ErrSessionNotBookable
	}
	if snap.Available() == 0 {
		return domain.ErrNoAvailableSpots
	}

	if err = insertSignup(ctx, tx, s); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *SignupRepository) Enqueue(ctx context.Context, s *domain.Signup) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	snap, status, err := lockedSnapshot(ctx, tx, s.SessionID)
	if err != nil {
		return 0, err
	}
	if !status.Bookable() {
		return 0, domain.ErrSessionNotBookable
	}
	if snap.Available() > 0 {
		return 0, domain.ErrSpotAvailable
	}

	// Positions are assigned over every row ever inserted for this session,
	// so a withdrawn entry's position is never reused.
	var position int
	posQuery := `SELECT COALESCE(MAX(waitlist_position), 0) + 1 FROM signups WHERE session_id = $1`
	if err = tx.QueryRowContext(ctx, posQuery, s.SessionID).Scan(&position); err != nil {
		return 0, fmt.Errorf("next waitlist position: %w", err)
	}
	s.WaitlistPosition = &position

	if err = insertSignup(ctx, tx, s); err != nil {
		return 0, err
	}

	return position, tx.Commit()
}

func (r *SignupRepository) MarkPaid(ctx context.Context, id, captureRef string) error {
	query := `UPDATE signups
			  SET payment_status = $2, payment_ref = $3, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.PaymentStatusPaid, captureRef)
	if err != nil {
		return fmt.Errorf("mark paid: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("signup rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSignupNotFound
	}

	return nil
}

func (r *SignupRepository) Transition(ctx context.Context, id string, to domain.SignupStatus, markRefunded bool) (domain.SignupStatus, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var prev domain.SignupStatus
	lockQuery := `SELECT status FROM signups WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&prev); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrSignupNotFound
		}
		return "", fmt.Errorf("lock signup: %w", err)
	}

	if prev.Terminal() {
		return prev, domain.ErrAlreadyCancelled
	}

	query := `UPDATE signups SET status = $2, updated_at = now() WHERE id = $1`
	args := []any{id, to}
	if markRefunded {
		query = `UPDATE signups SET status = $2, payment_status = $3, updated_at = now() WHERE id = $1`
		args = append(args, domain.PaymentStatusRefunded)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return prev, fmt.Errorf("transition signup: %w", err)
	}

	return prev, tx.Commit()
}

func (r *SignupRepository) GetByID(ctx context.Context, id string) (*domain.Signup, error) {
	query := `SELECT ` + signupColumns + ` FROM signups WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get signup: %w", err)
	}

	s, err := scanSignup(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSignupNotFound
		}
		return nil, fmt.Errorf("scan signup: %w", err)
	}

	return s, nil
}

func (r *SignupRepository) ListActiveBySession(ctx context.Context, sessionID string) ([]*domain.Signup, error) {
	query := `SELECT ` + signupColumns + `
			  FROM signups
			  WHERE session_id = $1 AND status = ANY($2)
			  ORDER BY created_at`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID, pq.Array(domain.ActiveStatuses))
	if err != nil {
		return nil, fmt.Errorf("list active signups: %w", err)
	}
	defer rows.Close()

	var res []*domain.Signup
	for rows.Next() {
		s, err := scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SignupRepository) ListWaitlist(ctx context.Context, sessionID string) ([]*domain.Signup, error) {
	query := `SELECT ` + signupColumns + `
			  FROM signups
			  WHERE session_id = $1 AND status = $2
			  ORDER BY waitlist_position`
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, sessionID, domain.SignupStatusWaitlist)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	defer rows.Close()

	var res []*domain.Signup
	for rows.Next() {
		s, err := scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan waitlist entry: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
