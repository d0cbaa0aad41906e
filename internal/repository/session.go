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

type SessionRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSessionRepo(db *dbpg.DB) *SessionRepository {
	return &SessionRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO sessions (id, title, description, starts_at, capacity, price_cents, currency, organizer_email, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.Title, s.Description, s.StartsAt, s.Capacity,
		s.PriceCents, s.Currency, s.OrganizerEmail, s.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

const sessionColumns = `id, title, description, starts_at, capacity, price_cents, currency, organizer_email, status, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }) (*domain.Session, error) {
	var s domain.Session
	err := row.Scan(
		&s.ID, &s.Title, &s.Description, &s.StartsAt, &s.Capacity,
		&s.PriceCents, &s.Currency, &s.OrganizerEmail, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	s, err := scanSession(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}

	return s, nil
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var res []*domain.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SessionRepository) GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error) {
	query := `
		SELECT
			s.id, s.title, s.description, s.starts_at, s.capacity,
			s.price_cents, s.currency, s.organizer_email, s.status,
			s.created_at, s.updated_at,
			COUNT(g.id) FILTER (WHERE g.status = $2)                          AS confirmed,
			COUNT(g.id) FILTER (WHERE g.status = $3 AND g.offer_status = $4)  AS pending_offers,
			COUNT(g.id) FILTER (WHERE g.status = $3)                          AS waitlisted
		FROM sessions s
		LEFT JOIN signups g ON g.session_id = s.id
		WHERE s.id = $1
		GROUP BY s.id`

	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query, id,
		domain.SignupStatusConfirmed, domain.SignupStatusWaitlist, domain.OfferStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("get session details: %w", err)
	}

	var d domain.SessionDetails
	err = row.Scan(
		&d.Session.ID, &d.Session.Title, &d.Session.Description,
		&d.Session.StartsAt, &d.Session.Capacity, &d.Session.PriceCents,
		&d.Session.Currency, &d.Session.OrganizerEmail, &d.Session.Status,
		&d.Session.CreatedAt, &d.Session.UpdatedAt,
		&d.Snapshot.Confirmed, &d.Snapshot.PendingOffers, &d.Snapshot.Waitlisted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session details: %w", err)
	}
	d.Snapshot.Capacity = d.Session.Capacity

	return &d, nil
}

func (r *SessionRepository) UpdateCapacity(ctx context.Context, id string, capacity int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var previous int
	lockQuery := `SELECT capacity FROM sessions WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&previous); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrSessionNotFound
		}
		return 0, fmt.Errorf("lock session: %w", err)
	}

	query := `UPDATE sessions SET capacity = $2, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, query, id, capacity); err != nil {
		return 0, fmt.Errorf("update capacity: %w", err)
	}

	return previous, tx.Commit()
}

func (r *SessionRepository) MarkCancelled(ctx context.Context, id string) (bool, error) {
	query := `UPDATE sessions SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.SessionStatusCancelled)
	if err != nil {
		return false, fmt.Errorf("cancel session: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("session rows affected: %w", err)
	}
	if rows == 0 {
		// Either already cancelled or missing; distinguish the two.
		if _, err := r.GetByID(ctx, id); err != nil {
			return false, err
		}
		return true, nil
	}

	return false, nil
}

func (r *SessionRepository) UpdateStatus(ctx context.Context, id string, status domain.SessionStatus) error {
	query := `UPDATE sessions SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> ALL($3)`
	terminal := []domain.SessionStatus{domain.SessionStatusCancelled}
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, pq.Array(terminal))
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("session rows affected: %w", err)
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return domain.ErrAlreadyCancelled
	}

	return nil
}
