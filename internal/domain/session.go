package domain

import "time"

type SessionStatus string

const (
	SessionStatusDraft     SessionStatus = "draft"
	SessionStatusUpcoming  SessionStatus = "upcoming"
	SessionStatusActive    SessionStatus = "active"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

// BookableStatuses are the session states that accept new signups.
var BookableStatuses = []SessionStatus{SessionStatusUpcoming, SessionStatusActive}

type Session struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	StartsAt       time.Time     `json:"starts_at"`
	Capacity       int           `json:"capacity"` // 0 = unlimited
	PriceCents     int64         `json:"price_cents"`
	Currency       string        `json:"currency"`
	OrganizerEmail string        `json:"organizer_email"`
	Status         SessionStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Bookable reports whether the status accepts new signups.
func (s SessionStatus) Bookable() bool {
	return s == SessionStatusUpcoming || s == SessionStatusActive
}

func (s *Session) Bookable() bool {
	return s.Status.Bookable()
}

// Unlimited reports whether the session has no capacity cap.
func (s *Session) Unlimited() bool {
	return s.Capacity == 0
}

// CapacitySnapshot is the availability of a session derived from a fresh
// aggregate read. Pending offers consume capacity so a freed spot is never
// offered twice.
type CapacitySnapshot struct {
	Capacity      int `json:"capacity"`
	Confirmed     int `json:"confirmed"`
	PendingOffers int `json:"pending_offers"`
	Waitlisted    int `json:"waitlisted"`
}

// Available returns the number of free spots. Negative values are clamped
// to zero; unlimited sessions always report at least one.
func (c CapacitySnapshot) Available() int {
	if c.Capacity == 0 {
		return 1
	}
	free := c.Capacity - c.Confirmed - c.PendingOffers
	if free < 0 {
		return 0
	}
	return free
}

type SessionDetails struct {
	Session  Session          `json:"session"`
	Snapshot CapacitySnapshot `json:"snapshot"`
	Signups  []Signup         `json:"signups"`
}

type CreateSessionInput struct {
	Title          string
	Description    string
	StartsAt       time.Time
	Capacity       int
	PriceCents     int64
	Currency       string
	OrganizerEmail string
}
