package domain

import "time"

type SignupStatus string

const (
	SignupStatusConfirmed        SignupStatus = "confirmed"
	SignupStatusWaitlist         SignupStatus = "waitlist"
	SignupStatusCancelled        SignupStatus = "cancelled"
	SignupStatusSessionCancelled SignupStatus = "session_cancelled"
)

// ActiveStatuses are the signup states that still hold (or wait for) a spot.
var ActiveStatuses = []SignupStatus{SignupStatusConfirmed, SignupStatusWaitlist}

// Terminal reports whether the status admits no further transitions.
func (s SignupStatus) Terminal() bool {
	return s == SignupStatusCancelled || s == SignupStatusSessionCancelled
}

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type OfferStatus string

const (
	OfferStatusNone    OfferStatus = "none"
	OfferStatusPending OfferStatus = "pending"
	OfferStatusExpired OfferStatus = "expired"
	OfferStatusSkipped OfferStatus = "skipped"
)

// Signup is a booking attempt's durable record. Rows are never deleted,
// only status-transitioned, to preserve the audit and refund history.
type Signup struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`

	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	AccountID *string `json:"account_id,omitempty"`

	Status        SignupStatus  `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentRef    *string       `json:"payment_ref,omitempty"`
	AmountCents   int64         `json:"amount_cents"`

	WaitlistPosition *int        `json:"waitlist_position,omitempty"`
	OfferStatus      OfferStatus `json:"offer_status"`
	OfferClaimToken  *string     `json:"-"`
	OfferExpiresAt   *time.Time  `json:"offer_expires_at,omitempty"`

	// ManageToken is the possession proof required for guest-initiated
	// state changes when no account id is attached.
	ManageToken string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Participant identifies who is booking.
type Participant struct {
	Name      string
	Email     string
	Phone     string
	AccountID *string
}

// Actor identifies who initiates a cancellation.
type Actor struct {
	// Operator cancels bypass the refund-eligibility window.
	Operator bool
	// AccountID set for signed-in participants.
	AccountID *string
	// ManageToken is the possession proof for guest participants.
	ManageToken string
}

type AdmissionResult struct {
	Signup   *Signup `json:"signup"`
	Admitted bool    `json:"admitted"`
	// Position is set when the signup was queued.
	Position int `json:"position,omitempty"`
}

type CancellationResult struct {
	Signup   *Signup `json:"signup"`
	Refunded bool    `json:"refunded"`
	// AlreadyCancelled marks an idempotent retry that found a terminal state.
	AlreadyCancelled bool `json:"already_cancelled"`
}

type BulkCancellationResult struct {
	RefundsProcessed  int `json:"refunds_processed"`
	RefundsFailed     int `json:"refunds_failed"`
	NotificationsSent int `json:"notifications_sent"`
}

type Promotion struct {
	SignupID   string    `json:"signup_id"`
	ClaimToken string    `json:"claim_token"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type SweepResult struct {
	ExpiredCount int `json:"expired_count"`
}
