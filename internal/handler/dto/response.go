package dto

import (
	"time"

	"github.com/stvol/waitline/internal/domain"
)

type SessionResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	StartsAt       string `json:"starts_at"`
	Capacity       int    `json:"capacity"`
	PriceCents     int64  `json:"price_cents"`
	Currency       string `json:"currency"`
	OrganizerEmail string `json:"organizer_email"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type SnapshotResponse struct {
	Capacity      int `json:"capacity"`
	Confirmed     int `json:"confirmed"`
	PendingOffers int `json:"pending_offers"`
	Waitlisted    int `json:"waitlisted"`
}

type SessionDetailsResponse struct {
	Session  SessionResponse  `json:"session"`
	Snapshot SnapshotResponse `json:"snapshot"`
	Signups  []SignupResponse `json:"signups"`
}

type SignupResponse struct {
	ID               string  `json:"id"`
	SessionID        string  `json:"session_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"payment_status"`
	AmountCents      int64   `json:"amount_cents"`
	WaitlistPosition *int    `json:"waitlist_position,omitempty"`
	OfferStatus      string  `json:"offer_status"`
	OfferExpiresAt   *string `json:"offer_expires_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type AdmissionResponse struct {
	Signup   SignupResponse `json:"signup"`
	Admitted bool           `json:"admitted"`
	Position int            `json:"position,omitempty"`
	// ManageToken is returned once, on creation, as the possession proof for
	// guest-initiated changes.
	ManageToken string `json:"manage_token"`
}

type CancellationResponse struct {
	Signup           SignupResponse `json:"signup"`
	Refunded         bool           `json:"refunded"`
	AlreadyCancelled bool           `json:"already_cancelled"`
}

type BulkCancellationResponse struct {
	RefundsProcessed  int `json:"refunds_processed"`
	RefundsFailed     int `json:"refunds_failed"`
	NotificationsSent int `json:"notifications_sent"`
}

type PromotionResponse struct {
	SignupID   string `json:"signup_id"`
	ClaimToken string `json:"claim_token"`
	ExpiresAt  string `json:"expires_at"`
}

type SweepResponse struct {
	ExpiredCount int `json:"expired_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:             s.ID,
		Title:          s.Title,
		Description:    s.Description,
		StartsAt:       s.StartsAt.Format(time.RFC3339),
		Capacity:       s.Capacity,
		PriceCents:     s.PriceCents,
		Currency:       s.Currency,
		OrganizerEmail: s.OrganizerEmail,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionDetailsResponse(d *domain.SessionDetails) SessionDetailsResponse {
	signups := make([]SignupResponse, 0, len(d.Signups))
	for _, s := range d.Signups {
		signups = append(signups, ToSignupResponse(&s))
	}

	return SessionDetailsResponse{
		Session: ToSessionResponse(&d.Session),
		Snapshot: SnapshotResponse{
			Capacity:      d.Snapshot.Capacity,
			Confirmed:     d.Snapshot.Confirmed,
			PendingOffers: d.Snapshot.PendingOffers,
			Waitlisted:    d.Snapshot.Waitlisted,
		},
		Signups: signups,
	}
}

func ToSignupResponse(s *domain.Signup) SignupResponse {
	resp := SignupResponse{
		ID:               s.ID,
		SessionID:        s.SessionID,
		Name:             s.Name,
		Email:            s.Email,
		Status:           string(s.Status),
		PaymentStatus:    string(s.PaymentStatus),
		AmountCents:      s.AmountCents,
		WaitlistPosition: s.WaitlistPosition,
		OfferStatus:      string(s.OfferStatus),
		CreatedAt:        s.CreatedAt.Format(time.RFC3339),
	}
	if s.OfferExpiresAt != nil {
		expires := s.OfferExpiresAt.Format(time.RFC3339)
		resp.OfferExpiresAt = &expires
	}
	return resp
}

func ToAdmissionResponse(r *domain.AdmissionResult) AdmissionResponse {
	return AdmissionResponse{
		Signup:      ToSignupResponse(r.Signup),
		Admitted:    r.Admitted,
		Position:    r.Position,
		ManageToken: r.Signup.ManageToken,
	}
}

func ToCancellationResponse(r *domain.CancellationResult) CancellationResponse {
	return CancellationResponse{
		Signup:           ToSignupResponse(r.Signup),
		Refunded:         r.Refunded,
		AlreadyCancelled: r.AlreadyCancelled,
	}
}

func ToPromotionResponse(p domain.Promotion) PromotionResponse {
	return PromotionResponse{
		SignupID:   p.SignupID,
		ClaimToken: p.ClaimToken,
		ExpiresAt:  p.ExpiresAt.Format(time.RFC3339),
	}
}
