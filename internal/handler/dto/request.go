package dto

type CreateSessionRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	StartsAt       string `json:"starts_at" binding:"required"`
	Capacity       int    `json:"capacity" binding:"gte=0"`
	PriceCents     int64  `json:"price_cents" binding:"gte=0"`
	Currency       string `json:"currency"`
	OrganizerEmail string `json:"organizer_email" binding:"omitempty,email"`
}

type SignupRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Phone         string  `json:"phone"`
	AccountID     *string `json:"account_id" binding:"omitempty,uuid"`
	AmountCents   int64   `json:"amount_cents" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method"`
}

type CancelSignupRequest struct {
	Operator    bool    `json:"operator"`
	AccountID   *string `json:"account_id" binding:"omitempty,uuid"`
	ManageToken string  `json:"manage_token"`
	WantRefund  bool    `json:"want_refund"`
}

type UpdateCapacityRequest struct {
	Capacity *int `json:"capacity" binding:"required,gte=0"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft upcoming active completed"`
}
