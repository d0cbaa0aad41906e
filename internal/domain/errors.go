package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSignupNotFound  = errors.New("signup not found")
)

var (
	ErrNoAvailableSpots   = errors.New("no available spots")
	ErrSpotAvailable      = errors.New("spot became available")
	ErrSessionNotBookable = errors.New("session is not open for booking")
	ErrAlreadyCancelled   = errors.New("signup is already cancelled")
)

var (
	ErrOfferInvalid      = errors.New("claim token is invalid or already used")
	ErrOfferExpired      = errors.New("offer has expired")
	ErrNoEligibleEntries = errors.New("no eligible waitlist entries")
)

var (
	ErrPaymentAuthorization = errors.New("payment authorization failed")
	ErrRefundFailed         = errors.New("refund failed")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("not allowed to modify this signup")
)
