package ports

import "context"

// PaymentProcessor wraps the external processor with manual-capture
// semantics: a hold is authorized first and captured only once the spot is
// durably confirmed. Each call either fully succeeds or fully fails.
type PaymentProcessor interface {
	// Authorize places an uncaptured hold and returns its reference.
	Authorize(ctx context.Context, amountCents int64, currency, method string) (string, error)
	// Capture charges a previously authorized hold and returns the capture
	// reference used for later refunds.
	Capture(ctx context.Context, holdRef string) (string, error)
	// Void releases an uncaptured hold.
	Void(ctx context.Context, holdRef string) error
	// Refund returns a captured payment by reference.
	Refund(ctx context.Context, captureRef string) error
}
