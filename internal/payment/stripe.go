package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/wb-go/wbf/logger"
)

// StripeProcessor implements ports.PaymentProcessor with manual capture:
// Authorize places an uncaptured PaymentIntent hold, Capture charges it,
// Void cancels it, Refund returns a captured payment by intent reference.
type StripeProcessor struct {
	client *client.API
	logger logger.Logger

	// feePercent of gross is routed as an application fee to the platform;
	// the rest settles on the operator's connected account.
	feePercent    int64
	payoutAccount string
}

var errDisabled = errors.New("stripe is not configured")

func NewStripeProcessor(secretKey string, feePercent int64, payoutAccount string, log logger.Logger) *StripeProcessor {
	p := &StripeProcessor{
		logger:        log,
		feePercent:    feePercent,
		payoutAccount: payoutAccount,
	}

	if secretKey == "" {
		log.Warn("stripe secret key is empty, paid sessions will reject bookings")
		return p
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	p.client = sc

	return p
}

func (p *StripeProcessor) Authorize(ctx context.Context, amountCents int64, currency, method string) (string, error) {
	if p.client == nil {
		return "", errDisabled
	}

	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amountCents),
		Currency:      stripe.String(currency),
		PaymentMethod: stripe.String(method),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	if p.feePercent > 0 && p.payoutAccount != "" {
		params.ApplicationFeeAmount = stripe.Int64(amountCents * p.feePercent / 100)
		params.TransferData = &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(p.payoutAccount),
		}
	}

	pi, err := p.client.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusRequiresCapture {
		return "", fmt.Errorf("unexpected intent status %q", pi.Status)
	}

	return pi.ID, nil
}

func (p *StripeProcessor) Capture(ctx context.Context, holdRef string) (string, error) {
	if p.client == nil {
		return "", errDisabled
	}

	pi, err := p.client.PaymentIntents.Capture(holdRef, &stripe.PaymentIntentCaptureParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return "", fmt.Errorf("capture payment intent: %w", err)
	}

	return pi.ID, nil
}

func (p *StripeProcessor) Void(ctx context.Context, holdRef string) error {
	if p.client == nil {
		return errDisabled
	}

	_, err := p.client.PaymentIntents.Cancel(holdRef, &stripe.PaymentIntentCancelParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return fmt.Errorf("cancel payment intent: %w", err)
	}

	return nil
}

func (p *StripeProcessor) Refund(ctx context.Context, captureRef string) error {
	if p.client == nil {
		return errDisabled
	}

	_, err := p.client.Refunds.New(&stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(captureRef),
	})
	if err != nil {
		return fmt.Errorf("create refund: %w", err)
	}

	return nil
}
