package notification

import (
	"context"
	"fmt"

	"github.com/stvol/waitline/internal/domain"
	"github.com/wb-go/wbf/logger"
	gomail "gopkg.in/gomail.v2"
)

// EmailNotifier delivers best-effort emails to participants. A failed or
// skipped send is logged and reported via the return value only; it never
// propagates into the caller.
type EmailNotifier struct {
	dialer *gomail.Dialer
	from   string
	logger logger.Logger
}

func NewEmailNotifier(host string, port int, username, password, from string, log logger.Logger) *EmailNotifier {
	if host == "" {
		log.Warn("smtp host is empty, notifications disabled")
		return &EmailNotifier{logger: log}
	}

	return &EmailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: log,
	}
}

func (n *EmailNotifier) NotifySignupConfirmed(ctx context.Context, s *domain.Signup, session *domain.Session) bool {
	body := fmt.Sprintf(
		"Hi %s,\n\nYour spot for %q on %s is confirmed.",
		s.Name, session.Title, session.StartsAt.Format("02 Jan 2006 15:04 MST"),
	)
	return n.send(ctx, s.Email, "Your booking is confirmed", body)
}

func (n *EmailNotifier) NotifyWaitlisted(ctx context.Context, s *domain.Signup, session *domain.Session) bool {
	position := 0
	if s.WaitlistPosition != nil {
		position = *s.WaitlistPosition
	}
	body := fmt.Sprintf(
		"Hi %s,\n\n%q is currently full. You are number %d on the waitlist; we will email you if a spot opens up.",
		s.Name, session.Title, position,
	)
	return n.send(ctx, s.Email, "You are on the waitlist", body)
}

func (n *EmailNotifier) NotifyOfferExtended(ctx context.Context, s *domain.Signup, session *domain.Session) bool {
	token := ""
	if s.OfferClaimToken != nil {
		token = *s.OfferClaimToken
	}
	deadline := ""
	if s.OfferExpiresAt != nil {
		deadline = fmt.Sprintf(" before %s", s.OfferExpiresAt.Format("02 Jan 2006 15:04 MST"))
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nA spot opened up for %q! Claim it%s using code %s, after which it goes to the next person in line.",
		s.Name, session.Title, deadline, token,
	)
	return n.send(ctx, s.Email, "A spot opened up", body)
}

func (n *EmailNotifier) NotifyBookingFailed(ctx context.Context, p domain.Participant, session *domain.Session) bool {
	body := fmt.Sprintf(
		"Hi %s,\n\nThe last spot for %q was taken while your payment was being authorized. You were not charged.",
		p.Name, session.Title,
	)
	return n.send(ctx, p.Email, "Your booking could not be completed", body)
}

func (n *EmailNotifier) NotifyCancelled(ctx context.Context, s *domain.Signup, session *domain.Session, refunded bool) bool {
	outcome := "No refund was issued."
	if refunded {
		outcome = "Your payment has been refunded."
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYour signup for %q has been cancelled. %s",
		s.Name, session.Title, outcome,
	)
	return n.send(ctx, s.Email, "Your signup was cancelled", body)
}

func (n *EmailNotifier) NotifySessionCancelled(ctx context.Context, s *domain.Signup, session *domain.Session, refunded bool) bool {
	outcome := ""
	if refunded {
		outcome = " Your payment has been refunded."
	}
	body := fmt.Sprintf(
		"Hi %s,\n\n%q on %s has been cancelled by the organizer.%s",
		s.Name, session.Title, session.StartsAt.Format("02 Jan 2006 15:04 MST"), outcome,
	)
	return n.send(ctx, s.Email, "Session cancelled", body)
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) bool {
	if n.dialer == nil {
		n.logger.Debug("notification skipped (smtp disabled)", logger.String("subject", subject))
		return false
	}

	if to == "" {
		n.logger.Debug("notification skipped (no recipient)", logger.String("subject", subject))
		return false
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)", logger.String("to", to))
		return false
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		n.logger.Error("failed to send email notification",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}
