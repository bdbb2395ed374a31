package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/samirwankhede/contact-relay/internal/mailer"
	"github.com/samirwankhede/contact-relay/internal/metrics"
)

const SubjectPrefix = "New Portfolio Contact: "

var ErrMissingFields = errors.New("all fields are required")

// Submission is the payload posted by the contact form.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// Field values are embedded as submitted, without HTML escaping.
const bodyFormat = `
<h1>New Contact Form Submission</h1>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
`

type ContactService struct {
	log     *zap.Logger
	sender  mailer.Sender
	mailbox string
}

// NewContactService returns a service relaying submissions to mailbox, which
// is used both as the sender address and as the recipient.
func NewContactService(log *zap.Logger, sender mailer.Sender, mailbox string) *ContactService {
	return &ContactService{
		log:     log,
		sender:  sender,
		mailbox: mailbox,
	}
}

// Compose renders the notification mail for a submission.
func (s *ContactService) Compose(sub Submission) mailer.Mail {
	return mailer.Mail{
		FromName: sub.Name,
		From:     s.mailbox,
		To:       s.mailbox,
		Subject:  SubjectPrefix + sub.Subject,
		HTML:     fmt.Sprintf(bodyFormat, sub.Name, sub.Email, sub.Subject, sub.Message),
	}
}

// Submit validates sub and relays it. It returns ErrMissingFields without
// contacting the relay when a field is empty.
func (s *ContactService) Submit(ctx context.Context, sub Submission) error {
	if err := sub.Validate(); err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return err
	}

	mail := s.Compose(sub)

	start := time.Now()
	receipt, err := s.sender.Send(ctx, mail)
	metrics.MailSendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ContactSubmissionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		s.log.Error("Error sending email", zap.Error(err), zap.String("subject", mail.Subject))
		return errors.Wrap(err, "failed to relay contact email")
	}

	metrics.ContactSubmissionsTotal.WithLabelValues(metrics.OutcomeSent).Inc()
	s.log.Info("Email sent successfully",
		zap.String("message_id", receipt.MessageID),
		zap.String("relay", receipt.Relay),
		zap.String("subject", mail.Subject),
	)
	return nil
}
