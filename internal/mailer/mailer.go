package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// ErrNotConfigured is returned when the relay account has no credentials.
var ErrNotConfigured = errors.New("smtp credentials are not configured")

type Mail struct {
	FromName string
	From     string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
}

// Receipt describes a message the relay accepted.
type Receipt struct {
	MessageID string
	Relay     string
}

type Sender interface {
	Send(ctx context.Context, m Mail) (Receipt, error)
}

// Verifier checks that the relay accepts the configured credentials.
type Verifier interface {
	Verify(ctx context.Context) error
}

type SMTPSender struct {
	Host   string
	Port   int
	User   string
	Pass   string
	dialer *gomail.Dialer
}

var (
	_ Sender   = (*SMTPSender)(nil)
	_ Verifier = (*SMTPSender)(nil)
)

func NewSMTPSender(host string, port int, user, pass string) *SMTPSender {
	return &SMTPSender{
		Host:   host,
		Port:   port,
		User:   user,
		Pass:   pass,
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

func (s *SMTPSender) addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

func (s *SMTPSender) configured() bool { return s.User != "" && s.Pass != "" }

// Verify opens a session, negotiates STARTTLS and authenticates, then quits
// without sending anything.
func (s *SMTPSender) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.configured() {
		return ErrNotConfigured
	}
	sc, err := s.dialer.Dial()
	if err != nil {
		return errors.Wrapf(err, "failed to connect to %s", s.addr())
	}
	return errors.Wrap(sc.Close(), "failed to close smtp session")
}

func (s *SMTPSender) Send(ctx context.Context, m Mail) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	if !s.configured() {
		return Receipt{}, ErrNotConfigured
	}
	if m.To == "" {
		return Receipt{}, errors.New("no recipient specified")
	}

	id := messageID(m.From)
	if err := s.dialer.DialAndSend(buildMessage(m, id)); err != nil {
		return Receipt{}, errors.Wrapf(err, "failed to send email via %s", s.addr())
	}
	return Receipt{MessageID: id, Relay: s.addr()}, nil
}

func buildMessage(m Mail, id string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.From, m.FromName)
	msg.SetHeader("To", m.To)
	if m.ReplyTo != "" {
		msg.SetHeader("Reply-To", m.ReplyTo)
	}
	msg.SetHeader("Subject", m.Subject)
	msg.SetHeader("Message-ID", id)
	msg.SetBody("text/html", m.HTML)
	return msg
}

// messageID builds an RFC 5322 message id scoped to the sender's domain.
func messageID(from string) string {
	domain := "localhost"
	if i := strings.LastIndexByte(from, '@'); i >= 0 && i < len(from)-1 {
		domain = from[i+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}
