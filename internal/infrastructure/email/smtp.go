package email

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"

	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

// SMTPSender delivers email through a plain SMTP relay. Sends are retried
// with exponential backoff since relays reject transiently under load.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
}

// NewSMTPSender creates an SMTP sender from config
func NewSMTPSender(cfg *config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.Host,
		port:      cfg.Port,
		username:  cfg.Username,
		password:  cfg.Password,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

// Configured reports whether credentials are present
func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.username != "" && s.fromEmail != ""
}

// Send delivers a message to the recipients. CC addresses receive the message
// and appear in the header.
func (s *SMTPSender) Send(to, cc []string, subject, body string) error {
	if !s.Configured() {
		return fmt.Errorf("smtp credentials not configured")
	}

	msg := s.buildMessage(to, cc, subject, body)
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	recipients := append(append([]string{}, to...), cc...)

	sendFn := func() error {
		return smtp.SendMail(addr, auth, s.fromEmail, recipients, msg)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(sendFn, bo); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(to, cc []string, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", s.fromName, s.fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	if len(cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
