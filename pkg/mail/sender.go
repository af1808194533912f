package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gomail "github.com/wneessen/go-mail"
)

var ErrMissingCredentials = errors.New("GMAIL_USER and GMAIL_APP_PASSWORD must be set")

type SenderConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
	FromName string
}

// Sender delivers briefs over SMTP with mandatory STARTTLS.
type Sender struct {
	cfg SenderConfig
}

func NewSender(cfg SenderConfig) *Sender {
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	cfg.Password = cleanPassword(cfg.Password)
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(ctx context.Context, msg *Message) error {
	if s.cfg.User == "" || s.cfg.Password == "" {
		return ErrMissingCredentials
	}

	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.User),
		gomail.WithPassword(s.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *Sender) buildMessage(msg *Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.cfg.FromName, s.cfg.User); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	return m, nil
}

// cleanPassword removes the spaces Google shows inside app passwords,
// including non-breaking ones picked up by copy and paste.
func cleanPassword(pw string) string {
	pw = strings.NewReplacer(" ", "", "\u00a0", "").Replace(pw)
	return strings.TrimSpace(pw)
}
