// Package mail delivers transactional messages over SMTP.
package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/jordan-wright/email"

	"github.com/asconalumni/alumni-server/internal/config"
	"github.com/asconalumni/alumni-server/internal/logger"
	"github.com/asconalumni/alumni-server/internal/model"
)

var (
	_ model.MailSender = (*SMTPSender)(nil)
	_ model.MailSender = (*LogSender)(nil)
)

type pool interface {
	Send(e *email.Email, timeout time.Duration) error
	Close()
}

// SMTPSender sends messages through a pooled SMTP connection.
type SMTPSender struct {
	pool    pool
	from    string
	timeout time.Duration
	log     *logger.Logger
}

// NewSMTPSender opens a connection pool to the configured relay.
func NewSMTPSender(cfg config.SMTP, log *logger.Logger) (*SMTPSender, error) {
	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	size := cfg.PoolSize
	if size < 1 {
		size = 1
	}

	p, err := email.NewPool(net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)), size, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp pool: %w", err)
	}

	return newSMTPSender(p, cfg.From, cfg.SendTimeout, log), nil
}

func newSMTPSender(p pool, from string, timeout time.Duration, log *logger.Logger) *SMTPSender {
	return &SMTPSender{
		pool:    p,
		from:    from,
		timeout: timeout,
		log:     log,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg model.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timeout := s.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout || timeout <= 0 {
			timeout = left
		}
	}

	e := &email.Email{
		To:      []string{msg.To},
		From:    s.from,
		Subject: msg.Subject,
		Text:    []byte(msg.Text),
	}
	if msg.HTML != "" {
		e.HTML = []byte(msg.HTML)
	}

	if err := s.pool.Send(e, timeout); err != nil {
		s.log.Error("mail: failed to send", "subject", msg.Subject, "error", err)
		return fmt.Errorf("failed to send mail: %w", err)
	}

	s.log.Debug("mail: sent", "subject", msg.Subject)
	return nil
}

func (s *SMTPSender) Close() {
	s.pool.Close()
}

// LogSender writes messages to the log instead of delivering them. It is used
// when no relay is configured.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, msg model.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.log.Info("mail: delivery disabled, message logged", "to", msg.To, "subject", msg.Subject)
	s.log.Debug("mail: message body", "text", msg.Text)
	return nil
}
