package email

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"mime/quotedprintable"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"bepl-backend/internal/config"

	"github.com/google/uuid"
)

// ErrNotConfigured is returned when no SMTP credentials are set.
var ErrNotConfigured = errors.New("email transport not configured")

// Message is a rendered email ready for delivery.
type Message struct {
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	HTML     string
	Headers  map[string]string
}

// Sender delivers a single message and returns its Message-ID.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// SMTPSender talks to an SMTP relay with STARTTLS and PLAIN auth when offered.
type SMTPSender struct {
	host     string
	port     int
	user     string
	password string
	from     string
	timeout  time.Duration
	// requireAuth makes missing credentials an error instead of sending anonymously.
	requireAuth bool
}

func NewSMTPSender(cfg config.EmailConfig, timeout time.Duration) *SMTPSender {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &SMTPSender{
		host:        cfg.Host,
		port:        cfg.Port,
		user:        cfg.User,
		password:    cfg.Password,
		from:        from,
		timeout:     timeout,
		requireAuth: true,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	if s.from == "" || (s.requireAuth && s.user == "") {
		return "", ErrNotConfigured
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.host)
	raw, err := buildMessage(s.from, messageID, msg)
	if err != nil {
		return "", err
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("dial smtp %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		conn.Close()
		return "", fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.host}); err != nil {
			return "", fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if s.user != "" {
		if ok, _ := c.Extension("AUTH"); ok {
			if err := c.Auth(smtp.PlainAuth("", s.user, s.password, s.host)); err != nil {
				return "", fmt.Errorf("smtp auth: %w", err)
			}
		}
	}

	if err := c.Mail(s.from); err != nil {
		return "", fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(msg.To); err != nil {
		return "", fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return "", fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		return "", fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("smtp close data: %w", err)
	}

	_ = c.Quit()
	return messageID, nil
}

func buildMessage(from, messageID string, msg Message) ([]byte, error) {
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}

	fromAddr := mail.Address{Name: msg.FromName, Address: from}

	var buf bytes.Buffer
	writeHeader := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}

	writeHeader("From", fromAddr.String())
	writeHeader("To", msg.To)
	if msg.ReplyTo != "" {
		writeHeader("Reply-To", msg.ReplyTo)
	}
	writeHeader("Subject", mime.QEncoding.Encode("utf-8", msg.Subject))
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("Message-ID", messageID)
	writeHeader("MIME-Version", "1.0")
	writeHeader("Content-Type", `text/html; charset="UTF-8"`)
	writeHeader("Content-Transfer-Encoding", "quoted-printable")
	for k, v := range msg.Headers {
		writeHeader(k, v)
	}
	buf.WriteString("\r\n")

	qp := quotedprintable.NewWriter(&buf)
	if _, err := qp.Write([]byte(msg.HTML)); err != nil {
		return nil, err
	}
	if err := qp.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
