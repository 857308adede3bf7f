package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

const welcomeSubject = "Welcome to AuthSystem — Registration Successful! 🎉"

// SMTPNotifier sends the welcome mail over a plain SMTP submission. The
// connection respects the caller's context deadline via the dialer.
type SMTPNotifier struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (n *SMTPNotifier) Notify(ctx context.Context, email, username string) error {
	addr := net.JoinHostPort(n.Host, fmt.Sprint(n.Port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("notify: dial %s: %w", addr, err)
	}

	// The SMTP conversation itself inherits the connection deadline.
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, n.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("notify: smtp handshake: %w", err)
	}
	defer c.Close()

	if n.Username != "" {
		auth := smtp.PlainAuth("", n.Username, n.Password, n.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("notify: smtp auth: %w", err)
		}
	}

	if err := c.Mail(n.From); err != nil {
		return fmt.Errorf("notify: mail from: %w", err)
	}
	if err := c.Rcpt(email); err != nil {
		return fmt.Errorf("notify: rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("notify: data: %w", err)
	}
	if _, err := w.Write([]byte(welcomeMessage(n.From, email, username))); err != nil {
		_ = w.Close()
		return fmt.Errorf("notify: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("notify: close body: %w", err)
	}

	return c.Quit()
}

func welcomeMessage(from, to, username string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", welcomeSubject)
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", username)
	b.WriteString("Welcome aboard! Your account has been successfully created.\r\n\r\n")
	b.WriteString("You can now log in using your registered email address.\r\n\r\n")
	b.WriteString("If you didn't create this account, please ignore this email.\r\n\r\n")
	b.WriteString("Best regards,\r\nThe AuthSystem Team\r\n")
	return b.String()
}
