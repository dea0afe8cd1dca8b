package utils

import (
	"fmt"
	"net/smtp"
)

// EmailSender sends notification emails over SMTP. All sends are
// best-effort; callers log failures and move on.
type EmailSender struct {
	From     string
	Password string
	Host     string
	Port     string
}

func NewEmailSender(from, password, host, port string) *EmailSender {
	return &EmailSender{From: from, Password: password, Host: host, Port: port}
}

// Send delivers a single HTML email to the given address.
func (e *EmailSender) Send(to, subject, body string) error {
	if e.From == "" || e.Password == "" {
		return fmt.Errorf("email credentials are not configured")
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + e.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", e.From, e.Password, e.Host)

	if err := smtp.SendMail(e.Host+":"+e.Port, auth, e.From, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
