package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// Mailer dispatches a plain-text message. Delivery errors are returned to
// the caller as-is; there is no retry.
type Mailer interface {
	Send(subject, body, from string, to []string) error
}

// Mail is the process-wide mailer, set up by InitMailer once the environment
// is loaded. Tests swap in a recording fake.
var Mail Mailer

func InitMailer() {
	Mail = &SMTPMailer{
		Host:     getenvDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     getenvDefault("SMTP_PORT", "587"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
	}
}

// MailFrom returns the configured sender address, falling back to the SMTP
// username.
func MailFrom() string {
	if from := os.Getenv("MAIL_FROM"); from != "" {
		return from
	}
	return os.Getenv("SMTP_USERNAME")
}

type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
}

func (m *SMTPMailer) Send(subject, body, from string, to []string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		from, strings.Join(to, ", "), subject, body)

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, from, to, []byte(msg))
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
