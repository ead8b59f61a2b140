// Package mailer sends outbound notification e-mail over SMTP with STARTTLS.
package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/Verderen/MoneyHiver/internal/config"
)

// SMTPMailer sends mail through a single authenticated SMTP account.
type SMTPMailer struct {
	host     string
	port     string
	address  string
	password string
}

// NewSMTPMailer creates a mailer from SMTP configuration.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		address:  cfg.Address,
		password: cfg.Password,
	}
}

// Send delivers one plain-text message. smtp.SendMail negotiates STARTTLS
// when the server offers it.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.host == "" || m.address == "" {
		return fmt.Errorf("smtp is not configured")
	}

	msg := []byte(
		"From: " + m.address + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"Content-Type: text/plain; charset=utf-8\r\n" +
			"\r\n" +
			body + "\r\n")

	auth := smtp.PlainAuth("", m.address, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.address, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
