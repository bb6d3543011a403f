package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"collabtime-api/core/config"
)

// SendMail delivers a plain-text email through the configured SMTP relay.
func SendMail(cfg config.SMTPConfig, to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	return smtp.SendMail(addr, auth, cfg.From, []string{to}, []byte(msg))
}
