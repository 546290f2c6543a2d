package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"os"
)

type MailSender interface {
	Send(to string, subject string, textBody string, htmlBody string) error
}

// ConsoleMailSender logs mail instead of sending it. Default outside
// production so the reset flow works without an SMTP account.
type ConsoleMailSender struct{}

func (s *ConsoleMailSender) Send(to string, subject string, textBody string, htmlBody string) error {
	slog.Info("mail (console)", "to", to, "subject", subject, "body", textBody)
	return nil
}

type SmtpConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

type SmtpMailSender struct {
	config SmtpConfig
}

func NewSmtpMailSender(config SmtpConfig) *SmtpMailSender {
	return &SmtpMailSender{config: config}
}

func (s *SmtpMailSender) Send(to string, subject string, textBody string, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)
	address := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)

	contentType := "text/html"
	body := htmlBody
	if body == "" {
		contentType = "text/plain"
		body = textBody
	}

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-version: 1.0;\r\n"+
		"Content-Type: %s; charset=\"UTF-8\";\r\n"+
		"\r\n"+
		"%s", to, s.config.From, subject, contentType, body))

	if err := smtp.SendMail(address, auth, s.config.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func NewSenderFromEnv() MailSender {
	if os.Getenv("MAIL_PROVIDER") == "smtp" {
		return NewSmtpMailSender(SmtpConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     os.Getenv("SMTP_PORT"),
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
		})
	}
	return &ConsoleMailSender{}
}
