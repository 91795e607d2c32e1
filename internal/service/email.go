package service

import (
	"fmt"
	"net/smtp"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/devraj/portfolio-v2/backend/config"
	"github.com/devraj/portfolio-v2/backend/internal/models"
)

// IEmailService sends admin notifications for new visitor messages.
type IEmailService interface {
	SendMessageNotification(message *models.Message) error
	SendEmail(to, subject, body string) error
}

// EmailService delivers mail over SMTP. When SMTP is not configured the mail
// is logged instead of sent, which keeps local development working.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string
	adminEmail   string
}

func NewEmailService(cfg *config.Config) IEmailService {
	return &EmailService{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUsername,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.EmailFrom,
		fromName:     cfg.EmailFromName,
		adminEmail:   cfg.AdminEmail,
	}
}

// SendMessageNotification mails the admin about a new contact/hire message.
func (s *EmailService) SendMessageNotification(message *models.Message) error {
	toEmail := s.adminEmail
	if toEmail == "" {
		toEmail = s.fromEmail
	}

	caser := cases.Title(language.English)
	kind := caser.String(message.Type)
	if message.Type == models.MessageTypeHire {
		kind = "Hire Me"
	}

	subject := fmt.Sprintf("New %s Message from %s", kind, message.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\nType: %s\nMessage: %s\n",
		message.Name, message.Email, message.Type, message.Body)

	return s.SendEmail(toEmail, subject, body)
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	if s.smtpHost == "" || s.smtpPort == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, logging email instead of sending")
		return nil
	}

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", to, from, subject, body))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
