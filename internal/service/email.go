package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// Mailer is the outbound email capability consumed by the contact workflow.
// EmailService implements it with Resend; tests substitute a stub.
type Mailer interface {
	SendVerificationEmail(email, token, name string) error
	SendContactNotification(name, email, message string) error
	SendContactConfirmation(email, name string) error
}

type EmailService struct {
	client     *resend.Client
	fromEmail  string
	ownerEmail string
	ownerName  string
	appURL     string
	isDev      bool
}

func NewEmailService(apiKey, fromEmail, ownerEmail, ownerName, appURL string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		ownerEmail: ownerEmail,
		ownerName:  ownerName,
		appURL:     appURL,
		isDev:      isDev,
	}
}

func (s *EmailService) SendVerificationEmail(email, token, name string) error {
	verifyURL := fmt.Sprintf("%s/api/contact/verify?token=%s", s.appURL, token)
	subject, html, text := verificationEmailTemplate(name, verifyURL, s.ownerName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "verification", "to", email, "subject", subject, "url", verifyURL)
		return nil
	}

	return s.send(email, subject, html, text, "verification")
}

func (s *EmailService) SendContactNotification(name, email, message string) error {
	subject, html, text := contactNotificationTemplate(name, email, message)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact_notification", "to", s.ownerEmail, "subject", subject)
		return nil
	}

	return s.send(s.ownerEmail, subject, html, text, "contact_notification")
}

func (s *EmailService) SendContactConfirmation(email, name string) error {
	subject, html, text := contactConfirmationTemplate(name, s.ownerName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact_confirmation", "to", email, "subject", subject)
		return nil
	}

	return s.send(email, subject, html, text, "contact_confirmation")
}

func (s *EmailService) send(to, subject, html, text, kind string) error {
	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	}

	_, err := s.client.Emails.SendWithContext(context.Background(), params)
	if err == nil {
		slog.Info("email sent", "type", kind, "to", to)
	}
	return err
}
