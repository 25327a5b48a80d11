package infrastructure

import (
	"context"
	"fmt"
	"html"
	"log"
	"os"
	"strings"

	"github.com/resend/resend-go/v2"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/newsletter/domain"
)

const (
	fromEmailEnv    = "RESEND_FROM_EMAIL"
	contactEmailEnv = "CONTACT_EMAIL"

	defaultFromEmail    = "onboarding@resend.dev"
	defaultContactEmail = "hello@chisokulab.com"
)

// Mailer defines the interface for contact-form email delivery.
type Mailer interface {
	// SendContactEmail forwards the contact message to the site owner and
	// sends a best-effort auto-reply to the sender.
	SendContactEmail(ctx context.Context, req *domain.ContactRequest) error
}

// resendMailer is the implementation of Mailer backed by Resend.
type resendMailer struct {
	creds config.CredentialStore
}

// NewResendMailer creates a new Resend-backed mailer.
func NewResendMailer(creds config.CredentialStore) Mailer {
	return &resendMailer{creds: creds}
}

func (m *resendMailer) SendContactEmail(ctx context.Context, req *domain.ContactRequest) error {
	apiKey := m.creds.Key(config.ProviderResend)
	if apiKey == "" {
		return fmt.Errorf("email service is not configured")
	}

	fromEmail := envOrDefault(fromEmailEnv, defaultFromEmail)
	toEmail := envOrDefault(contactEmailEnv, defaultContactEmail)

	client := resend.NewClient(apiKey)

	notification := &resend.SendEmailRequest{
		From:    fromEmail,
		To:      []string{toEmail},
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("Contact Form: %s", html.EscapeString(req.Subject)),
		Html:    buildNotificationHTML(req),
	}
	if _, err := client.Emails.SendWithContext(ctx, notification); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	// Auto-reply failures should not fail the request.
	autoReply := &resend.SendEmailRequest{
		From:    fromEmail,
		To:      []string{req.Email},
		Subject: "Thank you for contacting ChisokuLab",
		Html:    buildAutoReplyHTML(req),
	}
	if _, err := client.Emails.SendWithContext(ctx, autoReply); err != nil {
		log.Println("[ERROR] Failed to send auto-reply:", err)
	}

	return nil
}

func buildNotificationHTML(req *domain.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Form Submission</h2>")
	b.WriteString(fmt.Sprintf("<p><strong>Name:</strong> %s</p>", html.EscapeString(req.Name)))
	b.WriteString(fmt.Sprintf("<p><strong>Email:</strong> %s</p>", html.EscapeString(req.Email)))
	b.WriteString(fmt.Sprintf("<p><strong>Subject:</strong> %s</p>", html.EscapeString(req.Subject)))
	b.WriteString(fmt.Sprintf("<p><strong>Message:</strong></p><div style=\"white-space: pre-wrap;\">%s</div>", html.EscapeString(req.Message)))
	return b.String()
}

func buildAutoReplyHTML(req *domain.ContactRequest) string {
	var b strings.Builder
	b.WriteString("<h2>Thank You for Reaching Out!</h2>")
	b.WriteString(fmt.Sprintf("<p>Hi %s,</p>", html.EscapeString(req.Name)))
	b.WriteString("<p>Thank you for contacting ChisokuLab. We've received your message and will get back to you within 24-48 hours during business days.</p>")
	b.WriteString(fmt.Sprintf("<p><strong>Your message:</strong><br/><em>%s</em></p>", html.EscapeString(req.Subject)))
	b.WriteString("<p>Best regards,<br/>The ChisokuLab Team</p>")
	return b.String()
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
