package application

import (
	"context"
	"log"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/newsletter/domain"
	"chisokulab/backend/internal/features/newsletter/infrastructure"
)

const defaultSubscribeSource = "website"

// NewsletterService defines the interface for newsletter and contact-form
// handling.
type NewsletterService interface {
	Subscribe(ctx context.Context, req *domain.SubscribeRequest) (*domain.Subscription, error)
	SendContactMessage(ctx context.Context, req *domain.ContactRequest) error
}

// newsletterService is the implementation of NewsletterService.
type newsletterService struct {
	creds      config.CredentialStore
	convertKit infrastructure.ConvertKitClient
	mailer     infrastructure.Mailer
}

// NewNewsletterService creates a new NewsletterService.
func NewNewsletterService(creds config.CredentialStore, convertKit infrastructure.ConvertKitClient, mailer infrastructure.Mailer) NewsletterService {
	return &newsletterService{
		creds:      creds,
		convertKit: convertKit,
		mailer:     mailer,
	}
}

// Subscribe forwards the email to ConvertKit. When ConvertKit is not
// configured a stubbed active subscription is returned so local
// development works without credentials.
func (s *newsletterService) Subscribe(ctx context.Context, req *domain.SubscribeRequest) (*domain.Subscription, error) {
	source := req.Source
	if source == "" {
		source = defaultSubscribeSource
	}

	if !s.creds.IsConfigured(config.ProviderConvertKit) {
		log.Println("[WARN] ConvertKit not configured, returning stub subscription")
		return &domain.Subscription{
			ID:              1,
			State:           "active",
			SubscriberEmail: req.Email,
		}, nil
	}

	return s.convertKit.Subscribe(ctx, req.Email, source)
}

// SendContactMessage forwards a contact-form message. A filled honeypot
// field means spam: the submission is silently dropped and reported as
// delivered.
func (s *newsletterService) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if req.Website != "" {
		log.Println("[WARN] Contact submission flagged as spam, dropping")
		return nil
	}
	return s.mailer.SendContactEmail(ctx, req)
}
