package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chisokulab/backend/internal/config"
	"chisokulab/backend/internal/features/newsletter/domain"
)

type fakeConvertKit struct {
	calls      int
	lastEmail  string
	lastSource string
	sub        *domain.Subscription
	err        error
}

func (f *fakeConvertKit) Subscribe(ctx context.Context, email, source string) (*domain.Subscription, error) {
	f.calls++
	f.lastEmail = email
	f.lastSource = source
	return f.sub, f.err
}

type fakeMailer struct {
	calls int
	err   error
}

func (f *fakeMailer) SendContactEmail(ctx context.Context, req *domain.ContactRequest) error {
	f.calls++
	return f.err
}

func TestSubscribeForwardsToConvertKit(t *testing.T) {
	ck := &fakeConvertKit{sub: &domain.Subscription{ID: 7, State: "active", SubscriberEmail: "a@b.com"}}
	creds := config.NewStaticCredentialStore(map[config.Provider]string{
		config.ProviderConvertKit: "ck-secret-key-value",
	})
	svc := NewNewsletterService(creds, ck, &fakeMailer{})

	sub, err := svc.Subscribe(context.Background(), &domain.SubscribeRequest{Email: "a@b.com", Source: "footer"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), sub.ID)
	assert.Equal(t, 1, ck.calls)
	assert.Equal(t, "a@b.com", ck.lastEmail)
	assert.Equal(t, "footer", ck.lastSource)
}

func TestSubscribeDefaultsSource(t *testing.T) {
	ck := &fakeConvertKit{sub: &domain.Subscription{ID: 7, State: "active"}}
	creds := config.NewStaticCredentialStore(map[config.Provider]string{
		config.ProviderConvertKit: "ck-secret-key-value",
	})
	svc := NewNewsletterService(creds, ck, &fakeMailer{})

	_, err := svc.Subscribe(context.Background(), &domain.SubscribeRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "website", ck.lastSource)
}

func TestSubscribeStubsWhenUnconfigured(t *testing.T) {
	ck := &fakeConvertKit{err: errors.New("should not be called")}
	svc := NewNewsletterService(config.NewStaticCredentialStore(nil), ck, &fakeMailer{})

	sub, err := svc.Subscribe(context.Background(), &domain.SubscribeRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, 0, ck.calls)
	assert.Equal(t, "active", sub.State)
	assert.Equal(t, "a@b.com", sub.SubscriberEmail)
}

func TestContactMessageDelivered(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewNewsletterService(config.NewStaticCredentialStore(nil), &fakeConvertKit{}, mailer)

	err := svc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I have a question about your tooling.",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, mailer.calls)
}

func TestContactMessageHoneypotDropsSilently(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("should not be called")}
	svc := NewNewsletterService(config.NewStaticCredentialStore(nil), &fakeConvertKit{}, mailer)

	err := svc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:    "Bot",
		Email:   "bot@example.com",
		Subject: "Spam",
		Message: "Buy now buy now buy now",
		Website: "http://spam.example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mailer.calls)
}

func TestContactMessagePropagatesMailerError(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewNewsletterService(config.NewStaticCredentialStore(nil), &fakeConvertKit{}, mailer)

	err := svc.SendContactMessage(context.Background(), &domain.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I have a question about your tooling.",
	})
	require.Error(t, err)
}
