package model

import (
	"context"
	"io"
)

// Storage stores uploaded blobs such as profile pictures.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// MailMessage is a rendered message ready for delivery.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// MailSender delivers a message to a single address.
type MailSender interface {
	Send(ctx context.Context, msg MailMessage) error
}

// FederatedIdentity is what an external identity provider vouches for.
type FederatedIdentity struct {
	Subject    string
	Name       string
	Email      string
	PictureURL string
}

// IdentityVerifier validates a provider token and extracts the identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, providerToken string) (FederatedIdentity, error)
}

// FederatedLoginResult is either a session for an existing account or
// prefill data for registration.
type FederatedLoginResult struct {
	Session *Session
	Prefill *FederatedIdentity
}
