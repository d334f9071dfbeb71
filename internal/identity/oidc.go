// Package identity verifies ID tokens issued by an external OpenID Connect
// provider.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/asconalumni/alumni-server/internal/config"
	"github.com/asconalumni/alumni-server/internal/model"
)

var _ model.IdentityVerifier = (*OIDCVerifier)(nil)

// OIDCVerifier checks provider ID tokens against the provider's published keys.
type OIDCVerifier struct {
	verifier *oidc.IDTokenVerifier
}

type idClaims struct {
	Email         string `json:"email"`
	EmailVerified *bool  `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// NewOIDCVerifier discovers the provider configuration at cfg.IssuerURL.
func NewOIDCVerifier(ctx context.Context, cfg config.OIDC) (*OIDCVerifier, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("OIDC client ID is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// NewOIDCVerifierWithKeySet builds a verifier without discovery.
func NewOIDCVerifierWithKeySet(issuer, clientID string, keySet oidc.KeySet) *OIDCVerifier {
	return &OIDCVerifier{
		verifier: oidc.NewVerifier(issuer, keySet, &oidc.Config{ClientID: clientID}),
	}
}

// Verify validates the token signature, issuer, audience and expiry and
// returns the identity it asserts. The provider must vouch for the email.
func (v *OIDCVerifier) Verify(ctx context.Context, providerToken string) (model.FederatedIdentity, error) {
	if strings.TrimSpace(providerToken) == "" {
		return model.FederatedIdentity{}, model.NewValidationError("provider token is required")
	}

	idToken, err := v.verifier.Verify(ctx, providerToken)
	if err != nil {
		return model.FederatedIdentity{}, &model.Error{Kind: model.KindInvalidToken, Message: "provider token rejected", Err: err}
	}

	var c idClaims
	if err := idToken.Claims(&c); err != nil {
		return model.FederatedIdentity{}, &model.Error{Kind: model.KindInvalidToken, Message: "provider token claims unreadable", Err: err}
	}

	if c.Email == "" {
		return model.FederatedIdentity{}, &model.Error{Kind: model.KindInvalidToken, Message: "provider token carries no email"}
	}
	if c.EmailVerified != nil && !*c.EmailVerified {
		return model.FederatedIdentity{}, &model.Error{Kind: model.KindInvalidToken, Message: "provider has not verified the email"}
	}

	return model.FederatedIdentity{
		Subject:    idToken.Subject,
		Name:       c.Name,
		Email:      model.NormalizeEmail(c.Email),
		PictureURL: c.Picture,
	}, nil
}
