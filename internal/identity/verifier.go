package identity

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/taskhive/taskhive-api/pkg/middleware"
)

// Verifier validates ID tokens minted by the external identity provider that
// backs the federated signup path. It satisfies the same middleware.Verifier
// interface as the local HMAC verifier, but it is never the gate for locally
// issued tokens: the HMAC path stays authoritative for protected routes.
type Verifier struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the provider at issuer and prepares a token verifier
// bound to the given audience.
func NewVerifier(ctx context.Context, issuer, clientID string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover identity provider: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: clientID})
	return &Verifier{provider: provider, verifier: verifier}, nil
}

// Verify checks the provider's signature and expiry on the raw ID token.
func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	return idToken, nil
}
