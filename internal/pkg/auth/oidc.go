package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/takeuforward/portal/internal/app/models/dto"
	"github.com/takeuforward/portal/internal/pkg/apperrors"
	"golang.org/x/oauth2"
)

// OIDCConfig holds the relying party settings
type OIDCConfig struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// OIDCAuthenticator drives the authorization code flow against the identity provider
type OIDCAuthenticator struct {
	oauth2Config oauth2.Config
	verifier     *oidc.IDTokenVerifier
}

// NewOIDCAuthenticator discovers the provider and prepares the oauth2 client
func NewOIDCAuthenticator(ctx context.Context, cfg OIDCConfig) (*OIDCAuthenticator, error) {
	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover oidc provider %s: %w", cfg.IssuerURL, err)
	}

	scopes := []string{oidc.ScopeOpenID}
	for _, s := range cfg.Scopes {
		if s != "" && s != oidc.ScopeOpenID {
			scopes = append(scopes, s)
		}
	}

	return &OIDCAuthenticator{
		oauth2Config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       scopes,
		},
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
	}, nil
}

// AuthCodeURL returns the provider login URL carrying state
func (a *OIDCAuthenticator) AuthCodeURL(state string) string {
	return a.oauth2Config.AuthCodeURL(state)
}

// Exchange trades an authorization code for a verified identity
func (a *OIDCAuthenticator) Exchange(ctx context.Context, code string) (*dto.IdentityClaims, error) {
	if code == "" {
		return nil, apperrors.NewCustomError(apperrors.ErrLoginFailed, "missing authorization code")
	}

	token, err := a.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %v", apperrors.ErrLoginFailed, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, fmt.Errorf("%w: id_token missing from token response", apperrors.ErrLoginFailed)
	}

	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: verify id_token: %v", apperrors.ErrLoginFailed, err)
	}

	var claims idTokenClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode claims: %v", apperrors.ErrLoginFailed, err)
	}
	claims.Subject = idToken.Subject

	return claims.identity()
}

// idTokenClaims accepts both standard OIDC claim names and the first_name style some providers use
type idTokenClaims struct {
	Subject         string `json:"sub"`
	Email           string `json:"email"`
	GivenName       string `json:"given_name"`
	FamilyName      string `json:"family_name"`
	Picture         string `json:"picture"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (c idTokenClaims) identity() (*dto.IdentityClaims, error) {
	if strings.TrimSpace(c.Subject) == "" {
		return nil, fmt.Errorf("%w: id_token has no subject", apperrors.ErrLoginFailed)
	}
	return &dto.IdentityClaims{
		Subject:         c.Subject,
		Email:           c.Email,
		FirstName:       firstNonEmpty(c.FirstName, c.GivenName),
		LastName:        firstNonEmpty(c.LastName, c.FamilyName),
		ProfileImageURL: firstNonEmpty(c.ProfileImageURL, c.Picture),
	}, nil
}

// NewState returns an unguessable value for the oauth2 state parameter
func NewState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate oidc state: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
