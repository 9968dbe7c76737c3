package services

import (
	"context"
	"time"

	"quill/config"
	"quill/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// AuthService handles sign-in against Google and the backend.
type AuthService struct {
	cfg          *config.Config
	authAPI      AuthAPI
	sessionStore SessionStore
	verify       TokenVerifier
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config, authAPI AuthAPI, sessionStore SessionStore) *AuthService {
	return &AuthService{
		cfg:          cfg,
		authAPI:      authAPI,
		sessionStore: sessionStore,
		verify:       verifyGoogleIDToken,
	}
}

func verifyGoogleIDToken(ctx context.Context, idToken, audience string) (*GoogleClaims, error) {
	payload, err := idtoken.Validate(ctx, idToken, audience)
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims := &GoogleClaims{GoogleID: payload.Subject}
	if email, ok := payload.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		claims.Picture = picture
	}
	return claims, nil
}

// LoginWithIDToken handles sign-in via Google One Tap. The ID token is
// verified, exchanged for a backend token, and stored in a new session.
func (as *AuthService) LoginWithIDToken(ctx context.Context, req *models.LoginRequest) (*models.Session, error) {
	claims, err := as.verify(ctx, req.IDToken, as.cfg.GoogleClientID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, ErrInvalidToken
	}

	exchange, err := as.authAPI.Exchange(ctx, claims.Email, claims.Name, claims.Picture, claims.GoogleID)
	if err != nil {
		return nil, err
	}

	var tokenExpiry time.Time
	if req.ExpiresIn > 0 {
		tokenExpiry = time.Now().Add(time.Duration(req.ExpiresIn) * time.Second)
	}

	return as.sessionStore.Create(
		exchange.User.ID,
		claims.Email,
		exchange.User.Name,
		claims.Picture,
		exchange.User.Role,
		req.AccessToken,
		"",
		tokenExpiry,
		exchange.Token,
	)
}

// LoginWithCode handles sign-in via the OAuth redirect flow.
func (as *AuthService) LoginWithCode(ctx context.Context, code string) (*models.Session, error) {
	oauthConfig := &oauth2.Config{
		ClientID:     as.cfg.GoogleClientID,
		ClientSecret: as.cfg.GoogleClientSecret,
		RedirectURL:  as.cfg.GoogleRedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, ErrInvalidToken
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, ErrInvalidToken
	}

	claims, err := as.verify(ctx, rawIDToken, as.cfg.GoogleClientID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	exchange, err := as.authAPI.Exchange(ctx, claims.Email, claims.Name, claims.Picture, claims.GoogleID)
	if err != nil {
		return nil, err
	}

	return as.sessionStore.Create(
		exchange.User.ID,
		claims.Email,
		exchange.User.Name,
		claims.Picture,
		exchange.User.Role,
		token.AccessToken,
		token.RefreshToken,
		token.Expiry,
		exchange.Token,
	)
}

// GetSession returns the live session for an id, or ErrSessionNotFound.
func (as *AuthService) GetSession(sessionID string) (*models.Session, error) {
	sess, err := as.sessionStore.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Logout removes the session.
func (as *AuthService) Logout(sessionID string) error {
	return as.sessionStore.Delete(sessionID)
}
