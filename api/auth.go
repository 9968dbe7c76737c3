package api

import (
	"context"

	"quill/models"
)

// AuthClient talks to /api/v1/auth.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// ExchangeResponse is the backend's answer to a successful sign-in: a
// backend-scoped token plus the resolved user record with its role.
type ExchangeResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Exchange trades a verified Google identity for a backend token.
func (ac *AuthClient) Exchange(ctx context.Context, email, name, picture, googleID string) (*ExchangeResponse, error) {
	body := map[string]string{
		"email":     email,
		"name":      name,
		"picture":   picture,
		"google_id": googleID,
	}
	var resp ExchangeResponse
	if err := ac.c.post(ctx, "/api/v1/auth/exchange", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
