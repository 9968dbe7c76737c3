package api

import (
	"context"

	"quill/models"
)

// SiteConfigClient talks to /api/v1/site-config.
type SiteConfigClient struct {
	c *Client
}

func NewSiteConfigClient(c *Client) *SiteConfigClient {
	return &SiteConfigClient{c: c}
}

// GetPublic fetches the public site configuration. No auth required.
func (sc *SiteConfigClient) GetPublic(ctx context.Context) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := sc.c.get(ctx, "/api/v1/site-config/public", nil, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Update replaces the site configuration. Admin only.
func (sc *SiteConfigClient) Update(ctx context.Context, req *models.UpdateSiteConfigRequest) (*models.SiteConfig, error) {
	var cfg models.SiteConfig
	if err := sc.c.put(ctx, "/api/v1/site-config", req, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
