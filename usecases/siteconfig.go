package usecases

import (
	"context"

	"quill/models"
	"quill/services"
	"quill/validator"
)

// ConfigProvider is the slice of ConfigService the workflows need.
type ConfigProvider interface {
	Get(ctx context.Context) (*models.SiteConfig, error)
	Update(ctx context.Context, req *models.UpdateSiteConfigRequest) (*models.SiteConfig, error)
}

// SiteConfigUseCase validates and applies site configuration changes.
type SiteConfigUseCase struct {
	config   ConfigProvider
	validate *validator.Validator
}

func NewSiteConfigUseCase(config ConfigProvider, validate *validator.Validator) *SiteConfigUseCase {
	return &SiteConfigUseCase{config: config, validate: validate}
}

// Load returns the current site configuration.
func (uc *SiteConfigUseCase) Load(ctx context.Context) (*models.SiteConfig, error) {
	return uc.config.Get(ctx)
}

// Save validates the request and pushes it to the backend.
func (uc *SiteConfigUseCase) Save(ctx context.Context, req *models.UpdateSiteConfigRequest) (*models.SiteConfig, error) {
	if err := uc.validate.Validate(req); err != nil {
		return nil, err
	}
	return uc.config.Update(ctx, req)
}

// CommentsEnabled reports whether the site currently accepts comments.
// Config failures default to closed.
func (uc *SiteConfigUseCase) CommentsEnabled(ctx context.Context) bool {
	cfg, err := uc.config.Get(ctx)
	if err != nil {
		return false
	}
	return cfg.CommentsEnabled
}

var _ ConfigProvider = (*services.ConfigService)(nil)
