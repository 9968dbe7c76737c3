package api

import (
	"context"

	"quill/models"
)

// TaxonomyClient talks to /api/v1/categories and /api/v1/tags.
type TaxonomyClient struct {
	c *Client
}

func NewTaxonomyClient(c *Client) *TaxonomyClient {
	return &TaxonomyClient{c: c}
}

func (tc *TaxonomyClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := tc.c.get(ctx, "/api/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (tc *TaxonomyClient) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := tc.c.get(ctx, "/api/v1/categories/slug/"+slug, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (tc *TaxonomyClient) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := tc.c.post(ctx, "/api/v1/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (tc *TaxonomyClient) UpdateCategory(ctx context.Context, id string, req *models.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := tc.c.put(ctx, "/api/v1/categories/"+id, req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (tc *TaxonomyClient) DeleteCategory(ctx context.Context, id string) error {
	return tc.c.delete(ctx, "/api/v1/categories/"+id)
}

func (tc *TaxonomyClient) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := tc.c.get(ctx, "/api/v1/tags", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (tc *TaxonomyClient) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := tc.c.get(ctx, "/api/v1/tags/slug/"+slug, nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (tc *TaxonomyClient) CreateTag(ctx context.Context, req *models.CreateTagRequest) (*models.Tag, error) {
	var tag models.Tag
	if err := tc.c.post(ctx, "/api/v1/tags", req, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}

func (tc *TaxonomyClient) DeleteTag(ctx context.Context, id string) error {
	return tc.c.delete(ctx, "/api/v1/tags/"+id)
}
