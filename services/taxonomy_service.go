package services

import (
	"context"

	"quill/api"
	"quill/models"
)

// TaxonomyService handles business logic for categories and tags.
type TaxonomyService struct {
	taxonomy TaxonomyAPI
}

func NewTaxonomyService(taxonomy TaxonomyAPI) *TaxonomyService {
	return &TaxonomyService{taxonomy: taxonomy}
}

func (ts *TaxonomyService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return ts.taxonomy.ListCategories(ctx)
}

func (ts *TaxonomyService) GetCategoryBySlug(ctx context.Context, slug string) (*models.Category, error) {
	category, err := ts.taxonomy.GetCategoryBySlug(ctx, slug)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (ts *TaxonomyService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	category, err := ts.taxonomy.CreateCategory(ctx, req)
	if err != nil {
		if api.IsConflict(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return category, nil
}

func (ts *TaxonomyService) UpdateCategory(ctx context.Context, id string, req *models.CreateCategoryRequest) (*models.Category, error) {
	category, err := ts.taxonomy.UpdateCategory(ctx, id, req)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrCategoryNotFound
		}
		if api.IsConflict(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return category, nil
}

func (ts *TaxonomyService) DeleteCategory(ctx context.Context, id string) error {
	if err := ts.taxonomy.DeleteCategory(ctx, id); err != nil {
		if api.IsNotFound(err) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (ts *TaxonomyService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return ts.taxonomy.ListTags(ctx)
}

func (ts *TaxonomyService) GetTagBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	tag, err := ts.taxonomy.GetTagBySlug(ctx, slug)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrTagNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (ts *TaxonomyService) CreateTag(ctx context.Context, req *models.CreateTagRequest) (*models.Tag, error) {
	tag, err := ts.taxonomy.CreateTag(ctx, req)
	if err != nil {
		if api.IsConflict(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return tag, nil
}

func (ts *TaxonomyService) DeleteTag(ctx context.Context, id string) error {
	if err := ts.taxonomy.DeleteTag(ctx, id); err != nil {
		if api.IsNotFound(err) {
			return ErrTagNotFound
		}
		return err
	}
	return nil
}
