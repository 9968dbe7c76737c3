// Package usecases composes the services into the editorial workflows the
// admin surface exposes.
package usecases

import (
	"context"

	"quill/models"
	"quill/services"
)

// PostReadWriter is the slice of PostService the content workflows need.
type PostReadWriter interface {
	Get(ctx context.Context, id string) (*models.Post, error)
	Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error)
}

// ContentUseCase drives the draft / published / archived lifecycle.
type ContentUseCase struct {
	posts PostReadWriter
}

func NewContentUseCase(posts PostReadWriter) *ContentUseCase {
	return &ContentUseCase{posts: posts}
}

// Publish moves a post to published. Publishing an already published post is
// a no-op that returns the post unchanged.
func (uc *ContentUseCase) Publish(ctx context.Context, id string) (*models.Post, error) {
	return uc.transition(ctx, id, models.PostStatusPublished)
}

// Unpublish moves a post back to draft.
func (uc *ContentUseCase) Unpublish(ctx context.Context, id string) (*models.Post, error) {
	return uc.transition(ctx, id, models.PostStatusDraft)
}

// Archive retires a post without deleting it.
func (uc *ContentUseCase) Archive(ctx context.Context, id string) (*models.Post, error) {
	return uc.transition(ctx, id, models.PostStatusArchived)
}

func (uc *ContentUseCase) transition(ctx context.Context, id, status string) (*models.Post, error) {
	post, err := uc.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.Status == status {
		return post, nil
	}

	req := &models.UpdatePostRequest{
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Content:    post.Content,
		Status:     status,
		CoverURL:   post.CoverURL,
		CategoryID: post.CategoryID,
		TagIDs:     post.TagIDs,
	}
	return uc.posts.Update(ctx, id, req)
}

var _ PostReadWriter = (*services.PostService)(nil)
