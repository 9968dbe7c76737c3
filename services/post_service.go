package services

import (
	"context"

	"quill/api"
	"quill/events"
	"quill/models"
)

// PostService handles business logic for blog posts.
type PostService struct {
	posts PostsAPI
	bus   EventPublisher
}

func NewPostService(posts PostsAPI, bus EventPublisher) *PostService {
	return &PostService{posts: posts, bus: bus}
}

// ListPublished returns a page of published posts, optionally filtered by
// category, tag, or search term.
func (ps *PostService) ListPublished(ctx context.Context, categoryID, tagID, search string, limit, offset int) (*models.PostPage, error) {
	return ps.posts.List(ctx, api.ListQuery{
		Status:     models.PostStatusPublished,
		CategoryID: categoryID,
		TagID:      tagID,
		Search:     search,
		Limit:      limit,
		Offset:     offset,
	})
}

// ListAll returns a page of posts in any status. Admin surface.
func (ps *PostService) ListAll(ctx context.Context, status string, limit, offset int) (*models.PostPage, error) {
	return ps.posts.List(ctx, api.ListQuery{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
}

// GetBySlug returns a single published post by slug.
func (ps *PostService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	post, err := ps.posts.GetBySlug(ctx, slug)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	if post.Status != models.PostStatusPublished {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// Get returns a post by id regardless of status. Admin surface.
func (ps *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	post, err := ps.posts.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

// Create creates a post. A published post announces itself on the bus.
func (ps *PostService) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	post, err := ps.posts.Create(ctx, req)
	if err != nil {
		if api.IsConflict(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	if post.Status == models.PostStatusPublished && ps.bus != nil {
		ps.bus.Publish(events.TopicPostPublished, post)
	}
	return post, nil
}

// Update updates a post. A draft-to-published transition announces itself.
func (ps *PostService) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	prev, err := ps.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	post, err := ps.posts.Update(ctx, id, req)
	if err != nil {
		if api.IsConflict(err) {
			return nil, ErrSlugTaken
		}
		if api.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if prev.Status != models.PostStatusPublished && post.Status == models.PostStatusPublished && ps.bus != nil {
		ps.bus.Publish(events.TopicPostPublished, post)
	}
	return post, nil
}

// Delete removes a post.
func (ps *PostService) Delete(ctx context.Context, id string) error {
	if err := ps.posts.Delete(ctx, id); err != nil {
		if api.IsNotFound(err) {
			return ErrPostNotFound
		}
		return err
	}
	if ps.bus != nil {
		ps.bus.Publish(events.TopicPostDeleted, id)
	}
	return nil
}
