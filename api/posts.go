package api

import (
	"context"
	"net/url"
	"strconv"

	"quill/models"
)

// PostsClient talks to /api/v1/posts.
type PostsClient struct {
	c *Client
}

func NewPostsClient(c *Client) *PostsClient {
	return &PostsClient{c: c}
}

// ListQuery filters and paginates post listings.
type ListQuery struct {
	Status     string
	CategoryID string
	TagID      string
	Search     string
	Limit      int
	Offset     int
}

func (q ListQuery) values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.CategoryID != "" {
		v.Set("category_id", q.CategoryID)
	}
	if q.TagID != "" {
		v.Set("tag_id", q.TagID)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

func (pc *PostsClient) List(ctx context.Context, query ListQuery) (*models.PostPage, error) {
	var page models.PostPage
	if err := pc.c.get(ctx, "/api/v1/posts", query.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (pc *PostsClient) Get(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := pc.c.get(ctx, "/api/v1/posts/"+id, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (pc *PostsClient) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := pc.c.get(ctx, "/api/v1/posts/slug/"+slug, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (pc *PostsClient) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := pc.c.post(ctx, "/api/v1/posts", req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (pc *PostsClient) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := pc.c.put(ctx, "/api/v1/posts/"+id, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (pc *PostsClient) Delete(ctx context.Context, id string) error {
	return pc.c.delete(ctx, "/api/v1/posts/"+id)
}
