package api

import (
	"context"
	"net/url"
	"strconv"

	"quill/models"
)

// CommentsClient talks to /api/v1/comments.
type CommentsClient struct {
	c *Client
}

func NewCommentsClient(c *Client) *CommentsClient {
	return &CommentsClient{c: c}
}

func (cc *CommentsClient) ListForPost(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	v := url.Values{}
	v.Set("post_id", postID)
	v.Set("status", models.CommentStatusApproved)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}

	var comments []models.Comment
	if err := cc.c.get(ctx, "/api/v1/comments", v, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByStatus lists comments in a moderation state across all posts.
func (cc *CommentsClient) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Comment, error) {
	v := url.Values{}
	v.Set("status", status)
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		v.Set("offset", strconv.Itoa(offset))
	}

	var comments []models.Comment
	if err := cc.c.get(ctx, "/api/v1/comments", v, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (cc *CommentsClient) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := cc.c.post(ctx, "/api/v1/comments", req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// SetStatus moves a comment to a moderation state.
func (cc *CommentsClient) SetStatus(ctx context.Context, id, status string) (*models.Comment, error) {
	var comment models.Comment
	body := map[string]string{"status": status}
	if err := cc.c.put(ctx, "/api/v1/comments/"+id+"/status", body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (cc *CommentsClient) Delete(ctx context.Context, id string) error {
	return cc.c.delete(ctx, "/api/v1/comments/"+id)
}
