package services

import (
	"context"

	"quill/api"
	"quill/events"
	"quill/models"
)

// CommentService handles business logic for comment submission and
// moderation.
type CommentService struct {
	comments CommentsAPI
	bus      EventPublisher
}

func NewCommentService(comments CommentsAPI, bus EventPublisher) *CommentService {
	return &CommentService{comments: comments, bus: bus}
}

// ListApproved returns the approved comments for a post.
func (cs *CommentService) ListApproved(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	return cs.comments.ListForPost(ctx, postID, limit, offset)
}

// ListByStatus returns comments in a moderation state. Admin surface.
func (cs *CommentService) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Comment, error) {
	switch status {
	case models.CommentStatusPending, models.CommentStatusApproved, models.CommentStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}
	return cs.comments.ListByStatus(ctx, status, limit, offset)
}

// Submit creates a new comment. Comments enter moderation as pending.
// commentsEnabled reflects the current site config.
func (cs *CommentService) Submit(ctx context.Context, req *models.CreateCommentRequest, commentsEnabled bool) (*models.Comment, error) {
	if !commentsEnabled {
		return nil, ErrCommentsDisabled
	}

	comment, err := cs.comments.Create(ctx, req)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(events.TopicCommentSubmitted, comment)
	}
	return comment, nil
}

// SetStatus moves a comment to a moderation state. Admin surface.
func (cs *CommentService) SetStatus(ctx context.Context, id, status string) (*models.Comment, error) {
	switch status {
	case models.CommentStatusApproved, models.CommentStatusRejected:
	default:
		return nil, ErrInvalidStatus
	}

	comment, err := cs.comments.SetStatus(ctx, id, status)
	if err != nil {
		if api.IsNotFound(err) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(events.TopicCommentModerated, comment)
	}
	return comment, nil
}

// Delete removes a comment. Admin surface.
func (cs *CommentService) Delete(ctx context.Context, id string) error {
	if err := cs.comments.Delete(ctx, id); err != nil {
		if api.IsNotFound(err) {
			return ErrCommentNotFound
		}
		return err
	}
	return nil
}
