package usecases

import (
	"context"

	"quill/models"
	"quill/services"
)

// CommentModerator is the slice of CommentService the moderation queue needs.
type CommentModerator interface {
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Comment, error)
	SetStatus(ctx context.Context, id, status string) (*models.Comment, error)
	Delete(ctx context.Context, id string) error
}

// ModerationUseCase drives the comment moderation queue.
type ModerationUseCase struct {
	comments CommentModerator
}

func NewModerationUseCase(comments CommentModerator) *ModerationUseCase {
	return &ModerationUseCase{comments: comments}
}

// Queue returns pending comments awaiting moderation.
func (uc *ModerationUseCase) Queue(ctx context.Context, limit, offset int) ([]models.Comment, error) {
	return uc.comments.ListByStatus(ctx, models.CommentStatusPending, limit, offset)
}

// Approve makes a comment publicly visible.
func (uc *ModerationUseCase) Approve(ctx context.Context, id string) (*models.Comment, error) {
	return uc.comments.SetStatus(ctx, id, models.CommentStatusApproved)
}

// Reject hides a comment without deleting it.
func (uc *ModerationUseCase) Reject(ctx context.Context, id string) (*models.Comment, error) {
	return uc.comments.SetStatus(ctx, id, models.CommentStatusRejected)
}

// ApproveAll moderates a batch, stopping at the first failure.
func (uc *ModerationUseCase) ApproveAll(ctx context.Context, ids []string) ([]models.Comment, error) {
	approved := make([]models.Comment, 0, len(ids))
	for _, id := range ids {
		comment, err := uc.comments.SetStatus(ctx, id, models.CommentStatusApproved)
		if err != nil {
			return approved, err
		}
		approved = append(approved, *comment)
	}
	return approved, nil
}

// Remove deletes a comment outright.
func (uc *ModerationUseCase) Remove(ctx context.Context, id string) error {
	return uc.comments.Delete(ctx, id)
}

var _ CommentModerator = (*services.CommentService)(nil)
