package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"quill/models"
	"quill/services"
)

// DashboardCounts is the admin landing page summary.
type DashboardCounts struct {
	PublishedPosts  int `json:"published_posts"`
	DraftPosts      int `json:"draft_posts"`
	PendingComments int `json:"pending_comments"`
	Categories      int `json:"categories"`
	Tags            int `json:"tags"`
	Users           int `json:"users"`
}

// PostCounter is the slice of PostService the dashboard needs.
type PostCounter interface {
	ListAll(ctx context.Context, status string, limit, offset int) (*models.PostPage, error)
}

// TaxonomyLister is the slice of TaxonomyService the dashboard needs.
type TaxonomyLister interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
}

// UserLister is the slice of UserService the dashboard needs.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// DashboardUseCase gathers the admin summary with one backend round trip per
// figure, fanned out concurrently.
type DashboardUseCase struct {
	posts    PostCounter
	comments CommentModerator
	taxonomy TaxonomyLister
	users    UserLister
}

func NewDashboardUseCase(posts PostCounter, comments CommentModerator, taxonomy TaxonomyLister, users UserLister) *DashboardUseCase {
	return &DashboardUseCase{
		posts:    posts,
		comments: comments,
		taxonomy: taxonomy,
		users:    users,
	}
}

// Counts fans out the count queries and fails on the first error.
func (uc *DashboardUseCase) Counts(ctx context.Context) (*DashboardCounts, error) {
	counts := &DashboardCounts{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := uc.posts.ListAll(ctx, models.PostStatusPublished, 1, 0)
		if err != nil {
			return err
		}
		counts.PublishedPosts = page.Total
		return nil
	})
	g.Go(func() error {
		page, err := uc.posts.ListAll(ctx, models.PostStatusDraft, 1, 0)
		if err != nil {
			return err
		}
		counts.DraftPosts = page.Total
		return nil
	})
	g.Go(func() error {
		pending, err := uc.comments.ListByStatus(ctx, models.CommentStatusPending, 0, 0)
		if err != nil {
			return err
		}
		counts.PendingComments = len(pending)
		return nil
	})
	g.Go(func() error {
		categories, err := uc.taxonomy.ListCategories(ctx)
		if err != nil {
			return err
		}
		counts.Categories = len(categories)
		return nil
	})
	g.Go(func() error {
		tags, err := uc.taxonomy.ListTags(ctx)
		if err != nil {
			return err
		}
		counts.Tags = len(tags)
		return nil
	})
	g.Go(func() error {
		users, err := uc.users.List(ctx)
		if err != nil {
			return err
		}
		counts.Users = len(users)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return counts, nil
}

var (
	_ PostCounter    = (*services.PostService)(nil)
	_ TaxonomyLister = (*services.TaxonomyService)(nil)
	_ UserLister     = (*services.UserService)(nil)
)
