package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"quill/api"
	"quill/models"
)

// ==================== MOCKS ====================

// MockPostsAPI is a mock implementation of PostsAPI
type MockPostsAPI struct {
	mock.Mock
}

var _ PostsAPI = (*MockPostsAPI)(nil)

func (m *MockPostsAPI) List(ctx context.Context, q api.ListQuery) (*models.PostPage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PostPage), args.Error(1)
}

func (m *MockPostsAPI) Get(ctx context.Context, id string) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostsAPI) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostsAPI) Create(ctx context.Context, req *models.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostsAPI) Update(ctx context.Context, id string, req *models.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCommentsAPI is a mock implementation of CommentsAPI
type MockCommentsAPI struct {
	mock.Mock
}

var _ CommentsAPI = (*MockCommentsAPI)(nil)

func (m *MockCommentsAPI) ListForPost(ctx context.Context, postID string, limit, offset int) ([]models.Comment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentsAPI) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Comment, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentsAPI) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentsAPI) SetStatus(ctx context.Context, id, status string) (*models.Comment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentsAPI) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSiteConfigAPI is a mock implementation of SiteConfigAPI
type MockSiteConfigAPI struct {
	mock.Mock
}

var _ SiteConfigAPI = (*MockSiteConfigAPI)(nil)

func (m *MockSiteConfigAPI) GetPublic(ctx context.Context) (*models.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteConfig), args.Error(1)
}

func (m *MockSiteConfigAPI) Update(ctx context.Context, req *models.UpdateSiteConfigRequest) (*models.SiteConfig, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteConfig), args.Error(1)
}

// MockSnapshotStore is a mock implementation of ConfigSnapshotStore
type MockSnapshotStore struct {
	mock.Mock
}

var _ ConfigSnapshotStore = (*MockSnapshotStore)(nil)

func (m *MockSnapshotStore) SaveSiteConfig(cfg *models.SiteConfig) error {
	args := m.Called(cfg)
	return args.Error(0)
}

func (m *MockSnapshotStore) LoadSiteConfig() (*models.SiteConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteConfig), args.Error(1)
}

// MockAuthAPI is a mock implementation of AuthAPI
type MockAuthAPI struct {
	mock.Mock
}

var _ AuthAPI = (*MockAuthAPI)(nil)

func (m *MockAuthAPI) Exchange(ctx context.Context, email, name, picture, googleID string) (*api.ExchangeResponse, error) {
	args := m.Called(ctx, email, name, picture, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*api.ExchangeResponse), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

var _ SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(userID, email, name, picture, role, accessToken, refreshToken string, tokenExpiry time.Time, backendToken string) (*models.Session, error) {
	args := m.Called(userID, email, name, picture, role, accessToken, refreshToken, tokenExpiry, backendToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Get(sessionID string) (*models.Session, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionStore) Touch(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

// recordingBus captures published events for assertions.
type recordingBus struct {
	mu     sync.Mutex
	topics []string
}

var _ EventPublisher = (*recordingBus)(nil)

func (b *recordingBus) Publish(topic string, payload any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topics = append(b.topics, topic)
}

func (b *recordingBus) published() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.topics...)
}
