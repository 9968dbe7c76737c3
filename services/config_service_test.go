package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"quill/events"
	"quill/models"
)

func TestConfigService_GetCachesWithinTTL(t *testing.T) {
	backend := new(MockSiteConfigAPI)
	snapshot := new(MockSnapshotStore)
	backend.On("GetPublic", mock.Anything).Return(&models.SiteConfig{Title: "Quill"}, nil).Once()
	snapshot.On("SaveSiteConfig", mock.Anything).Return(nil)

	svc := NewConfigService(backend, snapshot, nil, time.Minute)

	first, err := svc.Get(context.Background())
	assert.NoError(t, err)
	second, err := svc.Get(context.Background())
	assert.NoError(t, err)

	assert.Same(t, first, second)
	backend.AssertExpectations(t)
}

func TestConfigService_GetRefetchesAfterInvalidate(t *testing.T) {
	backend := new(MockSiteConfigAPI)
	backend.On("GetPublic", mock.Anything).Return(&models.SiteConfig{Title: "Quill"}, nil).Twice()

	svc := NewConfigService(backend, nil, nil, time.Minute)

	_, err := svc.Get(context.Background())
	assert.NoError(t, err)
	svc.Invalidate()
	_, err = svc.Get(context.Background())
	assert.NoError(t, err)

	backend.AssertExpectations(t)
}

func TestConfigService_GetServesStaleOnBackendFailure(t *testing.T) {
	backend := new(MockSiteConfigAPI)
	backend.On("GetPublic", mock.Anything).Return(&models.SiteConfig{Title: "Quill"}, nil).Once()
	backend.On("GetPublic", mock.Anything).Return(nil, errors.New("backend down"))

	svc := NewConfigService(backend, nil, nil, time.Nanosecond)

	first, err := svc.Get(context.Background())
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)
	second, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, first.Title, second.Title)
}

func TestConfigService_GetFallsBackToSnapshot(t *testing.T) {
	backend := new(MockSiteConfigAPI)
	snapshot := new(MockSnapshotStore)
	backend.On("GetPublic", mock.Anything).Return(nil, errors.New("backend down"))
	snapshot.On("LoadSiteConfig").Return(&models.SiteConfig{Title: "From snapshot"}, nil)

	svc := NewConfigService(backend, snapshot, nil, time.Minute)

	cfg, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "From snapshot", cfg.Title)
}

func TestConfigService_GetUnavailableWithoutAnySource(t *testing.T) {
	backend := new(MockSiteConfigAPI)
	backend.On("GetPublic", mock.Anything).Return(nil, errors.New("backend down"))

	svc := NewConfigService(backend, nil, nil, time.Minute)

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrConfigUnavailable)
}

func TestConfigService_UpdateRefreshesCacheAndAnnounces(t *testing.T) {
	backend := new(MockSiteConfigAPI)
	snapshot := new(MockSnapshotStore)
	bus := &recordingBus{}

	req := &models.UpdateSiteConfigRequest{Title: "New title", Theme: "dark", PostsPerPage: 10}
	updated := &models.SiteConfig{Title: "New title", Theme: "dark"}
	backend.On("Update", mock.Anything, req).Return(updated, nil)
	snapshot.On("SaveSiteConfig", updated).Return(nil)

	svc := NewConfigService(backend, snapshot, bus, time.Minute)

	cfg, err := svc.Update(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, "New title", cfg.Title)
	assert.Equal(t, []string{events.TopicConfigUpdated}, bus.published())

	// The update primed the cache, so Get never hits the backend.
	got, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Same(t, cfg, got)

	backend.AssertExpectations(t)
	snapshot.AssertExpectations(t)
}
