package services

import (
	"context"
	"sync"
	"time"

	"quill/events"
	"quill/models"
)

// ConfigService serves the site configuration with a short in-memory cache
// and a local snapshot fallback for backend outages.
type ConfigService struct {
	backend  SiteConfigAPI
	snapshot ConfigSnapshotStore
	bus      EventPublisher
	ttl      time.Duration

	mu        sync.RWMutex
	cached    *models.SiteConfig
	fetchedAt time.Time
}

func NewConfigService(backend SiteConfigAPI, snapshot ConfigSnapshotStore, bus EventPublisher, ttl time.Duration) *ConfigService {
	return &ConfigService{
		backend:  backend,
		snapshot: snapshot,
		bus:      bus,
		ttl:      ttl,
	}
}

// Get returns the current site config. It prefers the in-memory cache while
// fresh, then the backend, then the local snapshot.
func (cs *ConfigService) Get(ctx context.Context) (*models.SiteConfig, error) {
	cs.mu.RLock()
	if cs.cached != nil && time.Since(cs.fetchedAt) < cs.ttl {
		cfg := cs.cached
		cs.mu.RUnlock()
		return cfg, nil
	}
	cs.mu.RUnlock()

	cfg, err := cs.backend.GetPublic(ctx)
	if err == nil {
		cs.store(cfg)
		return cfg, nil
	}

	// Backend unreachable: serve whatever we last saw.
	cs.mu.RLock()
	stale := cs.cached
	cs.mu.RUnlock()
	if stale != nil {
		return stale, nil
	}

	if cs.snapshot != nil {
		snap, snapErr := cs.snapshot.LoadSiteConfig()
		if snapErr == nil && snap != nil {
			cs.mu.Lock()
			cs.cached = snap
			cs.mu.Unlock()
			return snap, nil
		}
	}

	return nil, ErrConfigUnavailable
}

// Update pushes new config to the backend, refreshes the cache, and
// announces the change.
func (cs *ConfigService) Update(ctx context.Context, req *models.UpdateSiteConfigRequest) (*models.SiteConfig, error) {
	cfg, err := cs.backend.Update(ctx, req)
	if err != nil {
		return nil, err
	}

	cs.store(cfg)
	if cs.bus != nil {
		cs.bus.Publish(events.TopicConfigUpdated, cfg)
	}
	return cfg, nil
}

// Invalidate drops the in-memory cache so the next Get hits the backend.
func (cs *ConfigService) Invalidate() {
	cs.mu.Lock()
	cs.cached = nil
	cs.fetchedAt = time.Time{}
	cs.mu.Unlock()
}

func (cs *ConfigService) store(cfg *models.SiteConfig) {
	cs.mu.Lock()
	cs.cached = cfg
	cs.fetchedAt = time.Now()
	cs.mu.Unlock()

	if cs.snapshot != nil {
		// Snapshot write failures are non-fatal; the snapshot is a fallback.
		_ = cs.snapshot.SaveSiteConfig(cfg)
	}
}
