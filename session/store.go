package session

import (
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"quill/models"

	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

// Store persists admin sessions and the cached site config in sqlite.
type Store struct {
	db *DB

	mu       sync.Mutex
	stopChan chan struct{}
	running  bool
}

func NewStore(db *DB) *Store {
	return &Store{db: db, stopChan: make(chan struct{})}
}

// Create inserts a new session row and returns the session.
func (s *Store) Create(userID, email, name, picture, role, accessToken, refreshToken string, tokenExpiry time.Time, backendToken string) (*models.Session, error) {
	sess := &models.Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		Email:        email,
		Name:         name,
		Picture:      picture,
		Role:         role,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenExpiry:  tokenExpiry,
		BackendToken: backendToken,
		ExpiresAt:    time.Now().Add(sessionTTL),
		CreatedAt:    time.Now(),
		LastUsedAt:   time.Now(),
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, user_id, email, name, picture, role,
			access_token, refresh_token, token_expiry, backend_token,
			expires_at, created_at, last_used_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		sess.ID, sess.UserID, sess.Email, sess.Name, sess.Picture, sess.Role,
		sess.AccessToken, sess.RefreshToken, sess.TokenExpiry, sess.BackendToken,
		sess.ExpiresAt, sess.CreatedAt, sess.LastUsedAt,
	)
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// Get returns a session by id, or nil when it does not exist or has expired.
func (s *Store) Get(sessionID string) (*models.Session, error) {
	sess, err := s.scanSession(s.db.QueryRow(`
		SELECT id, user_id, email, name, picture, role,
			   access_token, refresh_token, token_expiry, backend_token,
			   expires_at, created_at, last_used_at
		FROM sessions WHERE id = ?
	`, sessionID))
	if err != nil || sess == nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, nil
	}
	return sess, nil
}

// GetByUserID returns the most recently used live session for a user.
func (s *Store) GetByUserID(userID string) (*models.Session, error) {
	return s.scanSession(s.db.QueryRow(`
		SELECT id, user_id, email, name, picture, role,
			   access_token, refresh_token, token_expiry, backend_token,
			   expires_at, created_at, last_used_at
		FROM sessions
		WHERE user_id = ? AND expires_at > ?
		ORDER BY last_used_at DESC LIMIT 1
	`, userID, time.Now()))
}

func (s *Store) scanSession(row *sql.Row) (*models.Session, error) {
	var sess models.Session
	err := row.Scan(
		&sess.ID, &sess.UserID, &sess.Email, &sess.Name, &sess.Picture, &sess.Role,
		&sess.AccessToken, &sess.RefreshToken, &sess.TokenExpiry, &sess.BackendToken,
		&sess.ExpiresAt, &sess.CreatedAt, &sess.LastUsedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Touch updates the last-used timestamp.
func (s *Store) Touch(sessionID string) error {
	_, err := s.db.Exec(`UPDATE sessions SET last_used_at = ? WHERE id = ?`, time.Now(), sessionID)
	return err
}

func (s *Store) Delete(sessionID string) error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE id = ?`, sessionID)
	return err
}

func (s *Store) CleanupExpired() error {
	_, err := s.db.Exec(`DELETE FROM sessions WHERE expires_at <= ?`, time.Now())
	return err
}

// SaveSiteConfig stores the last-known public site config snapshot.
func (s *Store) SaveSiteConfig(cfg *models.SiteConfig) error {
	payload, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO site_config_cache (id, payload, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, string(payload), time.Now())
	return err
}

// LoadSiteConfig returns the cached snapshot, or nil when none was saved yet.
func (s *Store) LoadSiteConfig() (*models.SiteConfig, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM site_config_cache WHERE id = 1`).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg models.SiteConfig
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StartCleanupRoutine deletes expired sessions hourly until Close.
func (s *Store) StartCleanupRoutine() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_ = s.CleanupExpired()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Close stops the cleanup routine. The underlying DB is owned and closed by
// the container separately.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		close(s.stopChan)
		s.running = false
	}
	return nil
}
