package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"wordadventure/internal/database"
	"wordadventure/internal/models"
	"wordadventure/internal/repository"
)

var ErrNoSession = errors.New("no current session")

// SessionStore persists the current session, the auth token and the offline
// result queue. Reads are served from memory; writes reach the database first.
type SessionStore struct {
	db *database.DB

	mu      sync.Mutex
	current *models.Session
	token   string
	offline []models.TestResult
}

// Open loads persisted state from db
func Open(db *database.DB) (*SessionStore, error) {
	s := &SessionStore{db: db}
	state := repository.NewStateRepository(db)

	raw, found, err := state.Get(repository.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load current session: %w", err)
	}
	if found {
		var session models.Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			return nil, fmt.Errorf("failed to decode current session: %w", err)
		}
		s.current = &session
	}

	token, _, err := state.Get(repository.KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to load auth token: %w", err)
	}
	s.token = token

	offline, err := repository.NewOfflineResultRepository(db).List()
	if err != nil {
		return nil, fmt.Errorf("failed to load offline results: %w", err)
	}
	s.offline = offline

	return s, nil
}

// Current returns a copy of the current session, or nil
func (s *SessionStore) Current() *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// SetCurrent replaces the current session
func (s *SessionStore) SetCurrent(session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session == nil {
		return s.deleteCurrentLocked()
	}
	return s.writeCurrentLocked(session.Clone())
}

// UpdateCurrent applies fn to a copy of the current session and persists the
// copy when fn returns true. ErrNoSession is returned when nothing is cached.
func (s *SessionStore) UpdateCurrent(fn func(*models.Session) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoSession
	}
	next := s.current.Clone()
	if !fn(next) {
		return nil
	}
	return s.writeCurrentLocked(next)
}

func (s *SessionStore) writeCurrentLocked(session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := repository.NewStateRepository(s.db).Set(repository.KeyCurrentUser, string(data)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.current = session
	return nil
}

func (s *SessionStore) deleteCurrentLocked() error {
	if err := repository.NewStateRepository(s.db).Delete(repository.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.current = nil
	return nil
}

// Clear removes the session and the token. Queued offline results are kept.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.db.WithTx(func(tx *database.Tx) error {
		return repository.NewStateRepository(tx).Delete(repository.KeyCurrentUser, repository.KeyAuthToken)
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.current = nil
	s.token = ""
	return nil
}

// Token returns the persisted auth token; empty means none
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken persists token. An empty token removes it.
func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := repository.NewStateRepository(s.db)
	var err error
	if token == "" {
		err = state.Delete(repository.KeyAuthToken)
	} else {
		err = state.Set(repository.KeyAuthToken, token)
	}
	if err != nil {
		return fmt.Errorf("failed to save auth token: %w", err)
	}
	s.token = token
	return nil
}

// AppendOfflineResult queues a result and returns its queue position
func (s *SessionStore) AppendOfflineResult(result models.TestResult) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, err := repository.NewOfflineResultRepository(s.db).Append(result)
	if err != nil {
		return 0, fmt.Errorf("failed to queue offline result: %w", err)
	}
	s.offline = append(s.offline, result)
	return pos, nil
}

// OfflineResults returns the queued results in insertion order
func (s *SessionStore) OfflineResults() []models.TestResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TestResult, len(s.offline))
	for i, r := range s.offline {
		out[i] = r
		if r.WordIDs != nil {
			out[i].WordIDs = append([]int64(nil), r.WordIDs...)
		}
	}
	return out
}
