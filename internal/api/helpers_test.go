package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"wordadventure/internal/models"
	"wordadventure/internal/store"
)

var fixedNow = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

// memStore is an in-memory SessionStore
type memStore struct {
	mu      sync.Mutex
	current *models.Session
	token   string
	offline []models.TestResult
	cleared int
}

func (m *memStore) Current() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

func (m *memStore) SetCurrent(s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s.Clone()
	return nil
}

func (m *memStore) UpdateCurrent(fn func(*models.Session) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return store.ErrNoSession
	}
	next := m.current.Clone()
	if fn(next) {
		m.current = next
	}
	return nil
}

func (m *memStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.token = ""
	m.cleared++
	return nil
}

func (m *memStore) AppendOfflineResult(r models.TestResult) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offline = append(m.offline, r)
	return int64(len(m.offline)), nil
}

func (m *memStore) OfflineResults() []models.TestResult {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.TestResult(nil), m.offline...)
}

func (m *memStore) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// newTestClient starts a backend serving handler and returns a client for it
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *memStore) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return clientFor(t, server.URL, &memStore{})
}

// newOfflineClient returns a client whose backend is unreachable
func newOfflineClient(t *testing.T) (*Client, *memStore) {
	t.Helper()
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()
	return clientFor(t, url, &memStore{})
}

func clientFor(t *testing.T, baseURL string, st *memStore) (*Client, *memStore) {
	t.Helper()
	client, err := New(Config{
		BaseURL: baseURL,
		Store:   st,
		Now:     func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return client, st
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// faultyStore is a memStore whose Clear and SetToken can be made to fail
type faultyStore struct {
	*memStore
	clearErr    error
	setTokenErr error
}

func (f *faultyStore) Clear() error {
	if f.clearErr != nil {
		return f.clearErr
	}
	return f.memStore.Clear()
}

func (f *faultyStore) SetToken(token string) error {
	if f.setTokenErr != nil {
		return f.setTokenErr
	}
	return f.memStore.SetToken(token)
}
