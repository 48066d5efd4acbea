package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"wordadventure/internal/fallback"
	"wordadventure/internal/models"
)

var (
	ErrNoBaseURL = errors.New("api: base URL is required")
	ErrNoStore   = errors.New("api: session store is required")
)

// SessionStore persists the client-side session. *store.SessionStore
// implements it.
type SessionStore interface {
	Current() *models.Session
	SetCurrent(session *models.Session) error
	UpdateCurrent(fn func(*models.Session) bool) error
	Clear() error
	AppendOfflineResult(result models.TestResult) (int64, error)
	OfflineResults() []models.TestResult
	Token() string
	SetToken(token string) error
}

// Config configures a Client
type Config struct {
	BaseURL    string
	Store      SessionStore
	HTTPClient *http.Client
	Dataset    *fallback.Dataset
	Debug      bool

	// Now overrides the clock; defaults to time.Now
	Now func() time.Time
}

// Client is the resilient Word Adventure API client. It is safe for
// concurrent use.
type Client struct {
	exec    *executor
	store   SessionStore
	dataset *fallback.Dataset
	tokens  *tokenState
	now     func() time.Time

	// authMu serializes login, registration and logout so the in-memory
	// and persisted tokens never diverge
	authMu sync.Mutex
}

// New creates a client and loads the persisted token from the store
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		return nil, ErrNoBaseURL
	}
	if cfg.Store == nil {
		return nil, ErrNoStore
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Debug {
		httpClient = withLogging(httpClient)
	}

	dataset := cfg.Dataset
	if dataset == nil {
		dataset = fallback.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	tokens := newTokenState(cfg.Store.Token())
	if exp, ok := tokens.expiry(); ok && exp.Before(now()) {
		log.Printf("Warning: stored auth token expired at %s", exp.Format(time.RFC3339))
	}

	return &Client{
		exec: &executor{
			baseURL: baseURL,
			http:    httpClient,
			tokens:  tokens,
		},
		store:   cfg.Store,
		dataset: dataset,
		tokens:  tokens,
		now:     now,
	}, nil
}

// CurrentUser returns the cached session, or nil when nobody is signed in
func (c *Client) CurrentUser() *models.Session {
	return c.store.Current()
}

// TokenExpiry returns the expiry of the held token when it is a JWT
func (c *Client) TokenExpiry() (time.Time, bool) {
	return c.tokens.expiry()
}

// setToken updates the in-memory and persisted token together.
// Callers hold authMu.
func (c *Client) setToken(raw string) error {
	if err := c.store.SetToken(raw); err != nil {
		return err
	}
	c.tokens.set(raw)
	return nil
}
