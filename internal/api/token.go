package api

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"wordadventure/internal/security"
)

var errNoToken = errors.New("no auth token")

// tokenState holds the bearer token of the client. It is the token source
// of the executor.
type tokenState struct {
	mu    sync.Mutex
	token *oauth2.Token
}

func newTokenState(raw string) *tokenState {
	s := &tokenState{}
	s.set(raw)
	return s
}

// Token implements oauth2.TokenSource
func (s *tokenState) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return nil, errNoToken
	}
	tok := *s.token
	return &tok, nil
}

func (s *tokenState) set(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if raw == "" {
		s.token = nil
		return
	}
	tok := &oauth2.Token{AccessToken: raw, TokenType: "Bearer"}
	if exp, ok := security.TokenExpiry(raw); ok {
		tok.Expiry = exp
	}
	s.token = tok
}

func (s *tokenState) raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil {
		return ""
	}
	return s.token.AccessToken
}

func (s *tokenState) expiry() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == nil || s.token.Expiry.IsZero() {
		return time.Time{}, false
	}
	return s.token.Expiry, true
}
