package api

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewRequiresConfig(t *testing.T) {
	if _, err := New(Config{Store: &memStore{}}); !errors.Is(err, ErrNoBaseURL) {
		t.Errorf("Expected ErrNoBaseURL, got %v", err)
	}
	if _, err := New(Config{BaseURL: "http://localhost"}); !errors.Is(err, ErrNoStore) {
		t.Errorf("Expected ErrNoStore, got %v", err)
	}
}

func TestNewLoadsPersistedToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer server.Close()

	client, _ := clientFor(t, server.URL+"/", &memStore{token: "persisted"})
	client.GetDifficulties(context.Background())

	if auth != "Bearer persisted" {
		t.Errorf("Authorization = %q, want Bearer persisted", auth)
	}
}

func TestTokenExpiry(t *testing.T) {
	exp := fixedNow.Add(-time.Hour).Truncate(time.Second)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	var buf bytes.Buffer
	logger := log.Default()
	originalOutput := logger.Writer()
	logger.SetOutput(&buf)
	defer logger.SetOutput(originalOutput)

	client, _ := clientFor(t, "http://localhost:1", &memStore{token: raw})

	got, ok := client.TokenExpiry()
	if !ok || !got.Equal(exp) {
		t.Errorf("TokenExpiry() = %v, %v; want %v, true", got, ok, exp)
	}
	if !strings.Contains(buf.String(), "Warning: stored auth token expired") {
		t.Errorf("Expected expiry warning, got %q", buf.String())
	}

	opaque, _ := clientFor(t, "http://localhost:1", &memStore{token: "opaque"})
	if _, ok := opaque.TokenExpiry(); ok {
		t.Error("Expected no expiry for an opaque token")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    string
	}{
		{OutcomeRemote, "remote"},
		{OutcomeDegraded, "degraded"},
		{OutcomeIgnored, "ignored"},
		{Outcome(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.want {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.want)
		}
	}
}
