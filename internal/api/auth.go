package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"wordadventure/internal/credentials"
	"wordadventure/internal/fallback"
	"wordadventure/internal/models"
	"wordadventure/internal/validation"
)

// Credentials are the login form fields
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the registration form. ConfirmPassword is checked
// locally and never sent.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email,omitempty"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"-"`
}

// AuthResponse is returned by login and registration
type AuthResponse struct {
	Success bool            `json:"success,omitempty"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    *models.Session `json:"user,omitempty"`
}

// ResetPasswordRequest sets a new password with a reset token
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"-"`
}

// MessageResponse is the generic acknowledgement body of the backend
type MessageResponse struct {
	Success  bool   `json:"success,omitempty"`
	Message  string `json:"message,omitempty"`
	ResetURL string `json:"reset_url,omitempty"`
}

// Login signs in. When the backend fails, the demo pair still signs in
// with a synthetic profile; any other pair yields an *AuthError.
func (c *Client) Login(ctx context.Context, creds Credentials) (Result[*AuthResponse], error) {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	isDemo := credentials.IsDemo(creds.Username, creds.Password)

	var resp AuthResponse
	err := c.exec.execute(ctx, http.MethodPost, "/auth/login", creds, &resp)
	if err == nil {
		if isDemo && resp.User != nil {
			resp.User.IsDemo = true
		}
		if err := c.adoptSession(&resp); err != nil {
			return remote(&resp), err
		}
		return remote(&resp), nil
	}

	if !isDemo {
		return Result[*AuthResponse]{Err: err}, &AuthError{Message: "Invalid credentials", Err: err}
	}

	log.Printf("Warning: API login failed, using demo mode: %v", err)
	demo := fallback.DemoSession(creds.Username, c.now())
	if storeErr := c.store.SetCurrent(demo); storeErr != nil {
		return Result[*AuthResponse]{Err: err}, fmt.Errorf("failed to save demo session: %w", storeErr)
	}
	if storeErr := c.setToken(""); storeErr != nil {
		return Result[*AuthResponse]{Err: err}, fmt.Errorf("failed to clear auth token: %w", storeErr)
	}

	return degraded(&AuthResponse{
		Success: true,
		Message: "Demo login successful",
		User:    demo.Clone(),
	}, err), nil
}

// Register creates an account. Input is validated before any request is
// sent; request errors are returned unchanged.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := validation.ValidatePasswordConfirmation(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := validation.ValidateEmail(req.Email); err != nil {
			return nil, err
		}
	}

	c.authMu.Lock()
	defer c.authMu.Unlock()

	var resp AuthResponse
	if err := c.exec.execute(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil && resp.Token == "" {
		return &resp, nil
	}
	if err := c.adoptSession(&resp); err != nil {
		return &resp, err
	}
	return &resp, nil
}

// adoptSession replaces the session and token with those of a successful
// auth response. A response without a user clears the cached session.
// Callers hold authMu.
func (c *Client) adoptSession(resp *AuthResponse) error {
	token := resp.Token
	if token == "" && resp.User != nil {
		token = resp.User.Token
	}
	if err := c.store.SetCurrent(resp.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if err := c.setToken(token); err != nil {
		return fmt.Errorf("failed to save auth token: %w", err)
	}
	return nil
}

// Logout ends the session on the backend and always clears the local
// session and token. The outcome is OutcomeIgnored when the backend call
// failed.
func (c *Client) Logout(ctx context.Context) Result[struct{}] {
	c.authMu.Lock()
	defer c.authMu.Unlock()

	err := c.exec.execute(ctx, http.MethodPost, "/auth/logout", nil, nil)
	if err != nil {
		log.Printf("Warning: API logout failed: %v", err)
	}

	storeErr := c.clearLocal()

	if err != nil {
		return ignored[struct{}](errors.Join(err, storeErr))
	}
	return Result[struct{}]{Outcome: OutcomeRemote, Err: storeErr}
}

// clearLocal removes the persisted session and token, then sets the
// in-memory token to whatever the store still holds. Callers hold authMu.
func (c *Client) clearLocal() error {
	var errs []error
	if err := c.store.Clear(); err != nil {
		errs = append(errs, fmt.Errorf("failed to clear session: %w", err))
		if err := c.store.SetToken(""); err != nil {
			errs = append(errs, fmt.Errorf("failed to clear auth token: %w", err))
		}
		if err := c.store.SetCurrent(nil); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete session: %w", err))
		}
	}
	c.tokens.set(c.store.Token())
	return errors.Join(errs...)
}

// ForgotPassword asks the backend to send a reset email
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	email = strings.TrimSpace(email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	var resp MessageResponse
	body := map[string]string{"email": email}
	if err := c.exec.execute(ctx, http.MethodPost, "/auth/forgot-password", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyResetToken checks that a reset token is still valid
func (c *Client) VerifyResetToken(ctx context.Context, token string) (*MessageResponse, error) {
	token = strings.TrimSpace(token)
	if err := validation.ValidateResetToken(token); err != nil {
		return nil, err
	}

	var resp MessageResponse
	body := map[string]string{"token": token}
	if err := c.exec.execute(ctx, http.MethodPost, "/auth/verify-reset-token", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword sets a new password using a reset token
func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (*MessageResponse, error) {
	req.Token = strings.TrimSpace(req.Token)
	if err := validation.ValidateResetToken(req.Token); err != nil {
		return nil, err
	}
	if err := validation.ValidatePasswordConfirmation(req.NewPassword, req.ConfirmPassword); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.NewPassword); err != nil {
		return nil, err
	}

	var resp MessageResponse
	if err := c.exec.execute(ctx, http.MethodPost, "/auth/reset-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
